package dfs

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// TraceSeq returns the lazy, finite, restartable snapshot sequence of a
// depth-first traversal of p. Each range over it runs a fresh traversal;
// breaking out of the loop stops it. Invalid input yields nothing.
func TraceSeq[S comparable](p *core.Problem[S], opts ...Option[S]) iter.Seq[trace.Snapshot[S]] {
	return func(yield func(trace.Snapshot[S]) bool) {
		all := append(slices.Clone(opts), WithRecorder[S](yield))
		_, _ = Trace(p, all...)
	}
}

// DepthLimitedSeq is the snapshot sequence of DepthLimited(p, limit).
// Snapshot.Visited holds the path of the entry just processed.
func DepthLimitedSeq[S comparable](p *core.Problem[S], limit int, opts ...Option[S]) iter.Seq[trace.Snapshot[S]] {
	return func(yield func(trace.Snapshot[S]) bool) {
		all := append(slices.Clone(opts), WithRecorder[S](yield))
		_, _ = DepthLimited(p, limit, all...)
	}
}
