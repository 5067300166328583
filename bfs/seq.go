package bfs

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// Trace returns the lazy, finite, restartable snapshot sequence of a BFS
// over p. Every range over the sequence runs a fresh search and yields its
// snapshots as they are produced; breaking out of the loop stops the search.
// Invalid input yields an empty sequence; call BFS to obtain the error.
// A Recorder among opts is replaced by the iterator's own.
func Trace[S comparable](p *core.Problem[S], opts ...Option[S]) iter.Seq[trace.Snapshot[S]] {
	return func(yield func(trace.Snapshot[S]) bool) {
		all := append(slices.Clone(opts), WithRecorder[S](yield))
		_, _ = BFS(p, all...)
	}
}

// BidirectionalTrace is the Trace counterpart of Bidirectional.
func BidirectionalTrace[S comparable](p *core.Problem[S], opts ...Option[S]) iter.Seq[trace.Snapshot[S]] {
	return func(yield func(trace.Snapshot[S]) bool) {
		all := append(slices.Clone(opts), WithRecorder[S](yield))
		_, _ = Bidirectional(p, all...)
	}
}
