// Package dfs defines types and options for depth-first traversal,
// depth-limited search and iterative deepening over a core.Problem.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

var (
	// ErrNilProblem is returned when a nil *core.Problem is passed to
	// Trace, DepthLimited or IterativeDeepening.
	ErrNilProblem = errors.New("dfs: problem is nil")

	// ErrStartInvalid indicates that the initial state is not a valid
	// state of the problem's space.
	ErrStartInvalid = errors.New("dfs: start state is not valid")

	// ErrNegativeLimit indicates a negative depth limit or maximum bound.
	ErrNegativeLimit = errors.New("dfs: depth limit is negative")
)

// Option configures optional behavior of the depth-first searches.
// Use with Trace(p, opts...), DepthLimited(p, limit, opts...) and
// IterativeDeepening(p, maxBound, opts...).
type Option[S comparable] func(*DFSOptions[S])

// DFSOptions holds configurable parameters shared by the depth-first searches.
// Complexity remains O(V+E) for Trace when filters and hooks are O(1).
type DFSOptions[S comparable] struct {
	// OnVisit, if non-nil, is invoked when a state is popped for processing
	// (pre-order). Trace calls it once per state; DepthLimited once per
	// popped entry, so a state reached by several paths is reported again.
	OnVisit func(s S)

	// FilterNeighbor, if non-nil, is called for each transition curr→neighbor
	// before it is pushed. Return false to skip it.
	FilterNeighbor func(curr, neighbor S) bool

	// Recorder, if non-nil, receives a Snapshot after each processing step.
	// Returning false stops the search.
	Recorder trace.Recorder[S]

	// OnIteration, if non-nil, observes the result of every bound tried by
	// IterativeDeepening.
	OnIteration func(bound int, r core.Result[S])
}

// DefaultOptions returns a DFSOptions struct with:
//   - No hooks
//   - No neighbor filtering
//   - No recorder
func DefaultOptions[S comparable]() DFSOptions[S] {
	return DFSOptions[S]{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[S comparable](fn func(s S)) Option[S] {
	return func(o *DFSOptions[S]) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor returns an Option that filters transitions.
// If fn(curr, neighbor) == false, that neighbor is never pushed from curr.
func WithFilterNeighbor[S comparable](fn func(curr, neighbor S) bool) Option[S] {
	return func(o *DFSOptions[S]) {
		o.FilterNeighbor = fn
	}
}

// WithRecorder returns an Option that installs a snapshot recorder.
func WithRecorder[S comparable](rec trace.Recorder[S]) Option[S] {
	return func(o *DFSOptions[S]) {
		o.Recorder = rec
	}
}

// WithOnIteration returns an Option that observes each bound of
// IterativeDeepening together with the depth-limited result it produced.
func WithOnIteration[S comparable](fn func(bound int, r core.Result[S])) Option[S] {
	return func(o *DFSOptions[S]) {
		o.OnIteration = fn
	}
}

// buildOptions applies opts over the defaults.
func buildOptions[S comparable](opts []Option[S]) DFSOptions[S] {
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// successors returns the neighbors of s that pass the filter, in adapter order.
func (o *DFSOptions[S]) successors(p *core.Problem[S], s S) []S {
	nbs := p.Expand(s)
	if o.FilterNeighbor == nil {
		return nbs
	}
	kept := make([]S, 0, len(nbs))
	for _, n := range nbs {
		if o.FilterNeighbor(s, n) {
			kept = append(kept, n)
		}
	}

	return kept
}

// record forwards snap to the recorder, if any.
func (o *DFSOptions[S]) record(snap trace.Snapshot[S]) bool {
	if o.Recorder == nil {
		return true
	}

	return o.Recorder(snap)
}
