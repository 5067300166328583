// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Problem.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilProblem is returned if a nil problem pointer is passed.
	ErrNilProblem = errors.New("bfs: problem is nil")

	// ErrStartInvalid is returned when the initial state is not valid in the space.
	ErrStartInvalid = errors.New("bfs: start state is not valid")

	// ErrNoGoalState is returned by Bidirectional when the problem has no explicit goal state.
	ErrNoGoalState = errors.New("bfs: problem has no goal state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option[S comparable] func(*BFSOptions[S])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[S comparable] struct {
	// OnEnqueue is called when a state is enqueued (and marked visited).
	// Receives the state and its depth from the start.
	OnEnqueue func(s S, depth int)

	// OnDequeue is called immediately before a state is expanded.
	OnDequeue func(s S, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	// Called for each transition curr→neighbor.
	FilterNeighbor func(curr, neighbor S) bool

	// Recorder, if non-nil, receives a Snapshot per processing step.
	// Returning false stops the search early.
	Recorder trace.Recorder[S]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue)
//   - no recorder.
func DefaultOptions[S comparable]() BFSOptions[S] {
	return BFSOptions[S]{
		OnEnqueue:      func(S, int) {},
		OnDequeue:      func(S, int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ S) bool { return true },
		Recorder:       nil,
		err:            nil,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *BFSOptions[S]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, neighbor S) bool) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithRecorder installs a snapshot recorder.
func WithRecorder[S comparable](rec trace.Recorder[S]) Option[S] {
	return func(o *BFSOptions[S]) {
		o.Recorder = rec
	}
}

// buildOptions applies opts over the defaults.
func buildOptions[S comparable](opts []Option[S]) (BFSOptions[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states in dequeue sequence.
//   - Depth: map from state to its distance (in transitions) from the start.
//   - Parent: discovering predecessor of every reached state.
//   - Edges: number of distinct transitions examined.
type BFSResult[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent *core.ParentMap[S]
	Edges  int
}

// PathTo reconstructs the path from the start state to dest.
// Returns an error wrapping core.ErrNoPath if dest was not reached.
func (r *BFSResult[S]) PathTo(dest S) ([]S, error) {
	path, err := r.Parent.PathTo(dest)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	return path, nil
}
