// Package core defines the central state-space abstractions shared by every
// search in lvsearch: the Space adapter contract, the immutable Problem value,
// and the sentinel errors for building them.
//
// This file declares Space, Reverser, Problem, ProblemOption, sentinel errors,
// and the NewProblem constructor.
//
// Errors:
//
//	ErrNilSpace  - the Space passed to NewProblem is nil.
//	ErrNoPath    - a path was requested to a state that was never discovered.
//	ErrNilGoal   - WithGoalFunc was given a nil predicate.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrNilSpace indicates that NewProblem received a nil Space.
	ErrNilSpace = errors.New("core: space is nil")

	// ErrNoPath indicates that a path was requested to an undiscovered state.
	ErrNoPath = errors.New("core: no path to state")

	// ErrNilGoal indicates that a nil goal predicate was supplied.
	ErrNilGoal = errors.New("core: goal predicate is nil")
)

// Space is the neighbor-expansion rule of a finite state space.
//
// Neighbors must be deterministic and return only states reachable by one
// legal transition from s, in a stable order. Invalid states (out of range,
// blocked, unknown) are never returned.
// Valid reports whether s is a legal state of the space at all.
type Space[S comparable] interface {
	Neighbors(s S) []S
	Valid(s S) bool
}

// Reverser is implemented by spaces whose transitions are not symmetric.
// Predecessors returns every state p with s in Neighbors(p), in a stable order.
// Bidirectional search expands the backward frontier through it; spaces that
// do not implement Reverser are assumed to be symmetric.
type Reverser[S comparable] interface {
	Predecessors(s S) []S
}

// Problem holds the initial state, the goal test and the expansion rule.
// It is immutable once built and safe for concurrent searches.
type Problem[S comparable] struct {
	space   Space[S]
	initial S
	goal    S
	hasGoal bool
	isGoal  func(S) bool
}

// ProblemOption configures a Problem before creation.
type ProblemOption[S comparable] func(p *Problem[S]) error

// WithGoal sets an explicit goal state. Bidirectional search requires one.
func WithGoal[S comparable](goal S) ProblemOption[S] {
	return func(p *Problem[S]) error {
		p.goal = goal
		p.hasGoal = true
		p.isGoal = func(s S) bool { return s == goal }

		return nil
	}
}

// WithGoalFunc sets a goal predicate without a single goal state.
// It overrides the predicate installed by WithGoal but keeps its state.
func WithGoalFunc[S comparable](fn func(S) bool) ProblemOption[S] {
	return func(p *Problem[S]) error {
		if fn == nil {
			return ErrNilGoal
		}
		p.isGoal = fn

		return nil
	}
}

// NewProblem builds a Problem over space starting at initial.
// Without a goal option IsGoal reports false for every state, which is what
// plain traversals (BFS, DFS trace) expect.
// Complexity: O(1)
func NewProblem[S comparable](space Space[S], initial S, opts ...ProblemOption[S]) (*Problem[S], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	p := &Problem[S]{
		space:   space,
		initial: initial,
		isGoal:  func(S) bool { return false },
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("core: NewProblem: %w", err)
		}
	}

	return p, nil
}

// Space returns the underlying state space.
func (p *Problem[S]) Space() Space[S] { return p.space }

// Initial returns the initial state.
func (p *Problem[S]) Initial() S { return p.initial }

// Goal returns the explicit goal state and whether one was configured.
func (p *Problem[S]) Goal() (S, bool) { return p.goal, p.hasGoal }

// IsGoal applies the goal test to s.
func (p *Problem[S]) IsGoal(s S) bool { return p.isGoal(s) }

// Expand returns the successors of s in adapter order.
func (p *Problem[S]) Expand(s S) []S { return p.space.Neighbors(s) }

// ExpandReverse returns the predecessors of s, falling back to Neighbors
// for symmetric spaces.
func (p *Problem[S]) ExpandReverse(s S) []S {
	if r, ok := p.space.(Reverser[S]); ok {
		return r.Predecessors(s)
	}

	return p.space.Neighbors(s)
}

// Valid reports whether s is a legal state of the problem's space.
func (p *Problem[S]) Valid(s S) bool { return p.space.Valid(s) }
