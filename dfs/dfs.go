// Package dfs implements depth-first traversal, depth-limited search and
// iterative deepening over a core.Problem.
package dfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// dfsWalker encapsulates state during a depth-first traversal.
type dfsWalker[S comparable] struct {
	problem *core.Problem[S]
	opts    DFSOptions[S]
	stack   *core.Stack[S]
	visited *core.Set[S]
	edges   *trace.EdgeSet[S]
	order   []S
	step    int
}

// Trace performs an exhaustive depth-first traversal from p.Initial() and
// returns the visitation order. There is no goal check.
//
// A state is marked visited when it is popped, not when it is pushed, so it
// may sit on the stack several times and is discarded on every later pop.
// Unvisited neighbors are pushed in reverse adapter order so that the first
// neighbor is explored first.
//
// Returns ErrNilProblem or ErrStartInvalid for invalid input. A Recorder
// returning false ends the traversal early; the order then covers the
// states processed so far.
func Trace[S comparable](p *core.Problem[S], opts ...Option[S]) ([]S, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	start := p.Initial()
	if !p.Valid(start) {
		return nil, ErrStartInvalid
	}

	w := &dfsWalker[S]{
		problem: p,
		opts:    buildOptions(opts),
		stack:   core.NewStack[S](16),
		visited: core.NewSet[S](16),
		edges:   trace.NewEdgeSet[S](),
	}
	w.stack.Push(start)
	w.run()

	return w.order, nil
}

// run pops until the stack is empty or the recorder asks to stop.
func (w *dfsWalker[S]) run() {
	var zero S
	if !w.record(zero) {
		return
	}
	for !w.stack.IsEmpty() {
		s, _ := w.stack.Pop()
		if !w.visited.Add(s) {
			continue
		}
		w.order = append(w.order, s)
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(s)
		}

		succ := w.opts.successors(w.problem, s)
		for _, n := range succ {
			w.edges.Add(s, n)
		}
		for i := len(succ) - 1; i >= 0; i-- {
			if !w.visited.Has(succ[i]) {
				w.stack.Push(succ[i])
			}
		}
		if !w.record(s) {
			return
		}
	}
}

// record emits a snapshot: visited states, stack bottom..top, examined edges.
func (w *dfsWalker[S]) record(current S) bool {
	if w.opts.Recorder == nil {
		return true
	}
	snap := trace.Snapshot[S]{
		Step:     w.step,
		Current:  current,
		Visited:  w.visited.Items(),
		Frontier: w.stack.Items(),
		Edges:    w.edges.Items(),
	}
	w.step++

	return w.opts.record(snap)
}
