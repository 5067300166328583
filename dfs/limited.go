package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// limiter runs one depth-limited search with an explicit stack of entries.
type limiter[S comparable] struct {
	problem  *core.Problem[S]
	opts     *DFSOptions[S]
	limit    int
	stack    *core.Stack[core.Entry[S]]
	edges    *trace.EdgeSet[S]
	cutoff   bool
	stopped  bool
	expanded int
	step     int
}

// DepthLimited searches p depth-first for a goal state no deeper than limit
// transitions from p.Initial().
//
// The stack is seeded with (initial, 0, [initial]). On every pop:
//   - a goal state returns Found with the entry's path (the first goal in
//     exploration order, not necessarily the shortest);
//   - an entry at the limit is not expanded; if it still had a successor off
//     its own path a cutoff is recorded;
//   - otherwise successors not on the entry's path are pushed in reverse
//     adapter order with depth+1 and a freshly copied path.
//
// When the stack empties the result is Cutoff if any branch was truncated,
// Failure otherwise. Cycle avoidance is scoped to the current path, so a
// state can be re-entered through a different path; on spaces with many
// alternate routes the work grows exponentially with the limit.
//
// An invalid initial state yields Failure without exploration. A Recorder
// returning false abandons the search with Cutoff.
// Returns ErrNilProblem or ErrNegativeLimit for invalid input.
func DepthLimited[S comparable](p *core.Problem[S], limit int, opts ...Option[S]) (core.Result[S], error) {
	if p == nil {
		return core.Result[S]{}, ErrNilProblem
	}
	if limit < 0 {
		return core.Result[S]{}, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	o := buildOptions(opts)
	res, _ := depthLimited(p, limit, &o)

	return res, nil
}

// depthLimited runs one bound and reports whether the recorder stopped it.
func depthLimited[S comparable](p *core.Problem[S], limit int, o *DFSOptions[S]) (core.Result[S], bool) {
	start := p.Initial()
	if !p.Valid(start) {
		return core.Result[S]{Outcome: core.Failure, Bound: limit}, false
	}

	l := &limiter[S]{
		problem: p,
		opts:    o,
		limit:   limit,
		stack:   core.NewStack[core.Entry[S]](16),
		edges:   trace.NewEdgeSet[S](),
	}
	l.stack.Push(core.Root(start))
	res := l.run()
	res.Bound = limit
	res.Expanded = l.expanded

	return res, l.stopped
}

// run pops entries until a goal is found or the stack is exhausted.
func (l *limiter[S]) run() core.Result[S] {
	for !l.stack.IsEmpty() {
		e, _ := l.stack.Pop()
		if l.opts.OnVisit != nil {
			l.opts.OnVisit(e.State)
		}
		if l.problem.IsGoal(e.State) {
			l.record(e)

			return core.FoundPath(e.Path)
		}

		var fresh []S
		for _, n := range l.opts.successors(l.problem, e.State) {
			if !e.OnPath(n) {
				fresh = append(fresh, n)
			}
		}
		if e.Depth >= l.limit {
			if len(fresh) > 0 {
				l.cutoff = true
			}
		} else {
			l.expanded++
			for _, n := range fresh {
				l.edges.Add(e.State, n)
			}
			for i := len(fresh) - 1; i >= 0; i-- {
				l.stack.Push(e.Child(fresh[i]))
			}
		}
		if !l.record(e) {
			l.stopped = true

			return core.CutoffResult[S]()
		}
	}
	if l.cutoff {
		return core.CutoffResult[S]()
	}

	return core.FailureResult[S]()
}

// record emits a snapshot: e's path as Visited, stacked states bottom..top.
func (l *limiter[S]) record(e core.Entry[S]) bool {
	if l.opts.Recorder == nil {
		return true
	}
	entries := l.stack.Items()
	frontier := make([]S, len(entries))
	for i, it := range entries {
		frontier[i] = it.State
	}
	l.step++

	return l.opts.record(trace.Snapshot[S]{
		Step:     l.step,
		Current:  e.State,
		Visited:  append([]S(nil), e.Path...),
		Frontier: frontier,
		Edges:    l.edges.Items(),
	})
}
