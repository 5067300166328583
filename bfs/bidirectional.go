package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// side is one half of a bidirectional search: its own queue, visited set
// and parent links, expanding with its own transition rule.
type side[S comparable] struct {
	queue   *core.Queue[S]
	visited *core.Set[S]
	parent  *core.ParentMap[S]
	expand  func(S) []S
}

func newSide[S comparable](root S, expand func(S) []S) *side[S] {
	sd := &side[S]{
		queue:   core.NewQueue[S](16),
		visited: core.NewSet[S](16),
		parent:  core.NewParentMap(root, 16),
		expand:  expand,
	}
	sd.visited.Add(root)
	sd.queue.Push(root)

	return sd
}

// step dequeues one state and enqueues its unseen neighbors.
// forward controls the orientation of recorded edges.
func (sd *side[S]) step(o *BFSOptions[S], edges *trace.EdgeSet[S], forward bool) S {
	cur, _ := sd.queue.Pop()
	o.OnDequeue(cur, 0)
	for _, nbr := range sd.expand(cur) {
		if forward {
			if !o.FilterNeighbor(cur, nbr) {
				continue
			}
			edges.Add(cur, nbr)
		} else {
			if !o.FilterNeighbor(nbr, cur) {
				continue
			}
			edges.Add(nbr, cur)
		}
		if sd.visited.Add(nbr) {
			sd.parent.Set(nbr, cur)
			o.OnEnqueue(nbr, 0)
			sd.queue.Push(nbr)
		}
	}

	return cur
}

// Bidirectional runs two breadth-first frontiers in lock-step, one forward
// from p.Initial() and one backward from the goal state, until their visited
// sets intersect.
//
// The backward frontier expands through core.Reverser when the space
// implements it, otherwise through Neighbors (the space is then assumed to
// be symmetric, as grids are).
//
// Outcomes:
//   - Failure, with no expansion, when start or goal is not a valid state.
//   - Found([start]) when start equals goal.
//   - Found(path) once the frontiers meet; the meeting point is the first
//     state, in forward discovery order, that the backward side also reached.
//     The path is valid and repeat-free but not guaranteed to be shortest.
//   - Failure when either frontier is exhausted first.
//
// The hooks of BFSOptions receive depth 0; MaxDepth is ignored. Recorder
// snapshots are taken after each round and merge both sides; a Recorder
// returning false abandons the search with Failure.
// Returns ErrNilProblem, ErrNoGoalState or ErrOptionViolation for invalid input.
func Bidirectional[S comparable](p *core.Problem[S], opts ...Option[S]) (core.Result[S], error) {
	if p == nil {
		return core.Result[S]{}, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return core.Result[S]{}, err
	}
	start := p.Initial()
	goal, ok := p.Goal()
	if !ok {
		return core.Result[S]{}, ErrNoGoalState
	}

	// precondition: both endpoints must be open/known states
	if !p.Valid(start) || !p.Valid(goal) {
		return core.FailureResult[S](), nil
	}
	if start == goal {
		return core.FoundPath([]S{start}), nil
	}

	fwd := newSide(start, p.Expand)
	bwd := newSide(goal, p.ExpandReverse)
	edges := trace.NewEdgeSet[S]()
	expanded := 0

	var zero S
	if !recordRound(&o, 0, zero, fwd, bwd, edges) {
		return core.Result[S]{Outcome: core.Failure}, nil
	}
	for round := 1; !fwd.queue.IsEmpty() && !bwd.queue.IsEmpty(); round++ {
		cur := fwd.step(&o, edges, true)
		bwd.step(&o, edges, false)
		expanded += 2

		if meet, found := fwd.visited.Intersect(bwd.visited); found {
			path, err := core.Splice(fwd.parent, bwd.parent, meet)
			if err != nil {
				return core.Result[S]{}, fmt.Errorf("bfs: splice at %v: %w", meet, err)
			}
			recordRound(&o, round, cur, fwd, bwd, edges)
			res := core.FoundPath(path)
			res.Expanded = expanded

			return res, nil
		}
		if !recordRound(&o, round, cur, fwd, bwd, edges) {
			break
		}
	}

	return core.Result[S]{Outcome: core.Failure, Expanded: expanded}, nil
}

// recordRound emits one merged snapshot of both sides.
func recordRound[S comparable](o *BFSOptions[S], round int, current S, fwd, bwd *side[S], edges *trace.EdgeSet[S]) bool {
	if o.Recorder == nil {
		return true
	}
	visited := fwd.visited.Items()
	for _, s := range bwd.visited.Items() {
		if !fwd.visited.Has(s) {
			visited = append(visited, s)
		}
	}
	frontier := append(fwd.queue.Items(), bwd.queue.Items()...)

	return o.Recorder(trace.Snapshot[S]{
		Step:     round,
		Current:  current,
		Visited:  visited,
		Frontier: frontier,
		Edges:    edges.Items(),
	})
}
