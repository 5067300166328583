// Package bfs provides breadth-first search over a core.Problem,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus a bidirectional variant that meets in the middle.
//
// BFS explores states in increasing distance from the initial state,
// with optional hooks, depth limiting, neighbor filtering and snapshots.
package bfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/trace"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	problem *core.Problem[S]
	opts    BFSOptions[S]
	queue   *core.Queue[queueItem[S]]
	visited *core.Set[S]
	edges   *trace.EdgeSet[S]
	res     *BFSResult[S]
	step    int
}

// BFS runs breadth-first search on p starting from p.Initial(),
// applying any number of functional Options.
// A state is marked visited when it is enqueued, so no state is queued twice.
// Returns ErrNilProblem or ErrStartInvalid for invalid input and
// ErrOptionViolation for bad options. A Recorder that returns false ends the
// traversal early without error; the result then covers the explored part.
func BFS[S comparable](p *core.Problem[S], opts ...Option[S]) (*BFSResult[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start := p.Initial()
	if !p.Valid(start) {
		return nil, ErrStartInvalid
	}

	// Prepare walker
	w := &walker[S]{
		problem: p,
		opts:    o,
		queue:   core.NewQueue[queueItem[S]](16),
		visited: core.NewSet[S](16),
		edges:   trace.NewEdgeSet[S](),
		res: &BFSResult[S]{
			Depth:  make(map[S]int),
			Parent: core.NewParentMap(start, 16),
		},
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, 0)
	w.loop()
	w.res.Edges = w.edges.Len()

	return w.res, nil
}

// enqueue marks s visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.visited.Add(s)
	w.res.Depth[s] = d
	w.opts.OnEnqueue(s, d)
	w.queue.Push(queueItem[S]{state: s, depth: d})
}

// loop processes the queue until it is empty or the recorder asks to stop.
func (w *walker[S]) loop() {
	var zero S
	if !w.record(zero) {
		return
	}
	for !w.queue.IsEmpty() {
		item, _ := w.queue.Pop()
		w.opts.OnDequeue(item.state, item.depth)
		w.res.Order = append(w.res.Order, item.state)
		w.enqueueNeighbors(item)
		if !w.record(item.state) {
			return
		}
	}
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	for _, nbr := range w.problem.Expand(item.state) {
		if !w.opts.FilterNeighbor(item.state, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.edges.Add(item.state, nbr)

		// first time seen?
		if !w.visited.Has(nbr) {
			w.res.Parent.Set(nbr, item.state)
			w.enqueue(nbr, nextDepth)
		}
	}
}

// record emits a snapshot for the current step, if a recorder is installed.
func (w *walker[S]) record(current S) bool {
	if w.opts.Recorder == nil {
		return true
	}
	items := w.queue.Items()
	frontier := make([]S, len(items))
	for i, it := range items {
		frontier[i] = it.state
	}
	snap := trace.Snapshot[S]{
		Step:     w.step,
		Current:  current,
		Visited:  w.visited.Items(),
		Frontier: frontier,
		Edges:    w.edges.Items(),
	}
	w.step++

	return w.opts.Recorder(snap)
}
