// Package trace defines the narrow boundary between search algorithms and
// any external consumer of their intermediate states (visualizers, loggers,
// test probes).
//
// An algorithm emits a Snapshot per processing step through a Recorder.
// Snapshots are value copies: a consumer may keep, reorder or replay them
// after the search returned, and nothing it does can reach back into the
// search. Returning false from a Recorder asks the search to stop early.
package trace

import "slices"

// Edge is a directed transition examined during expansion.
type Edge[S comparable] struct {
	From, To S
}

// Snapshot is one step of a search.
//   - Step: 0 for the seeded frontier, then 1, 2, ... per processing step.
//   - Current: the state processed in this step (zero for step 0).
//   - Visited: visited states in the order they were marked.
//   - Frontier: frontier contents (queue head first, stack bottom first).
//   - Edges: every transition examined so far, first examination order.
type Snapshot[S comparable] struct {
	Step     int
	Current  S
	Visited  []S
	Frontier []S
	Edges    []Edge[S]
}

// Clone returns a deep copy of s.
func (s Snapshot[S]) Clone() Snapshot[S] {
	return Snapshot[S]{
		Step:     s.Step,
		Current:  s.Current,
		Visited:  slices.Clone(s.Visited),
		Frontier: slices.Clone(s.Frontier),
		Edges:    slices.Clone(s.Edges),
	}
}

// HasVisited reports whether state was visited at this step.
func (s Snapshot[S]) HasVisited(state S) bool {
	return slices.Contains(s.Visited, state)
}

// Recorder receives snapshots. Returning false stops the search.
type Recorder[S comparable] func(Snapshot[S]) bool

// EdgeSet accumulates examined edges without duplicates, preserving first
// examination order. Algorithms own one per invocation.
type EdgeSet[S comparable] struct {
	seen  map[Edge[S]]struct{}
	order []Edge[S]
}

// NewEdgeSet returns an empty EdgeSet.
func NewEdgeSet[S comparable]() *EdgeSet[S] {
	return &EdgeSet[S]{seen: make(map[Edge[S]]struct{})}
}

// Add records from→to once.
func (es *EdgeSet[S]) Add(from, to S) {
	e := Edge[S]{From: from, To: to}
	if _, ok := es.seen[e]; ok {
		return
	}
	es.seen[e] = struct{}{}
	es.order = append(es.order, e)
}

// Items returns a copy of the edges in first examination order.
func (es *EdgeSet[S]) Items() []Edge[S] {
	return slices.Clone(es.order)
}

// Len returns the number of distinct edges.
func (es *EdgeSet[S]) Len() int { return len(es.order) }

// Collector is a Recorder target that keeps every snapshot, optionally up
// to a maximum count.
type Collector[S comparable] struct {
	// Limit stops the search after this many snapshots when > 0.
	Limit     int
	Snapshots []Snapshot[S]
}

// Record stores snap and reports whether the search should continue.
func (c *Collector[S]) Record(snap Snapshot[S]) bool {
	c.Snapshots = append(c.Snapshots, snap)

	return c.Limit <= 0 || len(c.Snapshots) < c.Limit
}

// Last returns the final snapshot, if any.
func (c *Collector[S]) Last() (Snapshot[S], bool) {
	if len(c.Snapshots) == 0 {
		return Snapshot[S]{}, false
	}

	return c.Snapshots[len(c.Snapshots)-1], true
}
