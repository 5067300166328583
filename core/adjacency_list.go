package core

import (
	"cmp"
	"slices"
)

// Adjacency is a finite directed graph given as an ordered adjacency mapping.
// It implements Space and Reverser. Neighbor order is insertion order and
// predecessor order is the order in which edges were added.
//
// Adjacency is built once and then read-only; it is not safe to call Add
// concurrently with searches.
type Adjacency[S comparable] struct {
	nodes []S       // insertion order of every known node
	index map[S]int // node → position in nodes
	out   map[S][]S // node → successors in adapter order
	in    map[S][]S // node → predecessors in edge-insertion order
}

// NewAdjacency returns an empty Adjacency.
// Complexity: O(1)
func NewAdjacency[S comparable]() *Adjacency[S] {
	return &Adjacency[S]{
		index: make(map[S]int),
		out:   make(map[S][]S),
		in:    make(map[S][]S),
	}
}

// AdjacencyFromMap builds an Adjacency from a plain map. Go maps are
// unordered, so keys are visited in sorted order; each neighbor slice keeps
// its own order.
// Complexity: O(V log V + E)
func AdjacencyFromMap[S cmp.Ordered](m map[S][]S) *Adjacency[S] {
	keys := make([]S, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	a := NewAdjacency[S]()
	for _, k := range keys {
		a.Add(k, m[k]...)
	}

	return a
}

// Add registers from and appends directed edges from→to for each to.
// Nodes are created on first mention; duplicate edges are ignored.
// Complexity: O(len(to) · deg(from))
func (a *Adjacency[S]) Add(from S, to ...S) {
	a.ensure(from)
	for _, t := range to {
		a.ensure(t)
		if slices.Contains(a.out[from], t) {
			continue
		}
		a.out[from] = append(a.out[from], t)
		a.in[t] = append(a.in[t], from)
	}
}

// ensure records id as a known node.
func (a *Adjacency[S]) ensure(id S) {
	if _, ok := a.index[id]; ok {
		return
	}
	a.index[id] = len(a.nodes)
	a.nodes = append(a.nodes, id)
}

// Neighbors returns a copy of the successors of s; unknown states have none.
func (a *Adjacency[S]) Neighbors(s S) []S {
	return slices.Clone(a.out[s])
}

// Predecessors returns a copy of the states with an edge into s.
func (a *Adjacency[S]) Predecessors(s S) []S {
	return slices.Clone(a.in[s])
}

// Valid reports whether s is a known node.
func (a *Adjacency[S]) Valid(s S) bool {
	_, ok := a.index[s]

	return ok
}

// Nodes returns every known node in first-mention order.
func (a *Adjacency[S]) Nodes() []S {
	return slices.Clone(a.nodes)
}

// EdgeCount returns the number of directed edges.
func (a *Adjacency[S]) EdgeCount() int {
	n := 0
	for _, succ := range a.out {
		n += len(succ)
	}

	return n
}
