// Package bfs provides breadth-first search over a core.Problem,
// returning unweighted shortest-path distances, parent links, and visit order,
// and a bidirectional variant that joins two half-searches at a meeting point.
//
// What
//
//   - BFS explores states in non-decreasing distance (transitions) from the
//     initial state and returns a BFSResult containing:
//   - Order: dequeue sequence
//   - Depth: map from state → distance from start
//   - Parent: core.ParentMap with the BFS tree (PathTo rebuilds paths)
//   - Bidirectional runs a forward and a backward BFS in lock-step (one
//     expansion per side per round) and returns a core.Result: Found with the
//     spliced path, or Failure.
//   - Trace / BidirectionalTrace expose the searches as lazy, restartable
//     iter.Seq of trace.Snapshot values for external visualizers.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a state is discovered and marked visited)
//   - OnDequeue (immediately before expansion)
//   - Allows filtering of individual transitions via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable regions and level layering.
//   - Bidirectional search explores roughly two balls of half the radius.
//
// Determinism
//
//	Adapters return neighbors in a fixed order and BFS enqueues them in that
//	order, so the visit sequence is fully reproducible. In Bidirectional the
//	meeting point is the first forward-discovered state the backward side has
//	also reached; which state that is may change with adapter order, which can
//	change path length but never path validity.
//
// Complexity (V = |States|, E = |Transitions|)
//
//   - Time:   O(V + E)   (each state and transition seen at most once per side)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	p, _ := core.NewProblem[gridgraph.Cell](grid, start, core.WithGoal(goal))
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(p)
//	if err != nil {
//		// handle one of: ErrNilProblem, ErrStartInvalid, ErrOptionViolation
//	}
//	path, err := result.PathTo(goal)
//
//	// Bidirectional:
//	res, err := bfs.Bidirectional(p)
//	if res.Found() { /* res.Path */ }
//
//	// Snapshots:
//	for snap := range bfs.Trace(p) { /* render snap */ }
//
// Options
//
//   - DefaultOptions(): no-op hooks, no depth limit, no filtering, no recorder.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip transitions for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook when a state is enqueued.
//   - WithOnDequeue(fn):           hook immediately before expanding a state.
//   - WithRecorder(rec):           receive a trace.Snapshot per step.
//
// Errors
//
//   - ErrNilProblem       if the problem pointer is nil.
//   - ErrStartInvalid     if BFS starts from a state the space rejects.
//   - ErrNoGoalState      if Bidirectional is given a problem without WithGoal.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//
// Search outcomes are never errors: an unreachable goal is a Failure result.
package bfs
