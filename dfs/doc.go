// Package dfs implements the depth-first family of uninformed searches on a
// core.Problem: exhaustive traversal, depth-limited search and iterative
// deepening.
//
// What:
//
//   - Trace: explores as far as possible along each branch before
//     backtracking, using an explicit LIFO stack. A state is marked visited
//     when popped; neighbors are pushed in reverse adapter order so the first
//     neighbor is explored first. Returns the visitation order. No goal check.
//   - DepthLimited: goal-directed DFS over (state, depth, path) entries that
//     never expands an entry at the limit. Returns a three-way core.Result:
//   - Found(path): the first goal in exploration order
//   - Cutoff: some branch was truncated by the limit
//   - Failure: the space was exhausted within the limit
//   - IterativeDeepening: DepthLimited with bounds 0, 1, …, maxBound-1; the
//     first Found has the fewest transitions.
//   - TraceSeq / DepthLimitedSeq: lazy, restartable iter.Seq of
//     trace.Snapshot values.
//
// Why:
//   - DFS order is the natural order for reachability, exhaustive
//     enumeration and visualization of backtracking.
//   - Cutoff vs Failure tells the caller whether a larger bound could help.
//   - Iterative deepening gives BFS-like shortest paths with DFS memory.
//
// Cycle policy:
//
//	Trace uses a global visited set. DepthLimited only rejects states already
//	on the current path, so a state may be re-entered through another path;
//	on spaces with many alternate routes the work is exponential in the
//	limit. Completeness of IterativeDeepening is bounded by maxBound: if every
//	bound ends in Cutoff the result is Failure.
//
// Complexity:
//
//   - Trace:              Time O(V+E), Memory O(V+E) (stack may hold duplicates)
//   - DepthLimited:       Time O(b^l), Memory O(b·l²) (paths are copied per entry)
//   - IterativeDeepening: Time O(b^d), Memory O(b·d²)
//
// Options:
//
//   - WithOnVisit(fn)           hook on every processed state or entry.
//   - WithFilterNeighbor(fn)    skip transitions for which fn(curr, nbr) == false.
//   - WithRecorder(rec)         receive a trace.Snapshot per processing step.
//   - WithOnIteration(fn)       observe each IterativeDeepening bound.
//
// Errors:
//
//   - ErrNilProblem      problem pointer is nil
//   - ErrStartInvalid    Trace start is not a valid state
//   - ErrNegativeLimit   limit or maxBound below zero
//
// Search outcomes are never errors; an invalid start in DepthLimited or
// IterativeDeepening is a Failure with no exploration.
package dfs
