// Package core provides the shared building blocks of every uninformed search
// in lvsearch.
//
// What
//
//   - Space / Reverser: the state-space adapter contract (neighbors, validity,
//     optional predecessors for asymmetric spaces).
//   - Problem: an immutable (space, initial state, goal test) value built with
//     NewProblem and functional options WithGoal / WithGoalFunc.
//   - Adjacency: a finite directed graph given as an ordered adjacency mapping.
//   - Set: the visitation tracker (O(1) membership, insertion-ordered listing).
//   - Queue / Stack: FIFO and LIFO frontier disciplines behind Frontier.
//   - Entry: a depth- and path-annotated frontier element for bounded search.
//   - ParentMap / Splice: path reconstruction from parent links, including the
//     two-halves join used by bidirectional search.
//   - Outcome / Result: the tagged Found | Cutoff | Failure search outcome.
//
// Why
//
//   - Keep every algorithm free of global state: each search owns its frontier,
//     visited set and parent links, and only the Result escapes.
//   - Represent cycles through value-identity lookups in sets and maps, never
//     through back-pointers.
//
// Determinism
//
//	Adapters return neighbors in a stable order, Set lists members in
//	insertion order, and Adjacency keeps edge-insertion order. Repeating a
//	search on the same Problem repeats it exactly.
//
// Errors:
//
//   - ErrNilSpace  NewProblem received a nil Space.
//   - ErrNilGoal   WithGoalFunc received a nil predicate.
//   - ErrNoPath    PathTo / Splice asked for an undiscovered state.
package core
