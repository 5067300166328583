// Package gridgraph treats a 2D grid of open and blocked cells as a finite,
// unweighted state space for the searches in bfs and dfs.
//
// What:
//
//   - Grid wraps a rectangular [][]int of 0 (open) and 1 (blocked) values.
//   - States are Cell{Row, Col}; Neighbors yields the open in-bounds cells one
//     move away, in a fixed order (right, down, left, up for Conn4).
//   - Out-of-range coordinates and walls are filtered by Neighbors, so search
//     algorithms never observe an invalid state.
//   - ToAdjacency converts the grid into an explicit *core.Adjacency[Cell].
//
// Why:
//
//   - Mazes and occupancy maps: shortest routes, reachability, depth-bounded
//     exploration.
//
// Complexity:
//
//   - NewGrid:      O(R×C), Memory: O(R×C).
//   - Neighbors:    O(d) (d = number of neighbors, 4 or 8).
//   - ToAdjacency:  O(R×C×d), Memory: O(R×C + E).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellValue: a value other than 0 or 1.
package gridgraph
