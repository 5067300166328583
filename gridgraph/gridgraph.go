// Package gridgraph provides the grid state-space adapter: a rectangular
// matrix of open (0) and blocked (1) cells whose states are Cell coordinates.
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Implements core.Space[Cell]; moves are reversible, so no Reverser is needed
//   - Conversion to a *core.Adjacency[Cell]
package gridgraph

import (
	"github.com/katalvlaran/lvsearch/core"
)

// offsets in expansion order, as (Δrow, Δcol)
var (
	offsets4 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	offsets8 = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCellValue if a value is neither Open nor Blocked.
// Complexity: O(R×C) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		for c, v := range values[r] {
			if v != Open && v != Blocked {
				return nil, ErrBadCellValue
			}
			cells[r][c] = v
		}
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		Rows:            rows,
		Cols:            cols,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Blocked reports whether c is a wall. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(c Cell) bool {
	return !g.InBounds(c) || g.CellValues[c.Row][c.Col] == Blocked
}

// Valid reports whether c is an open in-bounds cell.
func (g *Grid) Valid(c Cell) bool {
	return !g.Blocked(c)
}

// NeighborOffsets returns the precomputed (Δrow, Δcol) offsets in expansion order.
// The slice is shared and must not be modified.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the open in-bounds cells one move away from c, in
// offset order. Out-of-range c has no neighbors.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	offsets := g.NeighborOffsets()
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Valid(n) {
			out = append(out, n)
		}
	}

	return out
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	var out []Cell
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.CellValues[r][c] == Open {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}

	return out
}

// ToAdjacency converts the grid into an explicit *core.Adjacency[Cell].
// Every open cell becomes a node, visited in row-major order, with its
// neighbors in the grid's expansion order, so searches over either form
// behave identically.
// Complexity: O(R×C×d), Memory: O(R×C + E).
func (g *Grid) ToAdjacency() *core.Adjacency[Cell] {
	a := core.NewAdjacency[Cell]()
	for _, c := range g.OpenCells() {
		a.Add(c, g.Neighbors(c)...)
	}

	return a
}

// compile-time check
var _ core.Space[Cell] = (*Grid)(nil)
