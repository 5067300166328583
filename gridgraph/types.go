// Package gridgraph defines the cell, connectivity and option types
// for the grid state-space adapter of github.com/katalvlaran/lvsearch.
package gridgraph

import "fmt"

// Cell values accepted by NewGrid.
const (
	Open    = 0 // traversable cell
	Blocked = 1 // wall
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in the order right, down, left, up.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: right, down-right, down, down-left,
	// left, up-left, up, up-right.
	Conn8
)

// Cell is a grid coordinate. It is the State type of a Grid.
type Cell struct {
	Row, Col int
}

// String formats the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid treats a rectangular matrix of Open/Blocked cells as a state space.
// It is immutable once built. CellValues[row][col] holds the input value.
// neighborOffsets is precomputed as (Δrow, Δcol) pairs in expansion order.
type Grid struct {
	Rows, Cols      int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}
