package gridgraph

import "errors"

// Sentinel errors for gridgraph construction.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCellValue indicates a cell value other than Open (0) or Blocked (1).
	ErrBadCellValue = errors.New("gridgraph: cell values must be 0 (open) or 1 (blocked)")
)
