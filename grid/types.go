package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is wrapped by every construction error below.
var ErrMalformedGrid = errors.New("grid: malformed grid")

// Sentinel errors for grid construction. Each one wraps ErrMalformedGrid.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNegativeCost indicates a cell holds a cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: cell cost must be non-negative", ErrMalformedGrid)
	// ErrBadCell indicates a character that cannot be read as a cost.
	ErrBadCell = fmt.Errorf("%w: cell is not a decimal digit", ErrMalformedGrid)
)

// Coord is a signed 2-D coordinate. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats the coordinate as "x,y", the same form ParseCoord accepts.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Grid is an immutable 2-D map of traversal costs.
// Width and Height are fixed at construction; costs are stored row-major.
type Grid struct {
	Width, Height int
	costs         []int64
}
