package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of costs.
// The input is deep-copied, so later mutation of values does not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost if any cost is below zero.
// Complexity: O(W×H) time and memory.
func New(values [][]int64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	costs := make([]int64, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
		}
		costs = append(costs, row...)
	}

	return &Grid{Width: w, Height: h, costs: costs}, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CostAt returns the cost of entering c. The boolean is false when c is
// outside the grid; out-of-range input is a normal outcome, not an error.
func (g *Grid) CostAt(c Coord) (int64, bool) {
	if !g.InBounds(c) {
		return 0, false
	}

	return g.costs[g.Index(c)], true
}

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (width, height int) {
	return g.Width, g.Height
}

// Corner returns the bottom-right coordinate.
func (g *Grid) Corner() Coord {
	return Coord{X: g.Width - 1, Y: g.Height - 1}
}

// Index maps c to its row-major index: y*Width + x.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// Rows returns a deep copy of the costs as a 2D slice.
func (g *Grid) Rows() [][]int64 {
	rows := make([][]int64, g.Height)
	for y := range rows {
		rows[y] = make([]int64, g.Width)
		copy(rows[y], g.costs[y*g.Width:(y+1)*g.Width])
	}

	return rows
}

// Total returns the summed cost of entering every cell in cells.
// Out-of-bounds coordinates contribute nothing.
func (g *Grid) Total(cells []Coord) int64 {
	var sum int64
	for _, c := range cells {
		if v, ok := g.CostAt(c); ok {
			sum += v
		}
	}

	return sum
}

// ParseCoord reads "x,y" into a Coord. Whitespace around either number is ignored.
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("grid: coordinate %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("grid: coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("grid: coordinate %q: %w", s, err)
	}

	return Coord{X: x, Y: y}, nil
}
