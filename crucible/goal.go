package crucible

import "github.com/katalvlaran/crucible/grid"

// Goal decides whether a popped state ends the search.
type Goal func(State) bool

// AtCoord is satisfied by any state standing on c, whatever its direction or run.
func AtCoord(c grid.Coord) Goal {
	return func(s State) bool { return s.Pos == c }
}

// AtCorner is satisfied on the bottom-right cell of g.
func AtCorner(g *grid.Grid) Goal {
	return AtCoord(g.Corner())
}

// CheapestToCorner searches from the top-left cell to the bottom-right one.
func CheapestToCorner(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return FindCheapestPath(g, grid.C(0, 0), AtCorner(g), opts...)
}
