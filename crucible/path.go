package crucible

import (
	"slices"

	"github.com/katalvlaran/crucible/grid"
)

// Step is one element of a returned route.
type Step struct {
	State
	// Cost is what entering State.Pos cost; zero for the start.
	Cost int64
	// Total is the cumulative cost up to and including this step.
	Total int64
}

// Result is the outcome of a successful search.
type Result struct {
	// Path runs from the start state to the goal state inclusive.
	Path []Step
	// Cost is the minimum total cost; equal to the last step's Total.
	Cost int64
	// Expanded counts states popped and expanded during the search.
	Expanded int
}

// result rebuilds the route ending at end by walking predecessors back to
// the start state.
func (r *runner) result(end State) *Result {
	var states []State
	for s := end; ; {
		states = append(states, s)
		if s == r.start {
			break
		}
		s = r.prev[s]
	}
	slices.Reverse(states)

	path := make([]Step, len(states))
	for i, s := range states {
		total := r.best[s]
		step := Step{State: s, Total: total}
		if i > 0 {
			step.Cost = total - path[i-1].Total
		}
		path[i] = step
	}

	return &Result{Path: path, Cost: r.best[end], Expanded: r.expanded}
}

// Cells returns the positions visited, start included.
func (res *Result) Cells() []grid.Coord {
	cells := make([]grid.Coord, len(res.Path))
	for i, st := range res.Path {
		cells[i] = st.Pos
	}

	return cells
}

// Directions returns the moves taken, one per step after the start.
func (res *Result) Directions() []Direction {
	if len(res.Path) == 0 {
		return nil
	}
	dirs := make([]Direction, 0, len(res.Path)-1)
	for _, st := range res.Path[1:] {
		dirs = append(dirs, st.Dir)
	}

	return dirs
}

// Render draws the route over g's costs: each entered cell shows the arrow
// of the move into it and the start shows 'S'.
func (res *Result) Render(g *grid.Grid) string {
	marks := make(map[grid.Coord]rune, len(res.Path))
	for _, st := range res.Path {
		marks[st.Pos] = st.Dir.Arrow()
	}
	if len(res.Path) > 0 {
		marks[res.Path[0].Pos] = 'S'
	}

	return g.Render(marks, g.CostRune)
}
