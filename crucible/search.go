package crucible

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// FindCheapestPath computes the minimum-cost route from start to any state
// satisfying goal, obeying the movement policy in Options.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. goal must be non-nil (ErrNilGoal).
//  3. Options must be valid (ErrOptionViolation).
//  4. Policy must be valid (ErrBadPolicy).
//  5. start must lie inside g (ErrStartOutOfBounds).
//
// The start state is {start, NoDirection, 0} at cost 0; its own cell is not
// charged. A popped state finishes the search when goal(s) holds and the
// policy allows stopping there. If the frontier empties first the result is
// ErrNoPathFound.
//
// Complexity:
//
//   - Time:  O(S log S), S = reachable states ≤ W×H×4×MaxRun.
//   - Space: O(S).
func FindCheapestPath(g *grid.Grid, start grid.Coord, goal Goal, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, g.Width, g.Height)
	}

	// A rough upper bound on distinct states keeps early map growth cheap.
	hint := g.Width * g.Height * 4
	r := &runner{
		g:     g,
		goal:  goal,
		opts:  cfg,
		start: Start(start),
		best:  make(map[State]int64, hint),
		prev:  make(map[State]State, hint),
		pq:    make(statePQ, 0, g.Width+g.Height),
	}

	r.init()
	end, err := r.process()
	if err != nil {
		return nil, err
	}

	return r.result(end), nil
}

// runner holds the mutable state for a single search. Nothing in it outlives
// the FindCheapestPath call that created it.
type runner struct {
	g        *grid.Grid      // read-only input
	goal     Goal            // caller's termination predicate
	opts     Options         // policy, limits and hooks
	start    State           // initial state; the only one with NoDirection
	best     map[State]int64 // lowest known cumulative cost per state
	prev     map[State]State // predecessor on the best known route
	pq       statePQ         // lazy decrease-key min-heap
	expanded int             // states expanded so far
}

// init seeds the frontier with the start state at cost 0.
func (r *runner) init() {
	r.best[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: r.start, cost: 0})
}

// process is the main loop. It returns the first popped state that satisfies
// the goal, ErrNoPathFound when the frontier empties, or a cancellation or
// budget error.
func (r *runner) process() (State, error) {
	for r.pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return State{}, fmt.Errorf("crucible: search cancelled after %d expansions: %w", r.expanded, err)
		}

		item := heap.Pop(&r.pq).(*stateItem)
		s, d := item.state, item.cost

		// A cheaper route to s was relaxed after this entry was pushed.
		if d > r.best[s] {
			continue
		}

		if r.goal(s) && r.opts.Policy.CanStop(s) {
			return s, nil
		}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return State{}, fmt.Errorf("%w: %d states expanded", ErrBudgetExceeded, r.expanded)
		}
		r.expanded++
		r.opts.OnExpand(s, d)

		r.relax(s, d)
	}

	return State{}, ErrNoPathFound
}

// relax generates every legal successor of s and records strictly better costs.
func (r *runner) relax(s State, d int64) {
	for _, dir := range Directions {
		run, ok := r.opts.Policy.Allows(s, dir)
		if !ok {
			continue
		}
		pos := dir.Step(s.Pos)
		w, ok := r.g.CostAt(pos)
		if !ok {
			continue // left the grid
		}

		next := State{Pos: pos, Dir: dir, Run: run}
		nd := d + w
		if old, seen := r.best[next]; seen && nd >= old {
			continue
		}

		r.best[next] = nd
		r.prev[next] = s
		r.opts.OnPush(next, nd)
		heap.Push(&r.pq, &stateItem{state: next, cost: nd})
	}
}

// stateItem is a frontier entry: a state and the cumulative cost it was pushed with.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Ties are broken by heap order, which is deterministic for a given input.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element; called by heap.Push with a *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
