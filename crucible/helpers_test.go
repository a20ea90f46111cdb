package crucible_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/grid"
)

// canonical is the 13×13 example city block map.
const canonical = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

// mustParse parses text or fails the test.
func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g
}

// randomGrid builds a w×h grid with costs in [lo, hi], seeded for reproducibility.
func randomGrid(t testing.TB, r *rand.Rand, w, h int, lo, hi int64) *grid.Grid {
	t.Helper()
	vals := make([][]int64, h)
	for y := range vals {
		vals[y] = make([]int64, w)
		for x := range vals[y] {
			vals[y][x] = lo + r.Int63n(hi-lo+1)
		}
	}
	g, err := grid.New(vals)
	require.NoError(t, err)

	return g
}

// requireValidPath checks every structural invariant of a returned route:
// it starts at start with no direction, each step moves one cell in its
// direction, runs are counted correctly, reversals never happen, runs stay
// within the policy, and the costs add up to the entered cells only.
func requireValidPath(t *testing.T, g *grid.Grid, start grid.Coord, p crucible.Policy, res *crucible.Result) {
	t.Helper()
	require.NotEmpty(t, res.Path)

	first := res.Path[0]
	require.Equal(t, crucible.Start(start), first.State, "path must begin at the start state")
	require.Zero(t, first.Cost, "start cell is never charged")
	require.Zero(t, first.Total)

	var sum int64
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		require.Equal(t, cur.Dir.Step(prev.Pos), cur.Pos, "step %d must move one cell %v", i, cur.Dir)

		w, ok := g.CostAt(cur.Pos)
		require.True(t, ok, "step %d leaves the grid at %v", i, cur.Pos)
		require.Equal(t, w, cur.Cost, "step %d must cost the entered cell", i)
		sum += w
		require.Equal(t, sum, cur.Total, "running total at step %d", i)

		if prev.Dir != crucible.NoDirection {
			require.NotEqual(t, prev.Dir.Opposite(), cur.Dir, "reversal at step %d", i)
		}
		if cur.Dir == prev.Dir {
			require.Equal(t, prev.Run+1, cur.Run, "run must grow on repeat at step %d", i)
		} else {
			require.Equal(t, 1, cur.Run, "run must reset on turn at step %d", i)
			if prev.Dir != crucible.NoDirection {
				require.GreaterOrEqual(t, prev.Run, p.MinRun, "turned too early at step %d", i)
			}
		}
		require.LessOrEqual(t, cur.Run, p.MaxRun, "run cap exceeded at step %d", i)
	}

	last := res.Path[len(res.Path)-1]
	require.GreaterOrEqual(t, last.Run, p.MinRun, "stopped before MinRun")
	require.Equal(t, sum, res.Cost)
	require.GreaterOrEqual(t, res.Cost, int64(0))
}

// fixpointCost computes the optimum by Bellman–Ford style relaxation over
// every augmented state until nothing changes. It shares no code with the
// heap-driven search and returns -1 when the goal is unreachable.
func fixpointCost(g *grid.Grid, start, goal grid.Coord, p crucible.Policy) int64 {
	const inf = int64(math.MaxInt64)
	dist := map[crucible.State]int64{crucible.Start(start): 0}
	for changed := true; changed; {
		changed = false
		for s, d := range dist {
			for _, dir := range crucible.Directions {
				run, ok := p.Allows(s, dir)
				if !ok {
					continue
				}
				pos := dir.Step(s.Pos)
				w, ok := g.CostAt(pos)
				if !ok {
					continue
				}
				next := crucible.State{Pos: pos, Dir: dir, Run: run}
				old, seen := dist[next]
				if !seen {
					old = inf
				}
				if d+w < old {
					dist[next] = d + w
					changed = true
				}
			}
		}
	}

	best := inf
	for s, d := range dist {
		if s.Pos == goal && p.CanStop(s) && d < best {
			best = d
		}
	}
	if best == inf {
		return -1
	}

	return best
}

// cheaperWalkExists enumerates every legal walk from start whose cost stays
// strictly below bound and reports whether any of them ends at goal. Costs
// must be positive so the enumeration is finite.
func cheaperWalkExists(g *grid.Grid, s crucible.State, cost, bound int64, goal grid.Coord, p crucible.Policy) bool {
	if s.Pos == goal && p.CanStop(s) {
		return true
	}
	for _, dir := range crucible.Directions {
		run, ok := p.Allows(s, dir)
		if !ok {
			continue
		}
		pos := dir.Step(s.Pos)
		w, ok := g.CostAt(pos)
		if !ok || cost+w >= bound {
			continue
		}
		if cheaperWalkExists(g, crucible.State{Pos: pos, Dir: dir, Run: run}, cost+w, bound, goal, p) {
			return true
		}
	}

	return false
}
