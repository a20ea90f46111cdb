// Package crucible finds minimum-cost routes across a grid.Grid when movement
// is limited by direction history: no immediate reversal, and no more than
// MaxRun consecutive steps in one direction.
//
// Overview:
//
//   - Legality of a step depends on how the current cell was reached, not just
//     where it is. The search therefore runs Dijkstra over the augmented state
//     space State{Pos, Dir, Run} instead of over raw cells.
//   - Each edge weight is the cost of the cell being entered. The start cell is
//     never charged; the goal cell is charged normally.
//   - The frontier is a container/heap min-heap using lazy decrease-key: a
//     better route pushes a duplicate entry and the stale one is skipped when
//     popped.
//   - The best-cost table and predecessor map are local to one call and are
//     discarded with it.
//
// Movement policy:
//
//   - Policy.MaxRun caps consecutive steps in one direction (checked as
//     Run >= MaxRun, so a run of exactly MaxRun is allowed and the next
//     straight step is not).
//   - Policy.MinRun, when > 0, forbids turning or stopping before Run reaches
//     MinRun. DefaultPolicy has MinRun 0; UltraPolicy is {MinRun: 4, MaxRun: 10}.
//   - Reversal is always illegal.
//
// Complexity:
//
//   - States:  S ≤ W×H×4×MaxRun (+1 for the start state).
//   - Time:    O(S log S); each state has at most 3 outgoing edges.
//   - Space:   O(S) for the best-cost and predecessor maps and the heap.
//
// Options:
//
//   - WithPolicy / WithMaxRun / WithMinRun: movement rules.
//   - WithContext: cancellation, checked on every pop.
//   - WithMaxExpansions: node-expansion budget for callers needing bounded latency.
//   - WithOnExpand / WithOnPush: instrumentation hooks, no-ops by default.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilGoal, ErrStartOutOfBounds: invalid input.
//   - ErrBadPolicy:        MaxRun < 1, MinRun < 0 or MinRun > MaxRun.
//   - ErrOptionViolation:  an Option received an invalid value.
//   - ErrNoPathFound:      the frontier emptied without reaching the goal.
//   - ErrBudgetExceeded:   WithMaxExpansions limit reached.
//
// Thread safety:
//
//   - FindCheapestPath owns all mutable state it touches. A *grid.Grid is read
//     only, so concurrent searches may share one; FindMany does exactly that.
package crucible
