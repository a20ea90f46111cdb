package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// State is a vertex of the search graph: where we are and how we got here.
// Run counts consecutive steps taken in Dir. Two states are equal only when
// all three fields match; the struct is used directly as a map key.
type State struct {
	Pos grid.Coord
	Dir Direction
	Run int
}

// Start returns the initial state at pos: no direction yet, zero run.
func Start(pos grid.Coord) State {
	return State{Pos: pos}
}

func (s State) String() string {
	return fmt.Sprintf("%v %v×%d", s.Pos, s.Dir, s.Run)
}

// Policy is the movement rule set. It is plain configuration with no state.
type Policy struct {
	// MaxRun is the most consecutive steps allowed in one direction. Must be ≥ 1.
	MaxRun int
	// MinRun, when > 0, is the fewest consecutive steps required before
	// turning or stopping. Must be ≤ MaxRun.
	MinRun int
}

// DefaultPolicy allows at most three steps in a row and no minimum.
func DefaultPolicy() Policy {
	return Policy{MaxRun: 3}
}

// UltraPolicy requires four to ten steps between turns.
func UltraPolicy() Policy {
	return Policy{MinRun: 4, MaxRun: 10}
}

// Validate reports ErrBadPolicy for limits that admit no sensible search.
func (p Policy) Validate() error {
	switch {
	case p.MaxRun < 1:
		return fmt.Errorf("%w: MaxRun must be at least 1 (got %d)", ErrBadPolicy, p.MaxRun)
	case p.MinRun < 0:
		return fmt.Errorf("%w: MinRun cannot be negative (got %d)", ErrBadPolicy, p.MinRun)
	case p.MinRun > p.MaxRun:
		return fmt.Errorf("%w: MinRun %d exceeds MaxRun %d", ErrBadPolicy, p.MinRun, p.MaxRun)
	}

	return nil
}

// Allows reports whether moving in d from s is legal and, if so, the run
// length of the resulting state.
//
//   - Reversing s.Dir is never legal.
//   - Continuing in s.Dir is legal while s.Run < MaxRun; the run grows by one.
//   - Turning is legal once s.Run ≥ MinRun; the run resets to 1.
//   - From the start state (NoDirection) every direction is legal.
//   - d must be one of Directions; NoDirection is never a move.
func (p Policy) Allows(s State, d Direction) (run int, ok bool) {
	switch d {
	case Up, Down, Left, Right:
	default:
		return 0, false
	}
	if s.Dir == NoDirection {
		return 1, true
	}
	if d == s.Dir.Opposite() {
		return 0, false
	}
	if d == s.Dir {
		if s.Run >= p.MaxRun {
			return 0, false
		}
		return s.Run + 1, true
	}
	if s.Run < p.MinRun {
		return 0, false
	}

	return 1, true
}

// CanStop reports whether a search may finish in s.
func (p Policy) CanStop(s State) bool {
	return s.Run >= p.MinRun
}
