package crucible

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/grid"
)

// Direction is one of the four cardinal moves. The zero value, NoDirection,
// only appears on the start state before any move has been made.
type Direction uint8

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four moves in the order neighbours are generated.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse move; NoDirection has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return NoDirection
}

// Delta returns the (dx, dy) offset of one step. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}

	return 0, 0
}

// Step moves c one cell in d.
func (d Direction) Step(c grid.Coord) grid.Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Arrow is the single-rune form used when drawing a route.
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	}

	return 'S'
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case NoDirection:
		return "none"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the String form, single letters (u/d/l/r) and arrows.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "^":
		return Up, nil
	case "down", "d", "v":
		return Down, nil
	case "left", "l", "<":
		return Left, nil
	case "right", "r", ">":
		return Right, nil
	}

	return NoDirection, fmt.Errorf("crucible: unknown direction %q", s)
}
