package grid

import "strings"

// Render draws the grid as text, one line per row. Cells present in marks are
// drawn with their rune; all others with background(c). A nil background
// draws '.'.
func (g *Grid) Render(marks map[Coord]rune, background func(Coord) rune) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			c := Coord{X: x, Y: y}
			if r, ok := marks[c]; ok {
				sb.WriteRune(r)
				continue
			}
			if background == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(background(c))
		}
	}

	return sb.String()
}

// RenderPath marks every cell of cells with '#' over a field of '.'.
// Cells outside the grid are skipped.
func (g *Grid) RenderPath(cells []Coord) string {
	marks := make(map[Coord]rune, len(cells))
	for _, c := range cells {
		if g.InBounds(c) {
			marks[c] = '#'
		}
	}

	return g.Render(marks, nil)
}

// RenderCosts prints the costs back. Single-digit costs are drawn as-is;
// larger costs are drawn as '+' so the map stays rectangular.
func (g *Grid) RenderCosts() string {
	return g.Render(nil, g.CostRune)
}

// CostRune is the single-rune form of the cost at c used by RenderCosts:
// the digit itself, or '+' above 9. Out-of-bounds cells draw as '0'.
func (g *Grid) CostRune(c Coord) rune {
	v, _ := g.CostAt(c)
	if v > 9 {
		return '+'
	}

	return rune('0' + v)
}
