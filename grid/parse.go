package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Parse builds a Grid from text holding one row per line and one decimal
// digit per cell. Carriage returns and trailing blank lines are ignored;
// a blank line between rows is a ragged row and fails with ErrNonRectangular.
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// Read is Parse over an io.Reader. Rows may be of any length.
func Read(r io.Reader) (*Grid, error) {
	var rows [][]int64
	blank := 0 // pending blank lines; only an error if a row follows them
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrNonRectangular, y)
		}
		blank = 0
		row := make([]int64, 0, len(line))
		for x, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadCell, ch, len(rows), x)
			}
			row = append(row, int64(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}

	return New(rows)
}
