// Package grid holds the immutable cost map that the crucible search walks.
//
// What:
//
//   - Grid wraps a rectangular block of non-negative int64 traversal costs,
//     stored row-major and deep-copied on construction.
//   - Parse / Read build a Grid from puzzle text: one line per row, one decimal
//     digit per cell.
//   - CostAt answers bounded lookups; coordinates outside the grid are absent,
//     never zero and never a panic.
//   - Render, RenderPath and RenderCosts draw character maps for diagnostics.
//
// Why:
//
//   - The search engine only ever asks "what does it cost to enter this cell?".
//     Keeping the grid read-only lets any number of searches share it without
//     locks.
//
// Complexity:
//
//   - New, Parse:  O(W×H) time and memory.
//   - CostAt:      O(1).
//   - Render*:     O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure; check with errors.Is.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell cost is below zero.
//   - ErrBadCell: a character in the text input is not a decimal digit.
package grid
