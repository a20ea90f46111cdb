// Package mcpserver exposes the crucible search as Model Context Protocol tools.
//
// Tools:
//   - cheapest_path: parse a digit grid and return the minimum route cost,
//     optionally with the route drawn over the grid
//   - parse_grid: validate a digit grid and report its dimensions
//
// Errors from parsing or searching are returned as tool errors, not protocol
// errors, so the calling agent sees the message and can correct its input.
//
// Usage:
//
//	srv := mcpserver.New()
//	if err := srv.ServeStdio(); err != nil {
//	    log.Fatal(err)
//	}
package mcpserver
