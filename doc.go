// Package crucible is the root of a small toolkit for minimum-cost routes
// across weighted grids where each move depends on how the current cell was
// reached.
//
// Under the hood, everything is organized under a few subpackages:
//
//	grid/         — immutable cost grid, digit-text parser, character renderers
//	crucible/     — augmented-state Dijkstra: Direction, State, Policy, FindCheapestPath, FindMany
//	mcpserver/    — Model Context Protocol tools wrapping the search
//	cmd/crucible/ — command-line front end (solve, render, serve-mcp)
//
// Quick example:
//
//	g, _ := grid.Parse("123\n456\n789")
//	res, _ := crucible.CheapestToCorner(g)
//	fmt.Println(res.Cost) // 20
//
//	    S>>
//	    45v
//	    78v
package crucible
