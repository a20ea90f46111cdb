package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/mcpserver"
)

// progressEvery is how many expansions pass between debug progress lines.
const progressEvery = 100000

func policyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "max-run",
			Usage:   "most consecutive steps allowed in one direction",
			Value:   3,
			Sources: cli.EnvVars("CRUCIBLE_MAX_RUN"),
		},
		&cli.IntFlag{
			Name:    "min-run",
			Usage:   "fewest consecutive steps before turning or stopping",
			Value:   0,
			Sources: cli.EnvVars("CRUCIBLE_MIN_RUN"),
		},
		&cli.BoolFlag{
			Name:  "ultra",
			Usage: "use the 4..10 run policy (explicit --max-run/--min-run still win)",
		},
		&cli.IntFlag{
			Name:    "budget",
			Usage:   "abort after this many expanded states (0 = unlimited)",
			Sources: cli.EnvVars("CRUCIBLE_BUDGET"),
		},
	}
}

// policyFrom resolves the movement policy from --ultra, --max-run and --min-run.
func policyFrom(cmd *cli.Command) crucible.Policy {
	p := crucible.Policy{MaxRun: int(cmd.Int("max-run")), MinRun: int(cmd.Int("min-run"))}
	if !cmd.Bool("ultra") {
		return p
	}
	ultra := crucible.UltraPolicy()
	if cmd.IsSet("max-run") {
		ultra.MaxRun = p.MaxRun
	}
	if cmd.IsSet("min-run") {
		ultra.MinRun = p.MinRun
	}

	return ultra
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "print the minimum total cost from start to goal",
		ArgsUsage: "[FILE|-]",
		Flags: append(policyFlags(),
			&cli.StringFlag{
				Name:  "start",
				Usage: "start cell as x,y",
				Value: "0,0",
			},
			&cli.StringFlag{
				Name:  "goal",
				Usage: "goal cell as x,y; separate several with ';' to search them concurrently (default bottom-right)",
			},
			&cli.BoolFlag{
				Name:  "path",
				Usage: "draw the route under the cost",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "give up after this long (0 = no limit)",
			},
		),
		Action: runSolve,
	}
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	g, err := readGrid(cmd)
	if err != nil {
		return err
	}
	start, err := grid.ParseCoord(cmd.String("start"))
	if err != nil {
		return err
	}
	goals, err := parseGoals(cmd.String("goal"), g)
	if err != nil {
		return err
	}
	if d := cmd.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	policy := policyFrom(cmd)
	opts := []crucible.Option{
		crucible.WithContext(ctx),
		crucible.WithPolicy(policy),
		crucible.WithMaxExpansions(int(cmd.Int("budget"))),
	}
	logger.Printf("grid %dx%d start %v goals %v policy %+v", g.Width, g.Height, start, goals, policy)

	out := cmd.Root().Writer
	began := time.Now()
	if len(goals) == 1 {
		expanded := 0
		opts = append(opts, crucible.WithOnExpand(func(s crucible.State, cost int64) {
			expanded++
			if expanded%progressEvery == 0 {
				logger.Printf("expanded %d states, frontier cost %d at %v", expanded, cost, s)
			}
		}))
		res, err := crucible.FindCheapestPath(g, start, crucible.AtCoord(goals[0]), opts...)
		if err != nil {
			return explain(err, start, goals[0])
		}
		logger.Printf("done in %v: cost %d, %d steps, %d expanded", time.Since(began), res.Cost, len(res.Path)-1, res.Expanded)
		fmt.Fprintln(out, res.Cost)
		if cmd.Bool("path") {
			fmt.Fprintln(out, res.Render(g))
		}
		return nil
	}

	queries := make([]crucible.Query, len(goals))
	for i, goal := range goals {
		queries[i] = crucible.Query{Start: start, Goal: crucible.AtCoord(goal)}
	}
	results, err := crucible.FindMany(ctx, g, queries, 0, opts...)
	if err != nil {
		return err
	}
	logger.Printf("done in %v: %d searches", time.Since(began), len(results))
	for i, res := range results {
		fmt.Fprintf(out, "%v: %d\n", goals[i], res.Cost)
		if cmd.Bool("path") {
			fmt.Fprintln(out, res.Render(g))
		}
	}

	return nil
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "validate a grid and print it back",
		ArgsUsage: "[FILE|-]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			g, err := readGrid(cmd)
			if err != nil {
				return err
			}
			out := cmd.Root().Writer
			fmt.Fprintf(out, "%dx%d\n", g.Width, g.Height)
			fmt.Fprintln(out, g.RenderCosts())
			return nil
		},
	}
}

func serveMCPCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve-mcp",
		Usage: "serve the search as MCP tools over stdio",
		Flags: policyFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := newLogger(cmd)
			srv := mcpserver.New(
				mcpserver.WithPolicy(policyFrom(cmd)),
				mcpserver.WithBudget(int(cmd.Int("budget"))),
				mcpserver.WithLogger(logger),
			)
			logger.Printf("MCP stdio server ready")
			return srv.ServeStdio()
		},
	}
}

// readGrid parses the grid named by the first argument, or stdin for "-" or no argument.
func readGrid(cmd *cli.Command) (*grid.Grid, error) {
	var r io.Reader = cmd.Root().Reader
	if name := cmd.Args().First(); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return grid.Read(r)
}

// parseGoals converts "x,y;x,y" into coordinates; empty means the bottom-right corner.
func parseGoals(raw string, g *grid.Grid) ([]grid.Coord, error) {
	if strings.TrimSpace(raw) == "" {
		return []grid.Coord{g.Corner()}, nil
	}
	var goals []grid.Coord
	for _, part := range strings.Split(raw, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := grid.ParseCoord(part)
		if err != nil {
			return nil, err
		}
		goals = append(goals, c)
	}
	if len(goals) == 0 {
		return []grid.Coord{g.Corner()}, nil
	}

	return goals, nil
}

// explain turns ErrNoPathFound into a message naming the endpoints.
func explain(err error, start, goal grid.Coord) error {
	if errors.Is(err, crucible.ErrNoPathFound) {
		return fmt.Errorf("no legal route from %v to %v: %w", start, goal, err)
	}

	return err
}
