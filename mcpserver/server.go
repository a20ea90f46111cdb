package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/grid"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "crucible"
	Version = "1.0.0"
)

// Server wraps an MCPServer with the crucible tools registered.
type Server struct {
	mcpServer *server.MCPServer
	policy    crucible.Policy
	budget    int
	logger    *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithPolicy sets the policy used when a call does not pass max_run/min_run.
func WithPolicy(p crucible.Policy) Option {
	return func(s *Server) { s.policy = p }
}

// WithBudget caps expansions per call; 0 means unlimited.
func WithBudget(n int) Option {
	return func(s *Server) { s.budget = n }
}

// WithLogger logs every tool call to l. Nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a Server with both tools registered.
func New(opts ...Option) *Server {
	s := &Server{policy: crucible.DefaultPolicy()}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Crucible - minimum-cost routes on digit grids

The grid is text: one line per row, one digit (0-9) per cell. The route starts
top-left and ends bottom-right by default. Entering a cell costs its digit; the
start cell is free. A route may never reverse, and may not take more than
max_run consecutive steps in one direction (default 3). With min_run > 0 it
must also take at least min_run steps before turning or stopping.

AVAILABLE TOOLS:
- cheapest_path: minimum total cost (and optional drawn route)
- parse_grid: validate a grid and report its size`),
	)
	s.registerTools()

	return s
}

// MCPServer returns the underlying server, for callers choosing their own transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "cheapest_path",
		Description: "Find the minimum-cost route across a digit grid under run-length and no-reversal rules",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"grid": map[string]interface{}{
					"type":        "string",
					"description": "Grid text: one row per line, one digit per cell",
				},
				"max_run": map[string]interface{}{
					"type":        "number",
					"description": "Most consecutive steps in one direction (optional)",
				},
				"min_run": map[string]interface{}{
					"type":        "number",
					"description": "Fewest consecutive steps before turning or stopping (optional)",
				},
				"start": map[string]interface{}{
					"type":        "string",
					"description": "Start cell as \"x,y\" (optional, default 0,0)",
				},
				"goal": map[string]interface{}{
					"type":        "string",
					"description": "Goal cell as \"x,y\" (optional, default bottom-right)",
				},
				"render": map[string]interface{}{
					"type":        "boolean",
					"description": "Also draw the route over the grid",
				},
			},
			Required: []string{"grid"},
		},
	}, s.handleCheapestPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "parse_grid",
		Description: "Validate a digit grid and report its dimensions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"grid": map[string]interface{}{
					"type":        "string",
					"description": "Grid text: one row per line, one digit per cell",
				},
			},
			Required: []string{"grid"},
		},
	}, s.handleParseGrid)
}

func (s *Server) handleCheapestPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	g, err := parseGridArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	policy := s.policy
	if v, ok := args["max_run"].(float64); ok {
		policy.MaxRun = int(v)
	}
	if v, ok := args["min_run"].(float64); ok {
		policy.MinRun = int(v)
	}

	start := grid.C(0, 0)
	if v, ok := args["start"].(string); ok && v != "" {
		if start, err = grid.ParseCoord(v); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	goal := g.Corner()
	if v, ok := args["goal"].(string); ok && v != "" {
		if goal, err = grid.ParseCoord(v); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	res, err := crucible.FindCheapestPath(g, start, crucible.AtCoord(goal),
		crucible.WithContext(ctx),
		crucible.WithPolicy(policy),
		crucible.WithMaxExpansions(s.budget),
	)
	s.logf("cheapest_path %dx%d %v→%v %+v: err=%v", g.Width, g.Height, start, goal, policy, err)
	if err != nil {
		if errors.Is(err, crucible.ErrNoPathFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no legal route from %v to %v", start, goal)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "cost: %d\nsteps: %d\nexpanded: %d", res.Cost, len(res.Path)-1, res.Expanded)
	if render, _ := args["render"].(bool); render {
		sb.WriteString("\n\n")
		sb.WriteString(res.Render(g))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleParseGrid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g, err := parseGridArg(arguments(request))
	s.logf("parse_grid: err=%v", err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("width: %d\nheight: %d", g.Width, g.Height)), nil
}

func (s *Server) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// arguments returns the call's argument map; a missing or malformed map is empty.
func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}

	return args
}

func parseGridArg(args map[string]interface{}) (*grid.Grid, error) {
	text, _ := args["grid"].(string)
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("grid is required")
	}

	return grid.Parse(text)
}
