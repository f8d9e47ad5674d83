package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/aretw0/boolmin/pkg/equation"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Minimizer defines the operations exposed as MCP tools.
type Minimizer interface {
	Minimize(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)
	MinimizeMany(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)
	MinimizeAccepting(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)
}

type operation func(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)

// flagParams lists the boolean tool parameters and how each sets a Flags field.
var flagParams = []struct {
	name string
	desc string
	set  func(*domain.Flags, bool)
}{
	{"summary", "Print a short summary with initial and final cost", func(f *domain.Flags, v bool) { f.Summary = v }},
	{"merge", "Distance-1 merge on input, useful if very large", func(f *domain.Flags, v bool) { f.Merge = v }},
	{"echo", "Echo the function", func(f *domain.Flags, v bool) { f.Echo = v }},
	{"equiv", "Identify equivalent output variables", func(f *domain.Flags, v bool) { f.Equiv = v }},
	{"exact", "Exact minimization; minimum number of product terms, potentially expensive", func(f *domain.Flags, v bool) { f.Exact = v }},
	{"stats", "Simple statistics on the size of the function", func(f *domain.Flags, v bool) { f.Stats = v }},
	{"trace", "Trace program execution including current cost", func(f *domain.Flags, v bool) { f.Trace = v }},
	{"reduce", "Let eqntott reduce the truth table by merging minterms", func(f *domain.Flags, v bool) { f.Reduce = v }},
	{"no_redundancy", "Let eqntott produce a truth table with no redundant terms", func(f *domain.Flags, v bool) { f.NoRedundancy = v }},
}

// Server exposes a Minimizer as an MCP server.
type Server struct {
	minimizer Minimizer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(m Minimizer, version string) *Server {
	s := &Server{
		minimizer: m,
		mcpServer: server.NewMCPServer("boolmin-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.addTool("minimize",
		"Minimize one Boolean equation with eqntott and espresso. A missing name or terminator is added for the tools and removed from the result.",
		s.minimizer.Minimize)
	s.addTool("minimize_batch",
		"Minimize several semicolon-terminated equations, in order.",
		s.minimizer.MinimizeMany)
	s.addTool("minimize_accepting",
		"Minimize the ACCEPTING and INITACCEPTING records of serialized model-checking output.",
		s.minimizer.MinimizeAccepting)
}

func (s *Server) addTool(name, description string, op operation) {
	opts := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString("equation", mcp.Required(), mcp.Description("Equation text in eqntott syntax")),
	}
	for _, p := range flagParams {
		opts = append(opts, mcp.WithBoolean(p.name, mcp.Description(p.desc)))
	}
	s.mcpServer.AddTool(mcp.NewTool(name, opts...), s.handler(op))
}

func (s *Server) handler(op operation) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("equation")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		src, err := equation.Literal(text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var flags domain.Flags
		for _, p := range flagParams {
			p.set(&flags, request.GetBool(p.name, false))
		}

		res, err := op(ctx, src, flags)
		if err != nil {
			var toolErr *domain.ToolError
			if errors.As(err, &toolErr) {
				return mcp.NewToolResultError(fmt.Sprintf("%v\n\nstdout:\n%s\nstderr:\n%s", err, toolErr.Stdout, toolErr.Stderr)), nil
			}
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}
