package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinimizer struct {
	err   error
	flags domain.Flags
	src   domain.Source
}

func (f *fakeMinimizer) run(src domain.Source, flags domain.Flags) (domain.Result, error) {
	f.src, f.flags = src, flags
	if f.err != nil {
		return domain.Result{}, f.err
	}
	return domain.Result{Source: src.Name, Text: "min:" + src.Text}, nil
}

func (f *fakeMinimizer) Minimize(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	return f.run(src, flags)
}
func (f *fakeMinimizer) MinimizeMany(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	return f.run(src, flags)
}
func (f *fakeMinimizer) MinimizeAccepting(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	return f.run(src, flags)
}

func call(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "minimize"
	req.Params.Arguments = args

	res, err := s.handler(s.minimizer.Minimize)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandler_Success(t *testing.T) {
	fake := &fakeMinimizer{}
	s := NewServer(fake, "0.1.0\n")

	res := call(t, s, map[string]any{"equation": "a & b", "exact": true, "reduce": true})
	assert.False(t, res.IsError)
	assert.Equal(t, "min:a & b", text(t, res))
	assert.Equal(t, domain.Flags{Exact: true, Reduce: true}, fake.flags)
	assert.False(t, fake.src.IsFile())
}

func TestHandler_Errors(t *testing.T) {
	t.Run("missing equation", func(t *testing.T) {
		res := call(t, NewServer(&fakeMinimizer{}, "0.1.0"), map[string]any{})
		assert.True(t, res.IsError)
	})

	t.Run("blank equation", func(t *testing.T) {
		res := call(t, NewServer(&fakeMinimizer{}, "0.1.0"), map[string]any{"equation": " "})
		assert.True(t, res.IsError)
	})

	t.Run("tool failure carries both streams", func(t *testing.T) {
		fake := &fakeMinimizer{err: &domain.ToolError{Tool: "eqntott", ExitCode: 1, Stdout: "OUT", Stderr: "ERR"}}
		res := call(t, NewServer(fake, "0.1.0"), map[string]any{"equation": "f = a;"})
		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), "OUT")
		assert.Contains(t, text(t, res), "ERR")
	})
}
