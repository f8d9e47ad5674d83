package ports

import "context"

// ToolRunner executes a registered external tool.
type ToolRunner interface {
	// Run blocks until the tool exits. A nonzero exit must return a *domain.ToolError.
	Run(ctx context.Context, name string, args []string, stdin []byte) ([]byte, error)
}
