package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/aretw0/boolmin/pkg/domain"
)

// Runner executes allow-listed external tools, one blocking process at a time.
type Runner struct {
	registry map[string]ToolConfig
	hooks    []Hooks
	logger   *slog.Logger
}

// Hooks observe every invocation. Either field may be nil.
type Hooks struct {
	OnStart  func(ctx context.Context, tool string)
	OnFinish func(ctx context.Context, tool string, elapsed time.Duration, err error)
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from loaded configs.
func WithRegistry(tools map[string]ToolConfig) RunnerOption {
	return func(r *Runner) {
		for name, tool := range tools {
			r.registry[name] = tool
		}
	}
}

// WithHooks attaches invocation hooks. It may be given more than once.
func WithHooks(h Hooks) RunnerOption {
	return func(r *Runner) {
		r.hooks = append(r.hooks, h)
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new process runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]ToolConfig),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list.
func (r *Runner) Register(name string, command string, args ...string) {
	r.registry[name] = ToolConfig{
		Name:    name,
		Command: command,
		Args:    args,
	}
}

// Run executes the named tool with its registered args followed by args.
// stdin, when non-nil, is written to the process in full.
// A nonzero exit returns a *domain.ToolError carrying both captured streams.
func (r *Runner) Run(ctx context.Context, name string, args []string, stdin []byte) ([]byte, error) {
	tool, ok := r.registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolNotConfigured, name)
	}

	argv := append(append([]string{}, tool.Args...), args...)
	cmd := exec.CommandContext(ctx, tool.Command, argv...)
	if len(tool.Environment) > 0 {
		env := cmd.Environ()
		for k, v := range tool.Environment {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Tool Start", "tool", name, "command", tool.Command, "args", argv, "stdin_bytes", len(stdin))
	for _, h := range r.hooks {
		if h.OnStart != nil {
			h.OnStart(ctx, name)
		}
	}

	start := time.Now()
	err := r.classify(ctx, name, cmd.Run(), &stdout, &stderr)
	elapsed := time.Since(start)

	for _, h := range r.hooks {
		if h.OnFinish != nil {
			h.OnFinish(ctx, name, elapsed, err)
		}
	}

	if err != nil {
		r.logger.Debug("Tool Failed", "tool", name, "elapsed", elapsed, "error", err)
		return nil, err
	}
	r.logger.Debug("Tool Done", "tool", name, "elapsed", elapsed, "stdout_bytes", stdout.Len())
	return stdout.Bytes(), nil
}

func (r *Runner) classify(ctx context.Context, name string, err error, stdout, stderr *bytes.Buffer) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s interrupted: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ToolError{
			Tool:     name,
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}
	return fmt.Errorf("failed to start %s: %w", name, err)
}
