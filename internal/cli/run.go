package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/boolmin/internal/presentation/tui"
	"github.com/aretw0/boolmin/pkg/adapters/file"
	"github.com/aretw0/boolmin/pkg/domain"
)

// Mode selects the minimization driver.
type Mode int

const (
	ModeSingle Mode = iota
	ModeBatch
	ModeAccepting
)

func (m Mode) String() string {
	switch m {
	case ModeBatch:
		return "batch"
	case ModeAccepting:
		return "accepting"
	default:
		return "single"
	}
}

// RunOptions configures one minimization command.
type RunOptions struct {
	Options
	Mode   Mode
	Input  string
	Output string
	Pretty bool
	Flags  domain.Flags
}

// IO groups the streams a command reads and writes.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves the input, minimizes it and prints or writes the result.
// On a tool failure both captured streams are written to Stderr before the error is returned.
func Run(ctx context.Context, opts RunOptions, streams IO, logger *slog.Logger) error {
	// Input is resolved first so invalid arguments never reach a process.
	src, err := resolveInput(opts.Input, streams.Stdin)
	if err != nil {
		return err
	}

	m, closeCache, err := NewMinimizer(opts.Options, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("Cache close failed", "error", err)
		}
	}()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var res domain.Result
	switch opts.Mode {
	case ModeBatch:
		res, err = m.MinimizeMany(ctx, src, opts.Flags)
	case ModeAccepting:
		res, err = m.MinimizeAccepting(ctx, src, opts.Flags)
	default:
		res, err = m.Minimize(ctx, src, opts.Flags)
	}
	if err != nil {
		var toolErr *domain.ToolError
		if errors.As(err, &toolErr) {
			tui.PrintToolFailure(streams.Stderr, toolErr, isColorTerminal(streams.Stderr))
		}
		return err
	}

	if opts.Output != "" {
		if err := file.WriteResult(opts.Output, res.Text); err != nil {
			return err
		}
		logger.Info("Result Written", "mode", opts.Mode, "path", opts.Output)
		return nil
	}

	if err := emit(streams.Stdout, res, opts.Pretty); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}
	return nil
}
