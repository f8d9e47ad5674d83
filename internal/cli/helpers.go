package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/boolmin/internal/presentation/tui"
	"github.com/aretw0/boolmin/pkg/adapters/process"
	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/aretw0/boolmin/pkg/equation"
)

// StdinArg makes the input argument read from standard input.
const StdinArg = "-"

func debugHooks(logger *slog.Logger) process.Hooks {
	return process.Hooks{
		OnStart: func(ctx context.Context, tool string) {
			logger.Debug("Tool Call", "tool_name", tool)
		},
		OnFinish: func(ctx context.Context, tool string, elapsed time.Duration, err error) {
			if err != nil {
				logger.Debug("Tool Return (Error)", "tool_name", tool, "elapsed", elapsed, "err", err)
			} else {
				logger.Debug("Tool Return (Success)", "tool_name", tool, "elapsed", elapsed)
			}
		},
	}
}

// resolveInput turns the positional argument into a Source.
// "-" reads the expression text from stdin.
func resolveInput(arg string, stdin io.Reader) (domain.Source, error) {
	if arg != StdinArg {
		return equation.Resolve(arg)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return domain.Source{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return equation.Literal(string(data))
}

// isColorTerminal reports whether w is a terminal worth styling for.
func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}

// emit prints the result, rendered as markdown when requested and stdout is a terminal.
func emit(w io.Writer, res domain.Result, pretty bool) error {
	if pretty && isColorTerminal(w) {
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(tui.Markdown(res))
		if err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}
	_, err := fmt.Fprintln(w, res.Text)
	return err
}
