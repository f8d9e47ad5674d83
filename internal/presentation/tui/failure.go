package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintToolFailure writes both captured streams of a failed tool, then the exit summary.
// Colors are used only when color is true.
func PrintToolFailure(w io.Writer, toolErr *domain.ToolError, color bool) {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)

	section := func(title, body string) {
		fmt.Fprintln(w, out.String(title).Foreground(out.Color("#a78bfa")).Bold())
		if body = strings.TrimRight(body, "\n"); body != "" {
			fmt.Fprintln(w, body)
		}
	}
	section("--- "+toolErr.Tool+" stdout ---", toolErr.Stdout)
	section("--- "+toolErr.Tool+" stderr ---", toolErr.Stderr)

	summary := fmt.Sprintf("Call to %q resulted in return code %d", toolErr.Tool, toolErr.ExitCode)
	fmt.Fprintln(w)
	fmt.Fprintln(w, out.String(summary).Foreground(out.Color("#fb7185")))
}
