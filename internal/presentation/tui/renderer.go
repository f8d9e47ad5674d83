package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Markdown formats a result as a titled code block, one per fragment when present.
func Markdown(res domain.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", res.Source)

	blocks := res.Fragments
	if len(blocks) == 0 {
		blocks = []string{res.Text}
	}
	for _, b := range blocks {
		sb.WriteString("```\n")
		sb.WriteString(strings.Trim(b, "\n"))
		sb.WriteString("\n```\n\n")
	}
	return sb.String()
}
