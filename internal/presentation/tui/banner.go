package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program name and version, tinted when w is a color terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	name := out.String("boolmin").Foreground(out.Color("#818cf8")).Bold()
	tag := out.String("eqntott + espresso").Foreground(out.Color("#c084fc"))
	fmt.Fprintf(w, "%s %s (%s)\n", name, version, tag)
}
