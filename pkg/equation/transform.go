package equation

import (
	"regexp"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
)

// nameLine matches the ".na <name>" annotation espresso writes into its output.
var nameLine = regexp.MustCompile(`\.na .*\n`)

var placeholderPrefix = domain.PlaceholderName + " " + domain.AssignMarker + " "

// Prepare injects a placeholder name and a terminator when the expression lacks them.
func Prepare(text string) domain.Equation {
	eq := domain.Equation{Text: text}
	if !strings.Contains(eq.Text, domain.AssignMarker) {
		eq.Text = placeholderPrefix + eq.Text
		eq.AddedName = true
	}
	if !strings.Contains(eq.Text, domain.Terminator) {
		eq.Text += domain.Terminator
		eq.AddedTerminator = true
	}
	return eq
}

// Restore strips the name annotation and undoes the fixups Prepare applied.
func Restore(output string, eq domain.Equation) string {
	return RemoveFixups(StripNameLines(output), eq)
}

// RemoveFixups reverses the injections recorded on eq.
func RemoveFixups(output string, eq domain.Equation) string {
	if eq.AddedName {
		output = strings.ReplaceAll(output, placeholderPrefix, "")
	}
	if eq.AddedTerminator {
		output = strings.ReplaceAll(output, domain.Terminator, "")
	}
	return output
}

// StripNameLines blanks every ".na" annotation line.
func StripNameLines(output string) string {
	return nameLine.ReplaceAllLiteralString(output, "\n")
}

// ReplaceNameLines swaps every ".na" annotation line for a provenance header.
func ReplaceNameLines(output, header string) string {
	return nameLine.ReplaceAllLiteralString(output, header+"\n\n")
}
