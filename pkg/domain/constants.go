package domain

// Tool names, as used in the settings file and in the process registry.
const (
	ToolEqntott  = "eqntott"
	ToolEspresso = "espresso"
)

const (
	// PlaceholderName is injected in front of an expression that lacks an assignment.
	PlaceholderName = "Test"

	// AssignMarker separates the output name from the expression.
	AssignMarker = "="

	// Terminator ends every eqntott statement and separates batch input.
	Terminator = ";"

	// StdinName labels results whose input did not come from a file.
	StdinName = "Standard Input"

	// StdinPath is handed to eqntott in place of a file when the input is piped.
	StdinPath = "/dev/stdin"
)
