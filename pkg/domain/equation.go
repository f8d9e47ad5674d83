package domain

// Source is the caller's input after resolution.
type Source struct {
	// Name labels the input in provenance headers: the file path, or StdinName.
	Name string
	// Path is set when the text was read from an existing file.
	Path string
	// Text is the raw expression text.
	Text string
}

// IsFile reports whether the source was read from disk.
func (s Source) IsFile() bool {
	return s.Path != ""
}

// Equation is a single expression ready for eqntott.
type Equation struct {
	Text string
	// AddedName is set when PlaceholderName was injected and must be stripped from the output.
	AddedName bool
	// AddedTerminator is set when a Terminator was injected and must be stripped from the output.
	AddedTerminator bool
}

// Result is the outcome of a minimization.
type Result struct {
	Source    string   `json:"source"`
	Text      string   `json:"result"`
	Fragments []string `json:"fragments,omitempty"`
}
