package domain

// Flags holds the caller's minimization options.
// Every field maps to exactly one argument token of eqntott or espresso.
type Flags struct {
	Summary      bool `json:"summary,omitempty" yaml:"summary,omitempty" mapstructure:"summary"`                   // espresso -s
	Merge        bool `json:"merge,omitempty" yaml:"merge,omitempty" mapstructure:"merge"`                         // espresso -Dd1merge
	Echo         bool `json:"echo,omitempty" yaml:"echo,omitempty" mapstructure:"echo"`                            // espresso -Decho
	Equiv        bool `json:"equiv,omitempty" yaml:"equiv,omitempty" mapstructure:"equiv"`                         // espresso -Dequiv
	Exact        bool `json:"exact,omitempty" yaml:"exact,omitempty" mapstructure:"exact"`                         // espresso -Dexact
	Stats        bool `json:"stats,omitempty" yaml:"stats,omitempty" mapstructure:"stats"`                         // espresso -Dstats
	Trace        bool `json:"trace,omitempty" yaml:"trace,omitempty" mapstructure:"trace"`                         // espresso -t
	Reduce       bool `json:"reduce,omitempty" yaml:"reduce,omitempty" mapstructure:"reduce"`                      // eqntott -r
	NoRedundancy bool `json:"no_redundancy,omitempty" yaml:"no_redundancy,omitempty" mapstructure:"no_redundancy"` // eqntott -R
}

// EqntottArgs returns the base eqntott arguments followed by the enabled option tokens.
// The input file argument is appended by the caller.
func (f Flags) EqntottArgs() []string {
	args := []string{"-f", "-l"}
	if f.Reduce {
		args = append(args, "-r")
	}
	if f.NoRedundancy {
		args = append(args, "-R")
	}
	return args
}

// EspressoArgs returns the base espresso arguments followed by the enabled option tokens.
func (f Flags) EspressoArgs() []string {
	args := []string{"-o", "eqntott"}
	if f.Summary {
		args = append(args, "-s")
	}
	if f.Merge {
		args = append(args, "-Dd1merge")
	}
	if f.Echo {
		args = append(args, "-Decho")
	}
	if f.Equiv {
		args = append(args, "-Dequiv")
	}
	if f.Exact {
		args = append(args, "-Dexact")
	}
	if f.Stats {
		args = append(args, "-Dstats")
	}
	if f.Trace {
		args = append(args, "-t")
	}
	return args
}

// Diagnostic reports whether espresso will print run-time statistics or traces,
// which differ between runs of the same input.
func (f Flags) Diagnostic() bool {
	return f.Summary || f.Stats || f.Trace
}
