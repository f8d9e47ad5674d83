package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/boolmin/internal/cli"
	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var minimizeCmd = newRunCommand(cli.ModeSingle, &cobra.Command{
	Use:     "minimize <file|expression|->",
	Aliases: []string{"min"},
	Short:   "Minimize a single boolean expression",
	Long: `Minimizes one expression. A missing name ("Test = ") and a missing
terminator (";") are added before the tools run and removed afterwards.`,
	Example: `  boolmin minimize "a & b | a & !b"
  boolmin minimize circuit.eqn --exact -o circuit.min
  echo "f = a | a & b;" | boolmin minimize -`,
})

var batchCmd = newRunCommand(cli.ModeBatch, &cobra.Command{
	Use:   "batch <file|expressions|->",
	Short: "Minimize several ';'-terminated expressions one by one",
	Long: `Splits the input on ";" and minimizes every non-empty expression separately.
The results are concatenated in input order. The first failing expression aborts the run.`,
	Example: `  boolmin batch "A = x & y; B = x | x & y;"`,
})

var acceptingCmd = newRunCommand(cli.ModeAccepting, &cobra.Command{
	Use:   "accepting <file|text|->",
	Short: "Minimize ACCEPTING and INITACCEPTING records of model-checking output",
	Long: `Normalizes serialized model-checking output, extracts every ACCEPTING and
INITACCEPTING record and minimizes each one. Every result is headed by the input name.`,
	Example: `  boolmin accepting model.out`,
})

// toolFlags binds the boolean tool options to a Flags value.
func toolFlags(fs *pflag.FlagSet, f *domain.Flags) {
	fs.BoolVar(&f.Summary, "summary", false, "Print a short summary with initial and final cost (espresso -s)")
	fs.BoolVar(&f.Merge, "merge", false, "Distance-1 merge on input, useful if very large (espresso -Dd1merge)")
	fs.BoolVar(&f.Echo, "echo", false, "Echo the function (espresso -Decho)")
	fs.BoolVar(&f.Equiv, "equiv", false, "Identify equivalent output variables (espresso -Dequiv)")
	fs.BoolVar(&f.Exact, "exact", false, "Exact minimization, potentially expensive (espresso -Dexact)")
	fs.BoolVar(&f.Stats, "stats", false, "Simple statistics on the size of the function (espresso -Dstats)")
	fs.BoolVar(&f.Trace, "trace", false, "Trace program execution including current cost (espresso -t)")
	fs.BoolVar(&f.Reduce, "reduce", false, "Merge minterms into a reduced truth table (eqntott -r)")
	fs.BoolVar(&f.NoRedundancy, "no-redundancy", false, "Produce a truth table with no redundant terms (eqntott -R)")
}

func newRunCommand(mode cli.Mode, cmd *cobra.Command) *cobra.Command {
	var (
		flags  domain.Flags
		output string
		pretty bool
	)

	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{
			Options: sharedOptions(cmd),
			Mode:    mode,
			Input:   args[0],
			Output:  output,
			Pretty:  pretty,
			Flags:   flags,
		}
		logger := cli.CreateLogger(opts.Debug)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Run(ctx, opts, cli.IO{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}, logger)
	}

	toolFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render the result as markdown when stdout is a terminal")
	return cmd
}

func init() {
	rootCmd.AddCommand(minimizeCmd, batchCmd, acceptingCmd)
}
