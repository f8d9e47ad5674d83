/*
Package boolmin minimizes Boolean expressions by orchestrating two external tools:
eqntott, which turns an algebraic equation into a PLA truth table, and espresso,
which minimizes that table. boolmin formats the input, runs both tools as
subprocesses and post-processes their text output. It contains no minimization
logic of its own.

# Pipeline

	caller text -> prepare -> eqntott -> espresso -> restore -> result

Prepare injects a placeholder name ("Test = ") when the expression has no
assignment and a terminator (";") when it has none. Restore removes espresso's
".na" annotation and reverses those injections, so the result follows the
caller's conventions.

# Usage

Load the settings file naming both executables and build a Minimizer from it.
Nothing is read from process-wide state.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/boolmin"
		"github.com/aretw0/boolmin/pkg/config"
		"github.com/aretw0/boolmin/pkg/domain"
		"github.com/aretw0/boolmin/pkg/equation"
	)

	func main() {
		settings, err := config.Load("Dependencies/settings.cfg")
		if err != nil {
			log.Fatal(err)
		}

		m, err := boolmin.New(settings)
		if err != nil {
			log.Fatal(err)
		}

		src, err := equation.Resolve("a&b | a&!b")
		if err != nil {
			log.Fatal(err)
		}

		res, err := m.Minimize(context.Background(), src, domain.Flags{Exact: true})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Text)
	}

# Drivers

  - Minimize: one expression, from a file or a literal string.
  - MinimizeMany: semicolon-separated expressions, processed in order; the first failure aborts.
  - MinimizeAccepting: ACCEPTING/INITACCEPTING records from serialized model-checking output.

A nonzero exit from either tool is returned as a *domain.ToolError carrying both
captured streams.
*/
package boolmin
