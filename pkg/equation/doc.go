// Package equation holds the text transforms around the external tools:
// preparing expressions for eqntott, restoring espresso output to the caller's
// conventions, splitting batch input and extracting accepting-condition records.
package equation
