/*
Package domain contains the core models shared by the boolmin minimizer and its adapters.

It is kept free of I/O: reading files, spawning processes and persisting results
happen in the adapters, which exchange these types.

# Key Entities

  - Source: the caller's input, either the contents of an existing file or a literal string.
  - Equation: an expression prepared for eqntott, remembering which fixups were injected.
  - Flags: the caller's boolean options, each mapped to one eqntott or espresso argument token.
  - Result: the postprocessed minimized text.
  - ToolError: a nonzero exit from one of the external tools, carrying both captured streams.
*/
package domain
