/*
Package ports defines the driven ports (interfaces) of the boolmin minimizer.

These interfaces decouple the pipeline from the process layer and from any
result storage, so tests and embedders can swap implementations.

# Key Interfaces

  - ToolRunner: Runs one external tool to completion and returns its stdout.
  - ResultCache: Remembers raw espresso output for a given pipeline invocation.
*/
package ports
