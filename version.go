package boolmin

import _ "embed"

// Version is the release of the boolmin module.
//
//go:embed VERSION
var Version string
