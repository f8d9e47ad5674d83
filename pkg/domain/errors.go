package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when the argument is neither an existing file nor a usable expression.
var ErrInvalidInput = errors.New("file or function as string needed as input")

// ErrConfigNotFound is returned when the settings file does not exist.
var ErrConfigNotFound = errors.New("settings file not found")

// ErrToolNotConfigured is returned when an executable is missing from the settings or the registry.
var ErrToolNotConfigured = errors.New("tool not configured")

// ErrToolFailed matches every *ToolError.
var ErrToolFailed = errors.New("tool invocation failed")

// ErrNoAcceptingRecords is returned when structured input contains no ACCEPTING or INITACCEPTING record.
var ErrNoAcceptingRecords = errors.New("no accepting records found")

// ToolError reports a nonzero exit of an external tool.
// Both captured streams are kept so callers can show them before giving up.
type ToolError struct {
	Tool     string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("call to %q resulted in return code %d", e.Tool, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Is reports ErrToolFailed as a match so callers can use errors.Is.
func (e *ToolError) Is(target error) bool {
	return target == ErrToolFailed
}
