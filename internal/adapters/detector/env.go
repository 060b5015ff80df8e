// Package detector provides environment detection for log mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogMode represents how log output is rendered.
type LogMode int

const (
	// ModePretty renders colored human-readable logs.
	ModePretty LogMode = iota
	// ModeJSON renders one JSON record per line.
	ModeJSON
)

// DetectEnvironment returns the recommended log mode. Non-TTY output and CI
// environments get JSON logs.
func DetectEnvironment() LogMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeJSON
	}
	return ModePretty
}

// ResolveMode applies explicit overrides to the auto-detected mode.
// forceJSON comes from the --json flag or the log.json config setting.
func ResolveMode(autoDetected LogMode, forceJSON bool) LogMode {
	if forceJSON {
		return ModeJSON
	}
	return autoDetected
}
