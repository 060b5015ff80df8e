// Package style provides shared styling primitives for the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal  = lipgloss.Color("#14B8A6")
	Slate = lipgloss.Color("#64748B")
	Ink   = lipgloss.Color("#111827")
	Green = lipgloss.Color("#16A34A")
	Red   = lipgloss.Color("#DC2626")
	Amber = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
