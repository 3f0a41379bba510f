// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Scan report styles. The printer renders one line per plugin: an icon, the
// basename, and the discovered settings URLs.
var (
	Basename = lipgloss.NewStyle().Foreground(Ink).Bold(true)
	URL      = lipgloss.NewStyle().Foreground(Iris)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Injected = lipgloss.NewStyle().Foreground(Green)
	Missing  = lipgloss.NewStyle().Foreground(Red)
	Rejected = lipgloss.NewStyle().Foreground(Yellow)
)
