package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	Danger  = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Card frames a block of output.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// Severity returns the style for a focus level or summary tone name:
// success/positive, warning, danger. Anything else renders dim.
func Severity(name string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch name {
	case "success", "positive":
		return base.Foreground(Success)
	case "warning":
		return base.Foreground(Warning)
	case "danger":
		return base.Foreground(Danger)
	default:
		return base.Foreground(TextDim)
	}
}
