package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/blaezi/blaezi/internal/focus"
	"github.com/blaezi/blaezi/internal/ui/theme"
)

// PressureBar displays a 0-100 value as a horizontal bar colored by
// severity.
type PressureBar struct {
	Label      string
	LabelWidth int
	Value      int
	Width      int
}

// NewPressureBar creates a bar of the given total width.
func NewPressureBar(label string, value, width int) PressureBar {
	return PressureBar{Label: label, Value: value, Width: width}
}

// SeverityOf names the severity band of a pressure value using the focus
// thresholds.
func SeverityOf(value int) string {
	switch {
	case value > focus.DangerThreshold:
		return string(focus.LevelDanger)
	case value >= focus.AttentionThreshold:
		return string(focus.LevelWarning)
	default:
		return string(focus.LevelSuccess)
	}
}

// View renders the bar.
func (p PressureBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += theme.Body.Render(label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	const valueWidth = 5 // "  100"

	barWidth := p.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	value := min(max(p.Value, 0), 100)
	filled := barWidth * value / 100
	empty := barWidth - filled

	color := theme.Severity(SeverityOf(value)).GetForeground()
	filledStr := lipgloss.NewStyle().
		Background(color).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%*d", valueWidth, value))

	return result
}
