package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "success"},
		{29, "success"},
		{30, "warning"},
		{70, "warning"},
		{71, "danger"},
		{100, "danger"},
	}
	for _, tt := range tests {
		if got := SeverityOf(tt.value); got != tt.want {
			t.Errorf("SeverityOf(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPressureBarView(t *testing.T) {
	bar := NewPressureBar("DSA", 40, 40)
	bar.LabelWidth = 8
	view := bar.View()

	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.Contains(view, "DSA") {
		t.Error("view should contain the label")
	}
	if !strings.Contains(view, "40") {
		t.Error("view should contain the value")
	}
}

func TestPressureBarView_ClampsAndMinWidth(t *testing.T) {
	view := NewPressureBar("", 250, 2).View()
	if !strings.Contains(view, "100") {
		t.Errorf("value should clamp to 100, got %q", view)
	}
	// 4-cell minimum bar plus the 5-cell value column.
	if w := lipgloss.Width(view); w != 9 {
		t.Errorf("width = %d, want 9", w)
	}
}
