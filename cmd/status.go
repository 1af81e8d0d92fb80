package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/dashboard"
	"github.com/blaezi/blaezi/internal/trend"
	"github.com/blaezi/blaezi/internal/ui/components"
	"github.com/blaezi/blaezi/internal/ui/theme"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Recompute pressures and show where to focus",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

// runStatus recomputes the dashboard, saving today's snapshot, and prints it.
func runStatus(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	d, err := e.compute(cmd.Context())
	if err != nil {
		return err
	}
	renderDashboard(cmd.OutOrStdout(), d)
	return nil
}

var trendArrows = map[trend.Direction]string{
	trend.Up:     "↑",
	trend.Down:   "↓",
	trend.Stable: "→",
}

const barWidth = 48

func renderDashboard(w io.Writer, d *dashboard.Dashboard) {
	lipgloss.Fprintln(w, theme.Title.Render(fmt.Sprintf("Blaezi score %d", d.Score))+"  "+
		theme.Hint.Render(fmt.Sprintf("overall pressure %s %s", trendArrows[d.Trend], d.Trend)))
	lipgloss.Fprintln(w)

	labelWidth := 0
	for _, e := range d.Profile {
		labelWidth = max(labelWidth, lipgloss.Width(e.Label))
	}
	for _, e := range d.Profile {
		bar := components.NewPressureBar(e.Label, e.Pressure, barWidth)
		bar.LabelWidth = labelWidth
		lipgloss.Fprintln(w, bar.View()+" "+trendArrows[d.PillarTrends[e.Pillar]])
	}
	lipgloss.Fprintln(w)

	f := d.Focus
	focusBlock := strings.Join([]string{
		theme.Severity(string(f.Level)).Render(f.Title),
		theme.Body.Render(f.Message),
		theme.Hint.Render(f.Reason),
	}, "\n")
	lipgloss.Fprintln(w, theme.Card.Render(focusBlock))

	wk := d.Weekly
	lipgloss.Fprintln(w, theme.Severity(string(wk.Tone)).Render(wk.Title))
	lipgloss.Fprintln(w, theme.Body.Render(wk.Message))
	lipgloss.Fprintln(w)

	lipgloss.Fprintln(w, theme.Hint.Render(fmt.Sprintf(
		"DSA score %d · %d active project(s), %d delayed, %d at risk · %d snapshot(s)",
		d.DSAScore, d.Risk.Active, d.Risk.Delayed, d.Risk.AtRisk, len(d.History))))
	if !d.Saved {
		lipgloss.Fprintln(w, theme.Severity("warning").Render(
			"Today's snapshot could not be saved; see logs."))
	}
}
