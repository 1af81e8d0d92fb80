package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/pillar"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List daily pressure snapshots, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		snaps := e.history.History(cmd.Context())
		if len(snaps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No snapshots yet. Run `blaezi status` to record one.")
			return nil
		}
		if limit > 0 && len(snaps) > limit {
			snaps = snaps[len(snaps)-limit:]
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s", "Date")
		for _, k := range pillar.All {
			fmt.Fprintf(out, "  %8s", k)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("─", 10+10*len(pillar.All)))

		for _, s := range snaps {
			fmt.Fprintf(out, "%-10s", s.Date)
			for _, k := range pillar.All {
				if v, ok := s.Pressures[k]; ok {
					fmt.Fprintf(out, "  %8.0f", v)
				} else {
					fmt.Fprintf(out, "  %8s", "-")
				}
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Show only the most recent N snapshots (0 = all)")
}
