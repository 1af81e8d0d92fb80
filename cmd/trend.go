package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/trend"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the pressure trend between the last two snapshots",
	Long: "Show the pressure trend between the last two snapshots. " +
		"\"up\" means pressure rose (worse), \"down\" means it fell (better).",
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, _ := cmd.Flags().GetString("pillar")
		if selector != trend.Overall {
			if _, err := pillar.ParseKey(selector); err != nil {
				return err
			}
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		dir := trend.Compute(e.history.History(cmd.Context()), selector)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n", selector, trendArrows[dir], dir)
		return nil
	},
}

func init() {
	trendCmd.Flags().String("pillar", trend.Overall, "Pillar to inspect: projects, dsa, career, or overall")
}
