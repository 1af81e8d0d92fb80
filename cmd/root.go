package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "blaezi",
	Short: "Pressure and focus tracker for projects, DSA, and career prep",
	Long: "Blaezi scores the pressure on your three pillars (projects, DSA practice, " +
		"career deadlines), tracks it day by day, and tells you where to focus next.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BLAEZI_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/blaezi/config.yaml)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(problemCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(careerCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BLAEZI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
