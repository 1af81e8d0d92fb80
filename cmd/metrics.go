package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/store"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [file]",
	Short: "Recompute and write scores as a Prometheus textfile",
	Long: "Recompute the dashboard (recording today's snapshot) and write the scores " +
		"in the Prometheus text format, for node_exporter's textfile collector. " +
		"The file defaults to metrics.textfile_path from the config.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		path := e.cfg.Metrics.TextfilePath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no output file: pass one or set metrics.textfile_path")
		}
		if err := store.EnsureDir(path); err != nil {
			return fmt.Errorf("create metrics dir: %w", err)
		}

		if _, err := e.compute(cmd.Context()); err != nil {
			return err
		}
		if err := e.metrics.WriteTextfile(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}
