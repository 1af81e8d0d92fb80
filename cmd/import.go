package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/seed"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import problems, projects, and career events from a JSON or YAML file",
	Long: "Import a seed document of the form {problems, projects, careerEvents}. " +
		"Records with an id replace existing records with the same id.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read seed: %w", err)
		}
		doc, err := seed.Parse(data, seed.FormatFromPath(args[0]))
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, rec *env) error {
			c, err := doc.Apply(ctx, rec.store)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			rec.log.Info("seed imported", "file", args[0],
				"problems", c.Problems, "projects", c.Projects, "career_events", c.CareerEvents)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d problem(s), %d project(s), %d career event(s).\n",
				c.Problems, c.Projects, c.CareerEvents)
			return nil
		})
	},
}
