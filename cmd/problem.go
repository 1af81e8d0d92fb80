package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/pressure"
	"github.com/blaezi/blaezi/internal/ui/theme"
)

var problemCmd = &cobra.Command{
	Use:     "problem",
	Aliases: []string{"dsa"},
	Short:   "Track DSA practice problems",
}

var problemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List practice problems with their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, rec *env) error {
			problems, err := rec.store.Problems().List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintln(out, "No problems yet. Add one with `blaezi problem add`.")
				return nil
			}

			fmt.Fprintf(out, "%-36s  %-32s  %-6s  %-16s  %-8s  %s\n",
				"ID", "Title", "Diff", "Topic", "Status", "Last practiced")
			fmt.Fprintln(out, strings.Repeat("─", 120))
			for _, p := range problems {
				last := "-"
				if p.LastPracticedAt != nil {
					last = p.LastPracticedAt.Local().Format("2006-01-02")
				}
				fmt.Fprintf(out, "%-36s  %-32s  %-6s  %-16s  %-8s  %s\n",
					p.ID, truncate(p.Title, 32), p.Difficulty, truncate(p.Topic, 16), p.Status, last)
			}

			fmt.Fprintln(out)
			lipgloss.Fprintln(out, theme.Heading.Render("Topics"))
			for _, tp := range pillar.ByTopic(problems) {
				fmt.Fprintf(out, "  %-24s  %d/%d solved\n", truncate(tp.Topic, 24), tp.Solved, tp.Total)
			}

			score := pressure.DSAScore(problems, time.Now())
			fmt.Fprintf(out, "\n%d problems, DSA score %d\n", len(problems), score)
			return nil
		})
	},
}

var problemAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a practice problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		diffFlag, _ := cmd.Flags().GetString("difficulty")
		topic, _ := cmd.Flags().GetString("topic")

		difficulty, err := pillar.ParseDifficulty(diffFlag)
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, rec *env) error {
			p := pillar.NewProblem(args[0], difficulty, topic)
			if err := rec.store.Problems().Upsert(ctx, &p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		})
	},
}

var problemStatusCmd = &cobra.Command{
	Use:   "status <id> <none|solved|revising|weak>",
	Short: "Record a status change for a problem",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := pillar.ParseProblemStatus(args[1])
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, rec *env) error {
			repo := rec.store.Problems()
			p, err := repo.Get(ctx, args[0])
			if err != nil {
				return err
			}
			p.SetStatus(status, time.Now())
			if err := repo.Upsert(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", p.Title, p.Status)
			return nil
		})
	},
}

func init() {
	problemAddCmd.Flags().String("difficulty", string(pillar.Medium), "Easy, Medium, or Hard")
	problemAddCmd.Flags().String("topic", "", "Topic or category (e.g. Graphs)")

	problemCmd.AddCommand(problemListCmd)
	problemCmd.AddCommand(problemAddCmd)
	problemCmd.AddCommand(problemStatusCmd)
}
