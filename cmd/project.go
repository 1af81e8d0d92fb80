package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/pillar"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Track projects and milestones",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with progress and health",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openRecordEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		projects, err := e.store.Projects().List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(projects) == 0 {
			fmt.Fprintln(out, "No projects yet. Add one with `blaezi project add`.")
			return nil
		}

		resolved := pillar.ResolveHealth(projects, time.Now(), e.cfg.Health)
		fmt.Fprintf(out, "%-36s  %-28s  %-9s  %-9s  %8s  %s\n",
			"ID", "Name", "Status", "Health", "Progress", "Last worked")
		fmt.Fprintln(out, strings.Repeat("─", 112))
		for _, p := range resolved {
			last := "-"
			if p.LastWorkedAt != nil {
				last = p.LastWorkedAt.Local().Format("2006-01-02")
			}
			fmt.Fprintf(out, "%-36s  %-28s  %-9s  %-9s  %7d%%  %s\n",
				p.ID, truncate(p.Name, 28), p.Status, p.Health, p.Progress(), last)
			for _, m := range p.Milestones {
				mark := "[ ]"
				if m.Completed {
					mark = "[x]"
				}
				fmt.Fprintf(out, "    %s %s  %s\n", mark, m.Title, m.ID)
			}
		}
		return nil
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")
		healthFlag, _ := cmd.Flags().GetString("health")

		health, err := pillar.ParseHealth(healthFlag)
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, rec *env) error {
			p := pillar.NewProject(args[0], desc)
			p.Health = health
			if err := rec.store.Projects().Upsert(ctx, &p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		})
	},
}

var projectMilestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage project milestones",
}

var milestoneAddCmd = &cobra.Command{
	Use:   "add <project-id> <title>",
	Short: "Append a milestone to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, rec *env) error {
			repo := rec.store.Projects()
			p, err := repo.Get(ctx, args[0])
			if err != nil {
				return err
			}
			m := p.AddMilestone(args[1])
			if err := repo.Upsert(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			return nil
		})
	},
}

var milestoneToggleCmd = &cobra.Command{
	Use:   "toggle <project-id> <milestone-id>",
	Short: "Mark a milestone complete (or incomplete with --undo)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		return withStore(cmd, func(ctx context.Context, rec *env) error {
			repo := rec.store.Projects()
			p, err := repo.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if err := p.ToggleMilestone(args[1], !undo, time.Now()); err != nil {
				return err
			}
			if err := repo.Upsert(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d milestones (%d%%)\n",
				p.Name, p.CompletedMilestones(), len(p.Milestones), p.Progress())
			return nil
		})
	},
}

func init() {
	projectAddCmd.Flags().String("description", "", "Short description")
	projectAddCmd.Flags().String("health", "", "Explicit health (on-track, at-risk, delayed, completed); derived from activity when empty")
	milestoneToggleCmd.Flags().Bool("undo", false, "Mark the milestone incomplete")

	projectMilestoneCmd.AddCommand(milestoneAddCmd)
	projectMilestoneCmd.AddCommand(milestoneToggleCmd)

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectMilestoneCmd)
}
