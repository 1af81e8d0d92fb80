package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/pressure"
	"github.com/blaezi/blaezi/internal/timemath"
)

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Track exams, applications, and interviews",
}

var careerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List career events, soonest deadline first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, rec *env) error {
			events, err := rec.store.Careers().List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No career events yet. Add one with `blaezi career add`.")
				return nil
			}

			now := time.Now()
			fmt.Fprintf(out, "%-36s  %-28s  %-12s  %-10s  %9s  %5s  %8s\n",
				"ID", "Title", "Type", "Date", "Days left", "Prep", "Pressure")
			fmt.Fprintln(out, strings.Repeat("─", 120))
			for _, e := range pillar.SortByDeadline(events, now) {
				done, total := e.PreparationProgress()
				p := fmt.Sprint(pressure.EventPressure(e, now))
				if e.Completed {
					p = "done"
				}
				fmt.Fprintf(out, "%-36s  %-28s  %-12s  %-10s  %9d  %2d/%-2d  %8s\n",
					e.ID, truncate(e.Title, 28), truncate(e.Type, 12),
					e.Date.Local().Format(timemath.DayLayout),
					timemath.DaysUntil(e.Date, now), done, total, p)
				for _, st := range e.Preparation {
					mark := "[ ]"
					if st.Done {
						mark = "[x]"
					}
					fmt.Fprintf(out, "    %s %s  %s\n", mark, st.Title, st.ID)
				}
			}
			return nil
		})
	},
}

var careerAddCmd = &cobra.Command{
	Use:   "add <title> <date>",
	Short: "Add a career event (date as YYYY-MM-DD or RFC 3339)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventType, _ := cmd.Flags().GetString("type")

		date, err := pillar.ParseDate(args[1])
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, rec *env) error {
			e := pillar.NewCareerEvent(args[0], eventType, date)
			if err := rec.store.Careers().Upsert(ctx, &e); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.ID)
			return nil
		})
	},
}

var careerCompleteCmd = &cobra.Command{
	Use:   "complete <event-id>",
	Short: "Mark a career event completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateCareerEvent(cmd, args[0], func(e *pillar.CareerEvent) error {
			e.Completed = true
			return nil
		})
	},
}

var careerStepCmd = &cobra.Command{
	Use:   "step",
	Short: "Manage preparation steps",
}

var stepAddCmd = &cobra.Command{
	Use:   "add <event-id> <title>",
	Short: "Append a preparation step",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateCareerEvent(cmd, args[0], func(e *pillar.CareerEvent) error {
			e.AddStep(args[1])
			return nil
		})
	},
}

var stepToggleCmd = &cobra.Command{
	Use:   "toggle <event-id> <step-id>",
	Short: "Mark a step done (or not done with --undo)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")
		return updateCareerEvent(cmd, args[0], func(e *pillar.CareerEvent) error {
			return e.ToggleStep(args[1], !undo)
		})
	},
}

var stepRemoveCmd = &cobra.Command{
	Use:   "remove <event-id> <step-id>",
	Short: "Remove a preparation step",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateCareerEvent(cmd, args[0], func(e *pillar.CareerEvent) error {
			return e.RemoveStep(args[1])
		})
	},
}

// updateCareerEvent loads an event, applies fn, saves it, and prints its
// preparation state.
func updateCareerEvent(cmd *cobra.Command, id string, fn func(*pillar.CareerEvent) error) error {
	return withStore(cmd, func(ctx context.Context, rec *env) error {
		repo := rec.store.Careers()
		e, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
		if err := repo.Upsert(ctx, e); err != nil {
			return err
		}
		done, total := e.PreparationProgress()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d steps done, pressure %d\n",
			e.Title, done, total, pressure.EventPressure(*e, time.Now()))
		return nil
	})
}

func init() {
	careerAddCmd.Flags().String("type", "exam", "Event type (exam, application, interview, ...)")
	stepToggleCmd.Flags().Bool("undo", false, "Mark the step not done")

	careerStepCmd.AddCommand(stepAddCmd)
	careerStepCmd.AddCommand(stepToggleCmd)
	careerStepCmd.AddCommand(stepRemoveCmd)

	careerCmd.AddCommand(careerListCmd)
	careerCmd.AddCommand(careerAddCmd)
	careerCmd.AddCommand(careerCompleteCmd)
	careerCmd.AddCommand(careerStepCmd)
}
