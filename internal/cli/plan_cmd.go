package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
	"github.com/alexanderramin/lifeos/internal/generation"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and view daily task plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var model string
	var fallback bool

	cmd := &cobra.Command{
		Use:   "generate CHILD",
		Short: "Generate today's personalized task plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			hint := model
			if fallback {
				hint = generation.ModelHintFallback
			}

			tasks, err := app.Plans.GeneratePlan(ctx, childID, hint)
			if err != nil {
				return err
			}

			p, err := app.Profiles.GetByID(ctx, childID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(p.Name, time.Now(), tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Override the generation model")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "Use the static fallback generator")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "show CHILD",
		Short: "Show the task plan for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			date := time.Now()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				date = parsed
			}

			tasks, err := app.Tasks.ListByChildAndDate(ctx, childID, date)
			if err != nil {
				return err
			}

			p, err := app.Profiles.GetByID(ctx, childID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(p.Name, date, tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Plan date (YYYY-MM-DD, default today)")

	return cmd
}
