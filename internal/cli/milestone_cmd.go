package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Track growth milestones by developmental phase",
	}

	cmd.AddCommand(
		newMilestoneListCmd(app),
		newMilestoneAchieveCmd(app),
	)

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list CHILD",
		Short: "Show the milestone catalog with achieved flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			statuses, err := app.Milestones.Statuses(ctx, childID)
			if err != nil {
				return err
			}

			p, err := app.Profiles.GetByID(ctx, childID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatMilestones(p.Name, statuses))
			return nil
		},
	}
}

func newMilestoneAchieveCmd(app *App) *cobra.Command {
	var phase, title string
	var undo bool

	cmd := &cobra.Command{
		Use:   "achieve CHILD",
		Short: "Mark a catalog milestone as achieved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			achieved := !undo
			if err := app.Milestones.SetAchieved(ctx, childID, phase, title, achieved); err != nil {
				return err
			}

			if achieved {
				fmt.Printf("Marked achieved: %s\n", title)
			} else {
				fmt.Printf("Cleared: %s\n", title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", "", "Age phase, e.g. \"Phase 3 (8-12)\"")
	cmd.Flags().StringVar(&title, "title", "", "Milestone title as listed in the catalog")
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the achieved flag instead")
	_ = cmd.MarkFlagRequired("phase")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
