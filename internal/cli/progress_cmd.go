package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress CHILD",
		Short: "Show this week's completion progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			progress, err := app.Progress.Weekly(ctx, childID)
			if err != nil {
				return err
			}

			p, err := app.Profiles.GetByID(ctx, childID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWeeklyProgress(p.Name, progress))
			return nil
		},
	}
}
