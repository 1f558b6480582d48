package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
)

func newCheckinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record and review daily joy check-ins",
	}

	cmd.AddCommand(
		newCheckinRecordCmd(app),
		newCheckinListCmd(app),
	)

	return cmd
}

func newCheckinRecordCmd(app *App) *cobra.Command {
	var joy int
	var notes string

	cmd := &cobra.Command{
		Use:   "record CHILD",
		Short: "Record today's joy score and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("joy") && app.interactive() {
				values := checkinFormValues{Notes: notes}
				if err := checkinForm(&values).Run(); err != nil {
					return err
				}
				joy, err = strconv.Atoi(strings.TrimSpace(values.JoyScore))
				if err != nil {
					return fmt.Errorf("invalid joy score %q: %w", values.JoyScore, err)
				}
				notes = values.Notes
			}

			checkin, err := app.Checkins.Record(ctx, childID, joy, notes)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCheckin(checkin))
			return nil
		},
	}

	cmd.Flags().IntVar(&joy, "joy", 0, "Joy score (1-5)")
	cmd.Flags().StringVar(&notes, "notes", "", "Parent notes")

	return cmd
}

func newCheckinListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list CHILD",
		Short: "List recent check-ins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}

			checkins, err := app.Checkins.ListRecent(ctx, childID, limit)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCheckinList(checkins))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 7, "Number of check-ins to show")

	return cmd
}
