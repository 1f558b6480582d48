package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
	"github.com/alexanderramin/lifeos/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage child profiles",
	}

	cmd.AddCommand(
		newProfileCreateCmd(app),
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileUpdateCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileCreateCmd(app *App) *cobra.Command {
	var name, birth, interests, priority string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new child profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Prompt interactively when no flags were given on a terminal.
			if name == "" && app.interactive() {
				values := profileFormValues{
					BirthDate: birth,
					Interests: interests,
					Priority:  priority,
				}
				if err := profileForm(&values).Run(); err != nil {
					return err
				}
				name = values.Name
				birth = values.BirthDate
				interests = values.Interests
				priority = values.Priority
			}

			dob, err := time.Parse("2006-01-02", birth)
			if err != nil {
				return fmt.Errorf("invalid date of birth %q: %w", birth, err)
			}

			p := &domain.ChildProfile{
				ID:             uuid.New().String(),
				Name:           name,
				DateOfBirth:    dob,
				Interests:      parseInterests(interests),
				ParentPriority: priority,
			}

			if err := app.Profiles.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Child name")
	cmd.Flags().StringVar(&birth, "birth", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&interests, "interests", "", "Comma-separated interests")
	cmd.Flags().StringVar(&priority, "priority", "", "Parent priority, e.g. \"encourage curiosity\"")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List child profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProfileList(profiles))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CHILD",
		Short: "Show profile details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Profiles.GetByID(ctx, childID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var name, birth, interests, priority string

	cmd := &cobra.Command{
		Use:   "update CHILD",
		Short: "Update a child profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Profiles.GetByID(ctx, childID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("birth") {
				dob, err := time.Parse("2006-01-02", birth)
				if err != nil {
					return fmt.Errorf("invalid date of birth %q: %w", birth, err)
				}
				p.DateOfBirth = dob
			}
			if cmd.Flags().Changed("interests") {
				p.Interests = parseInterests(interests)
			}
			if cmd.Flags().Changed("priority") {
				p.ParentPriority = priority
			}

			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated profile %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Child name")
	cmd.Flags().StringVar(&birth, "birth", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&interests, "interests", "", "Comma-separated interests")
	cmd.Flags().StringVar(&priority, "priority", "", "Parent priority")

	return cmd
}

func newProfileRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CHILD",
		Short: "Remove a child profile and all its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Profiles.Delete(ctx, childID); err != nil {
				return err
			}
			fmt.Printf("Removed profile %s\n", childID)
			return nil
		},
	}
}
