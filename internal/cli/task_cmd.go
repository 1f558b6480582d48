package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/cli/formatter"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Mark tasks complete or reopen them",
	}

	cmd.AddCommand(
		newTaskDoneCmd(app),
		newTaskUndoneCmd(app),
	)

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done TASK_ID",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.SetCompleted(context.Background(), args[0], true)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.CompletionPill(true), task.Title)
			return nil
		},
	}
}

func newTaskUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone TASK_ID",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.SetCompleted(context.Background(), args[0], false)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.CompletionPill(false), task.Title)
			return nil
		},
	}
}
