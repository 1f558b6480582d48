package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/lifeos/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles   service.ProfileService
	Plans      service.PlanService
	Tasks      service.TaskService
	Checkins   service.CheckinService
	Milestones service.MilestoneService
	Progress   service.ProgressService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands fall back to flags when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "lifeos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lifeos",
		Short: "Daily development plans for children, across five pillars",
	}

	root.AddCommand(
		newProfileCmd(app),
		newPlanCmd(app),
		newTaskCmd(app),
		newCheckinCmd(app),
		newMilestoneCmd(app),
		newProgressCmd(app),
	)

	return root
}
