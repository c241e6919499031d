package cli

import (
	"time"

	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/alexanderramin/careminder/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by CLI commands.
type App struct {
	Editor  service.RecurrenceEditor
	Catalog service.ActionCatalog
	Rule    recurrence.Rule

	// Location is where dates given on the command line are interpreted.
	Location *time.Location
	// Now defaults the reference date when --date is omitted.
	Now func() time.Time

	IsInteractive func() bool
}

// NewRootCmd creates the top-level "careminder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "careminder",
		Short:         "Plan recurring reminders for habits and actions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMonthlyCmd(app),
		newSlotsCmd(app),
		newPlanCmd(app),
		newDecodeCmd(app),
		newEditCmd(app),
		newActionsCmd(app),
	)

	return root
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
