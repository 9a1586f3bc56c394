package cli

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/sprintbudget/internal/config"
	"github.com/alexanderramin/sprintbudget/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan      service.PlanService
	Tasks     service.TaskService
	Settings  service.SettingsService
	Scenarios service.ScenarioService

	Config config.Config
	Logger *slog.Logger

	// IsInteractive reports whether forms may prompt on the terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRootCmd creates the top-level "sprintbudget" command. Run without a
// subcommand it prints the plan summary and the configured default view.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sprintbudget",
		Short:         "Spread task effort over workdays and find budget breaches",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd, app)
		},
	}

	root.AddCommand(
		newSummaryCmd(app),
		newLedgerCmd(app),
		newCalendarCmd(app),
		newTimelineCmd(app),
		newBarsCmd(app),
		newSprintsCmd(app),
		newDayCmd(app),
		newTaskCmd(app),
		newCapCmd(app),
		newSettingsCmd(app),
		newScenarioCmd(app),
		newWatchCmd(app),
		newDashCmd(app),
	)

	return root
}
