package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/config"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Exercises service.ExerciseService
	Sessions  service.SessionService
	Workouts  service.WorkoutService
	Progress  service.ProgressService
	Backup    service.BackupService

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Forms and
	// confirmations are only shown when it returns true.
	IsInteractive func() bool
	// Now returns the local wall clock. Tests pin it.
	Now func() time.Time
	// OpenBrowser opens a file or URL in the user's browser.
	OpenBrowser func(target string) error
	// TermWidth returns the usable terminal width for wide output.
	TermWidth func() int
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return domain.WallClock(time.Now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "physio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "physio",
		Short:         "Track physiotherapy exercises and weekly adherence",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newExerciseCmd(app),
		newLogCmd(app),
		newSessionCmd(app),
		newStatusCmd(app),
		newBestCmd(app),
		newHistoryCmd(app),
		newWorkoutCmd(app),
		newTrainCmd(app),
		newServeCmd(app),
		newSeedCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
