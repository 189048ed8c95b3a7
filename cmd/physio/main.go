package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cli/browser"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/alexanderramin/physio/internal/cli"
	"github.com/alexanderramin/physio/internal/config"
	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/logging"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/alexanderramin/physio/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory may set PHYSIO_* variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCloser := logging.Setup(logging.Params{
		LogFileName:   cfg.LogFile,
		LogToStderr:   cfg.LogToStderr,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})
	defer logCloser.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	log.Debugf("using database %s", cfg.DBPath)

	exerciseRepo := repository.NewSQLiteExerciseRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(log.StandardLogger())

	app := &cli.App{
		Exercises: service.NewExerciseService(exerciseRepo, observer),
		Sessions:  service.NewSessionService(sessionRepo, exerciseRepo, uow, observer),
		Workouts:  service.NewWorkoutService(workoutRepo, uow, observer),
		Progress:  service.NewProgressService(exerciseRepo, sessionRepo),
		Backup:    service.NewBackupService(exerciseRepo, sessionRepo, workoutRepo, uow, observer),
		Config:    cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		OpenBrowser: browser.OpenFile,
		TermWidth:   cli.StdoutWidth,
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
