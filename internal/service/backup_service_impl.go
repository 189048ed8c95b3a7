package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/backup"
	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
)

type backupService struct {
	exercises repository.ExerciseRepo
	sessions  repository.SessionRepo
	workouts  repository.WorkoutRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewBackupService(
	exercises repository.ExerciseRepo,
	sessions repository.SessionRepo,
	workouts repository.WorkoutRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) BackupService {
	return &backupService{
		exercises: exercises,
		sessions:  sessions,
		workouts:  workouts,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *backupService) Import(ctx context.Context, f *backup.File) (result *ImportResult, err error) {
	fields := map[string]any{"exercises": len(f.Exercises), "workouts": len(f.Workouts)}
	ctx, finish := useCase(ctx, s.observer, "backup.import", fields)
	defer func() { finish(err) }()

	if errs := backup.Validate(f); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, errors.Join(errs...))
	}
	ds, err := backup.Convert(f, wallNow())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txExercises := repository.NewSQLiteExerciseRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txWorkouts := repository.NewSQLiteWorkoutRepo(tx)

		if err := checkNamesFree(ctx, txExercises, txWorkouts, ds); err != nil {
			return err
		}
		for _, e := range ds.Exercises {
			if err := txExercises.Create(ctx, e); err != nil {
				return fmt.Errorf("importing exercise %q: %w", e.Name, err)
			}
		}
		for _, sess := range ds.Sessions {
			if err := txSessions.Create(ctx, sess); err != nil {
				return fmt.Errorf("importing session: %w", err)
			}
		}
		for _, w := range ds.Workouts {
			if err := txWorkouts.Create(ctx, w); err != nil {
				return fmt.Errorf("importing workout %q: %w", w.Name, err)
			}
		}
		for _, ws := range ds.WorkoutSessions {
			if err := txWorkouts.AddSession(ctx, ws); err != nil {
				return fmt.Errorf("importing workout session: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Exercises:       len(ds.Exercises),
		Sessions:        len(ds.Sessions),
		Workouts:        len(ds.Workouts),
		WorkoutSessions: len(ds.WorkoutSessions),
	}, nil
}

func checkNamesFree(ctx context.Context, exercises repository.ExerciseRepo, workouts repository.WorkoutRepo, ds *backup.Dataset) error {
	existing, err := exercises.List(ctx, true)
	if err != nil {
		return err
	}
	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		taken[strings.ToLower(e.Name)] = true
	}
	for _, e := range ds.Exercises {
		if taken[strings.ToLower(e.Name)] {
			return fmt.Errorf("exercise %q: %w", e.Name, ErrNameTaken)
		}
	}

	existingWorkouts, err := workouts.List(ctx)
	if err != nil {
		return err
	}
	taken = make(map[string]bool, len(existingWorkouts))
	for _, w := range existingWorkouts {
		taken[strings.ToLower(w.Name)] = true
	}
	for _, w := range ds.Workouts {
		if taken[strings.ToLower(w.Name)] {
			return fmt.Errorf("workout %q: %w", w.Name, ErrNameTaken)
		}
	}
	return nil
}

func (s *backupService) Export(ctx context.Context) (f *backup.File, err error) {
	ctx, finish := useCase(ctx, s.observer, "backup.export", nil)
	defer func() { finish(err) }()

	exercises, err := s.exercises.List(ctx, true)
	if err != nil {
		return nil, err
	}
	sessions := make(map[string][]*domain.ExerciseSession, len(exercises))
	for _, e := range exercises {
		if sessions[e.ID], err = s.sessions.ListByExercise(ctx, e.ID); err != nil {
			return nil, err
		}
	}

	workouts, err := s.workouts.List(ctx)
	if err != nil {
		return nil, err
	}
	workoutSessions := make(map[string][]*domain.WorkoutSession, len(workouts))
	for _, w := range workouts {
		if workoutSessions[w.ID], err = s.workouts.ListSessions(ctx, w.ID); err != nil {
			return nil, err
		}
	}

	return backup.Build(exercises, sessions, workouts, workoutSessions, wallNow()), nil
}
