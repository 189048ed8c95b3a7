package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/google/uuid"
)

type workoutService struct {
	workouts repository.WorkoutRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWorkoutService(workouts repository.WorkoutRepo, uow db.UnitOfWork, observers ...UseCaseObserver) WorkoutService {
	return &workoutService{workouts: workouts, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Create stores the workout and its member list atomically. Every member
// exercise must already exist.
func (s *workoutService) Create(ctx context.Context, w *domain.Workout) (err error) {
	ctx, finish := useCase(ctx, s.observer, "workout.create", map[string]any{
		"name":      w.Name,
		"exercises": len(w.Exercises),
	})
	defer func() { finish(err) }()

	w.ApplyDefaults()
	if err = w.Validate(); err != nil {
		return err
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := wallNow()
	w.CreatedAt = now
	w.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		exercises := repository.NewSQLiteExerciseRepo(tx)
		for _, we := range w.Exercises {
			if _, err := exercises.GetByID(ctx, we.ExerciseID); err != nil {
				return fmt.Errorf("workout member %s: %w", we.ExerciseID, err)
			}
		}
		return repository.NewSQLiteWorkoutRepo(tx).Create(ctx, w)
	})
}

func (s *workoutService) Get(ctx context.Context, id string) (*domain.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

func (s *workoutService) List(ctx context.Context) ([]*domain.Workout, error) {
	return s.workouts.List(ctx)
}

func (s *workoutService) Update(ctx context.Context, id string, upd WorkoutUpdate) (w *domain.Workout, err error) {
	ctx, finish := useCase(ctx, s.observer, "workout.update", map[string]any{"workout_id": id})
	defer func() { finish(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkoutRepo(tx)
		found, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		found.Name = domain.ValueOr(found.Name, upd.Name)
		found.Description = domain.ValueOr(found.Description, upd.Description)
		found.TargetDaysPerWeek = domain.ValueOr(found.TargetDaysPerWeek, upd.TargetDaysPerWeek)
		found.ApplyDefaults()
		if err := found.Validate(); err != nil {
			return err
		}
		found.UpdatedAt = wallNow()
		w = found
		return repo.Update(ctx, found)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workoutService) Delete(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "workout.delete", map[string]any{"workout_id": id})
	defer func() { finish(err) }()
	return s.workouts.Delete(ctx, id)
}

func (s *workoutService) LogSession(ctx context.Context, workoutID string, completedAt *time.Time, notes string) (session *domain.WorkoutSession, err error) {
	ctx, finish := useCase(ctx, s.observer, "workout.log_session", map[string]any{"workout_id": workoutID})
	defer func() { finish(err) }()

	if _, err = s.workouts.GetByID(ctx, workoutID); err != nil {
		return nil, err
	}
	session = &domain.WorkoutSession{
		ID:          uuid.New().String(),
		WorkoutID:   workoutID,
		CompletedAt: domain.ValueOr(wallNow(), completedAt),
		Notes:       notes,
	}
	if err = s.workouts.AddSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *workoutService) Sessions(ctx context.Context, workoutID string) ([]*domain.WorkoutSession, error) {
	if _, err := s.workouts.GetByID(ctx, workoutID); err != nil {
		return nil, err
	}
	return s.workouts.ListSessions(ctx, workoutID)
}

// Progress applies the weekly adherence calculation to the workout's sessions.
func (s *workoutService) Progress(ctx context.Context, workoutID string, now time.Time) (*WorkoutProgress, error) {
	ctx, span := tracer.Start(ctx, "workout.progress")
	defer span.End()

	w, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.workouts.ListSessions(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(sessions))
	var recent []*domain.WorkoutSession
	windowStart := now.AddDate(0, 0, -analytics.WeekDays)
	for _, ws := range sessions {
		times = append(times, ws.CompletedAt)
		if !ws.CompletedAt.Before(windowStart) && ws.CompletedAt.Before(now) {
			recent = append(recent, ws)
		}
	}
	return &WorkoutProgress{
		Workout:        w,
		Adherence:      analytics.WeeklyAdherence(w.TargetDaysPerWeek, times, now),
		RecentSessions: recent,
	}, nil
}
