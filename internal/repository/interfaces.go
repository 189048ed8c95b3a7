package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

type ExerciseRepo interface {
	Create(ctx context.Context, e *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Exercise, error)
	Update(ctx context.Context, e *domain.Exercise) error
	Archive(ctx context.Context, id string, at time.Time) error
	Unarchive(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.ExerciseSession) error
	GetByID(ctx context.Context, id string) (*domain.ExerciseSession, error)
	// ListByExercise returns sessions oldest first.
	ListByExercise(ctx context.Context, exerciseID string) ([]*domain.ExerciseSession, error)
	// GetForDay returns the earliest session completed on the calendar day
	// of day, or ErrNotFound.
	GetForDay(ctx context.Context, exerciseID string, day time.Time) (*domain.ExerciseSession, error)
	Update(ctx context.Context, s *domain.ExerciseSession) error
	Delete(ctx context.Context, id string) error
}

type WorkoutRepo interface {
	Create(ctx context.Context, w *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	List(ctx context.Context) ([]*domain.Workout, error)
	// Update rewrites the workout row and replaces its exercise list.
	Update(ctx context.Context, w *domain.Workout) error
	Delete(ctx context.Context, id string) error
	AddSession(ctx context.Context, s *domain.WorkoutSession) error
	// ListSessions returns sessions oldest first.
	ListSessions(ctx context.Context, workoutID string) ([]*domain.WorkoutSession, error)
}
