package service

import (
	"context"
	"time"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/backup"
	"github.com/alexanderramin/physio/internal/domain"
)

type ExerciseService interface {
	Create(ctx context.Context, e *domain.Exercise) error
	Get(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Exercise, error)
	Update(ctx context.Context, id string, upd ExerciseUpdate) (*domain.Exercise, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	// Log records the day's session for an exercise, updating it in place
	// when one already exists. created reports which happened.
	Log(ctx context.Context, req LogSessionRequest) (session *domain.ExerciseSession, created bool, err error)
	// Today returns the session completed on day, or nil.
	Today(ctx context.Context, exerciseID string, day time.Time) (*domain.ExerciseSession, error)
	Get(ctx context.Context, id string) (*domain.ExerciseSession, error)
	List(ctx context.Context, exerciseID string) ([]*domain.ExerciseSession, error)
	Update(ctx context.Context, id string, upd SessionUpdate) (*domain.ExerciseSession, error)
	Delete(ctx context.Context, id string) error
}

type WorkoutService interface {
	Create(ctx context.Context, w *domain.Workout) error
	Get(ctx context.Context, id string) (*domain.Workout, error)
	List(ctx context.Context) ([]*domain.Workout, error)
	Update(ctx context.Context, id string, upd WorkoutUpdate) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
	LogSession(ctx context.Context, workoutID string, completedAt *time.Time, notes string) (*domain.WorkoutSession, error)
	Sessions(ctx context.Context, workoutID string) ([]*domain.WorkoutSession, error)
	Progress(ctx context.Context, workoutID string, now time.Time) (*WorkoutProgress, error)
}

// BackupService moves the whole dataset in and out of a backup file.
type BackupService interface {
	// Import validates f and inserts its contents in one transaction with
	// fresh ids. Nothing is written when any part fails.
	Import(ctx context.Context, f *backup.File) (*ImportResult, error)
	Export(ctx context.Context) (*backup.File, error)
}

type ProgressService interface {
	PersonalBest(ctx context.Context, exerciseID string) (*PersonalBest, error)
	Weekly(ctx context.Context, exerciseID string, now time.Time) (*ExerciseProgress, error)
	History(ctx context.Context, exerciseID string, days int, referenceDay time.Time) (*ExerciseHistory, error)
	Overview(ctx context.Context, includeArchived bool, now time.Time) ([]ExerciseOverview, error)
}

// LogSessionRequest carries one day's measurements. When SetValues is
// non-empty it defines the sets; otherwise Sets and Average are used.
type LogSessionRequest struct {
	ExerciseID  string
	CompletedAt *time.Time // defaults to the local wall clock
	SetValues   []float64
	Sets        int
	Average     int
	Weight      *float64
	Notes       string
}

// ExerciseUpdate is a partial update; nil fields are left unchanged.
type ExerciseUpdate struct {
	Name              *string
	Description       *string
	Kind              *domain.ExerciseKind
	TargetSets        *int
	TargetReps        *int
	TargetDuration    *int
	TargetDaysPerWeek *int
	Archived          *bool
}

// SessionUpdate is a partial update; nil fields are left unchanged.
// SetValues replaces per-set data when non-nil.
type SessionUpdate struct {
	CompletedAt *time.Time
	SetValues   []float64
	Sets        *int
	Average     *int
	Weight      *float64
	ClearWeight bool
	Notes       *string
}

type WorkoutUpdate struct {
	Name              *string
	Description       *string
	TargetDaysPerWeek *int
}

type PersonalBest struct {
	ExerciseID    string
	Value         *float64
	TotalSessions int
}

type ExerciseProgress struct {
	Exercise *domain.Exercise
	analytics.Adherence
}

type ExerciseHistory struct {
	Exercise *domain.Exercise
	analytics.History
}

type WorkoutProgress struct {
	Workout *domain.Workout
	analytics.Adherence
	RecentSessions []*domain.WorkoutSession
}

// ExerciseOverview is one dashboard row.
type ExerciseOverview struct {
	Exercise     *domain.Exercise
	Adherence    analytics.Adherence
	PersonalBest *float64
	SessionCount int
	LastSession  *time.Time
}

type ImportResult struct {
	Exercises       int
	Sessions        int
	Workouts        int
	WorkoutSessions int
}
