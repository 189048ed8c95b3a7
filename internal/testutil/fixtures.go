package testutil

import (
	"encoding/json"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/google/uuid"
)

// MustLocal parses a canonical local timestamp or date and panics on error.
func MustLocal(s string) time.Time {
	t, err := domain.ParseLocalDateTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Exercise options
type ExerciseOption func(*domain.Exercise)

// WithKind switches the exercise kind, keeping the active target populated.
func WithKind(k domain.ExerciseKind) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Kind = k
		if k == domain.KindTimeBased {
			if e.TargetDuration == 0 {
				e.TargetDuration = domain.DefaultTargetDuration
			}
			e.TargetReps = 0
		}
	}
}

// WithTargets sets target sets and the per-set target for the current kind.
func WithTargets(sets, perSet int) ExerciseOption {
	return func(e *domain.Exercise) {
		e.TargetSets = sets
		if e.Kind == domain.KindTimeBased {
			e.TargetDuration = perSet
		} else {
			e.TargetReps = perSet
		}
	}
}

func WithDaysPerWeek(n int) ExerciseOption {
	return func(e *domain.Exercise) {
		e.TargetDaysPerWeek = n
	}
}

func WithArchived() ExerciseOption {
	return func(e *domain.Exercise) {
		e.Archived = true
	}
}

func NewTestExercise(name string, opts ...ExerciseOption) *domain.Exercise {
	now := domain.WallClock(time.Now())
	e := &domain.Exercise{
		ID:                uuid.New().String(),
		Name:              name,
		Kind:              domain.KindRepBased,
		TargetSets:        3,
		TargetReps:        10,
		TargetDaysPerWeek: 3,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session options
type SessionOption func(*domain.ExerciseSession)

// WithSetsData stores raw per-set data verbatim, malformed or not.
func WithSetsData(raw string) SessionOption {
	return func(s *domain.ExerciseSession) {
		s.SetsData = raw
	}
}

// WithSetValues stores values as per-set data and sets the set count.
func WithSetValues(values ...float64) SessionOption {
	return func(s *domain.ExerciseSession) {
		data, _ := json.Marshal(values)
		s.SetsData = string(data)
		s.Sets = len(values)
	}
}

func WithReps(sets, reps int) SessionOption {
	return func(s *domain.ExerciseSession) {
		s.Sets = sets
		s.Reps = reps
	}
}

func WithDuration(sets, seconds int) SessionOption {
	return func(s *domain.ExerciseSession) {
		s.Sets = sets
		s.Duration = seconds
	}
}

func WithSnapshot(sets, reps, duration int) SessionOption {
	return func(s *domain.ExerciseSession) {
		s.TargetSets = sets
		s.TargetReps = reps
		s.TargetDuration = duration
	}
}

func WithNotes(notes string) SessionOption {
	return func(s *domain.ExerciseSession) {
		s.Notes = notes
	}
}

// NewTestSession builds a session without a snapshot or measurements.
// completedAt uses the canonical local format.
func NewTestSession(exerciseID, completedAt string, opts ...SessionOption) *domain.ExerciseSession {
	s := &domain.ExerciseSession{
		ID:          uuid.New().String(),
		ExerciseID:  exerciseID,
		CompletedAt: MustLocal(completedAt),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestWorkout(name string, exerciseIDs ...string) *domain.Workout {
	now := domain.WallClock(time.Now())
	w := &domain.Workout{
		ID:                uuid.New().String(),
		Name:              name,
		TargetDaysPerWeek: 3,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for i, id := range exerciseIDs {
		w.Exercises = append(w.Exercises, domain.WorkoutExercise{
			ExerciseID: id,
			TargetSets: 3,
			OrderIndex: i,
		})
	}
	return w
}
