package domain

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// Defaults applied when an exercise is created without explicit targets.
const (
	DefaultTargetSets        = 3
	DefaultTargetDaysPerWeek = 3
	DefaultTargetReps        = 10
	DefaultTargetDuration    = 30
)

type Exercise struct {
	ID          string
	Name        string
	Description string
	Kind        ExerciseKind

	// Current goal. Only the target matching Kind is meaningful.
	TargetSets        int
	TargetReps        int
	TargetDuration    int // seconds
	TargetDaysPerWeek int

	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyDefaults fills unset targets with the stock program values.
func (e *Exercise) ApplyDefaults() {
	if e.Kind == "" {
		e.Kind = KindRepBased
	}
	if e.TargetSets == 0 {
		e.TargetSets = DefaultTargetSets
	}
	if e.TargetDaysPerWeek == 0 {
		e.TargetDaysPerWeek = DefaultTargetDaysPerWeek
	}
	switch e.Kind {
	case KindRepBased:
		if e.TargetReps == 0 {
			e.TargetReps = DefaultTargetReps
		}
	case KindTimeBased:
		if e.TargetDuration == 0 {
			e.TargetDuration = DefaultTargetDuration
		}
	}
}

// Normalize clears the target that does not apply to the exercise kind.
func (e *Exercise) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	switch e.Kind {
	case KindRepBased:
		e.TargetDuration = 0
	case KindTimeBased:
		e.TargetReps = 0
	}
}

func (e *Exercise) Validate() error {
	var err error
	if strings.TrimSpace(e.Name) == "" {
		err = multierr.Append(err, fmt.Errorf("%w: name is required", ErrInvalidExercise))
	}
	if !e.Kind.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: kind must be %s or %s, got %q", ErrInvalidExercise, KindRepBased, KindTimeBased, e.Kind))
	}
	if e.TargetSets < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: target sets must be at least 1", ErrInvalidExercise))
	}
	if e.TargetDaysPerWeek < 1 || e.TargetDaysPerWeek > 7 {
		err = multierr.Append(err, fmt.Errorf("%w: target days per week must be between 1 and 7, got %d", ErrInvalidExercise, e.TargetDaysPerWeek))
	}
	switch e.Kind {
	case KindRepBased:
		if e.TargetReps < 1 {
			err = multierr.Append(err, fmt.Errorf("%w: target reps must be at least 1", ErrInvalidExercise))
		}
	case KindTimeBased:
		if e.TargetDuration < 1 {
			err = multierr.Append(err, fmt.Errorf("%w: target duration must be at least 1 second", ErrInvalidExercise))
		}
	}
	return err
}

// ActiveTarget is the per-set target for the exercise kind.
func (e *Exercise) ActiveTarget() int {
	if e.Kind == KindTimeBased {
		return e.TargetDuration
	}
	return e.TargetReps
}

// GoalValue is the daily volume implied by the current targets.
func (e *Exercise) GoalValue() float64 {
	return goalValue(e.Kind, e.TargetSets, e.TargetReps, e.TargetDuration)
}

func goalValue(kind ExerciseKind, sets, reps, duration int) float64 {
	if kind == KindTimeBased {
		return float64(sets * duration)
	}
	return float64(sets * reps)
}
