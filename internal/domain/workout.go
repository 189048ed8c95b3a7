package domain

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// Workout groups exercises that are performed together.
type Workout struct {
	ID                string
	Name              string
	Description       string
	TargetDaysPerWeek int
	Exercises         []WorkoutExercise
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type WorkoutExercise struct {
	ExerciseID     string
	TargetSets     int
	TargetReps     int
	TargetDuration int
	OrderIndex     int
}

type WorkoutSession struct {
	ID          string
	WorkoutID   string
	CompletedAt time.Time
	Notes       string
}

// ApplyDefaults fills the weekly target and per-exercise set counts, and
// numbers the exercises in their given order.
func (w *Workout) ApplyDefaults() {
	w.Name = strings.TrimSpace(w.Name)
	if w.TargetDaysPerWeek == 0 {
		w.TargetDaysPerWeek = DefaultTargetDaysPerWeek
	}
	for i := range w.Exercises {
		if w.Exercises[i].TargetSets == 0 {
			w.Exercises[i].TargetSets = DefaultTargetSets
		}
		w.Exercises[i].OrderIndex = i
	}
}

func (w *Workout) Validate() error {
	var err error
	if w.Name == "" {
		err = multierr.Append(err, fmt.Errorf("%w: name is required", ErrInvalidWorkout))
	}
	if w.TargetDaysPerWeek < 1 || w.TargetDaysPerWeek > 7 {
		err = multierr.Append(err, fmt.Errorf("%w: target days per week must be between 1 and 7, got %d", ErrInvalidWorkout, w.TargetDaysPerWeek))
	}
	seen := make(map[string]bool, len(w.Exercises))
	for _, we := range w.Exercises {
		if we.ExerciseID == "" {
			err = multierr.Append(err, fmt.Errorf("%w: exercise id is required", ErrInvalidWorkout))
			continue
		}
		if seen[we.ExerciseID] {
			err = multierr.Append(err, fmt.Errorf("%w: exercise %s listed twice", ErrInvalidWorkout, we.ExerciseID))
		}
		seen[we.ExerciseID] = true
	}
	return err
}
