package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ExerciseSession is one logged occurrence of an exercise.
type ExerciseSession struct {
	ID          string
	ExerciseID  string
	CompletedAt time.Time // wall clock, see LocalDateTimeLayout

	Sets     int
	Reps     int // average reps per set
	Duration int // average seconds per set
	Weight   *float64
	Notes    string

	// SetsData holds the per-set measurements as a JSON number array.
	// When present it takes precedence over the averages.
	SetsData string

	// Targets of the exercise at the time the session was first recorded.
	TargetSets     int
	TargetReps     int
	TargetDuration int
}

// SnapshotTargets copies the exercise's current targets onto the session.
func (s *ExerciseSession) SnapshotTargets(e *Exercise) {
	s.TargetSets = e.TargetSets
	s.TargetReps = e.TargetReps
	s.TargetDuration = e.TargetDuration
}

func (s *ExerciseSession) HasSnapshot() bool {
	return s.TargetSets > 0
}

// SnapshotGoal is the daily volume implied by the snapshotted targets.
func (s *ExerciseSession) SnapshotGoal(kind ExerciseKind) float64 {
	return goalValue(kind, s.TargetSets, s.TargetReps, s.TargetDuration)
}

// Average returns the session-level average for the measured metric.
func (s *ExerciseSession) Average(kind ExerciseKind) int {
	if kind == KindTimeBased {
		return s.Duration
	}
	return s.Reps
}

// RecordSets stores per-set measurements and derives the set count and the
// rounded average from them.
func (s *ExerciseSession) RecordSets(kind ExerciseKind, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: at least one set is required", ErrInvalidSession)
	}
	var sum float64
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: set %d has invalid value %v", ErrInvalidSession, i+1, v)
		}
		sum += v
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding sets: %w", err)
	}

	avg := int(math.Round(sum / float64(len(values))))
	s.Sets = len(values)
	s.SetsData = string(data)
	if kind == KindTimeBased {
		s.Duration = avg
		s.Reps = 0
	} else {
		s.Reps = avg
		s.Duration = 0
	}
	return nil
}

// RecordAverage stores a session without per-set detail.
func (s *ExerciseSession) RecordAverage(kind ExerciseKind, sets, average int) error {
	if sets < 1 {
		return fmt.Errorf("%w: sets must be at least 1", ErrInvalidSession)
	}
	if average < 0 {
		return fmt.Errorf("%w: average must not be negative", ErrInvalidSession)
	}
	s.Sets = sets
	s.SetsData = ""
	if kind == KindTimeBased {
		s.Duration = average
		s.Reps = 0
	} else {
		s.Reps = average
		s.Duration = 0
	}
	return nil
}
