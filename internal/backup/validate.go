package backup

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
)

// Validate checks a backup file before conversion and returns every problem
// found, not just the first.
func Validate(f *File) []error {
	var errs []error

	if f.Version != FormatVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", f.Version, FormatVersion))
	}

	names := make(map[string]bool, len(f.Exercises))
	for i := range f.Exercises {
		errs = append(errs, validateExercise(i, &f.Exercises[i], names)...)
	}

	workoutNames := make(map[string]bool, len(f.Workouts))
	for i := range f.Workouts {
		errs = append(errs, validateWorkout(i, &f.Workouts[i], names, workoutNames)...)
	}

	return errs
}

func validateExercise(i int, e *ExerciseRecord, names map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("exercises[%d]", i)

	key := strings.ToLower(strings.TrimSpace(e.Name))
	if key == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	} else if names[key] {
		errs = append(errs, fmt.Errorf("%s.name %q is used twice", prefix, e.Name))
	}
	names[key] = true

	if _, err := domain.ParseExerciseKind(e.Type); err != nil {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, e.Type))
	}
	if e.TargetSets < 0 {
		errs = append(errs, fmt.Errorf("%s.targetSets must not be negative", prefix))
	}
	if e.TargetDaysPerWeek < 0 || e.TargetDaysPerWeek > 7 {
		errs = append(errs, fmt.Errorf("%s.targetDaysPerWeek must be between 1 and 7, got %d", prefix, e.TargetDaysPerWeek))
	}
	if e.CreatedAt != "" {
		if _, err := domain.ParseLocalDateTime(e.CreatedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.createdAt: %w", prefix, err))
		}
	}

	days := make(map[string]bool, len(e.Sessions))
	for j, s := range e.Sessions {
		sp := fmt.Sprintf("%s.sessions[%d]", prefix, j)
		at, err := domain.ParseLocalDateTime(s.CompletedAt)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.completedAt: %w", sp, err))
		} else {
			day := domain.DateKey(at)
			if days[day] {
				errs = append(errs, fmt.Errorf("%s: second session on %s", sp, day))
			}
			days[day] = true
		}
		if s.Sets < 1 {
			errs = append(errs, fmt.Errorf("%s.sets must be at least 1", sp))
		}
	}
	return errs
}

func validateWorkout(i int, w *WorkoutRecord, exercises, names map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("workouts[%d]", i)

	key := strings.ToLower(strings.TrimSpace(w.Name))
	if key == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	} else if names[key] {
		errs = append(errs, fmt.Errorf("%s.name %q is used twice", prefix, w.Name))
	}
	names[key] = true

	if w.TargetDaysPerWeek < 0 || w.TargetDaysPerWeek > 7 {
		errs = append(errs, fmt.Errorf("%s.targetDaysPerWeek must be between 1 and 7, got %d", prefix, w.TargetDaysPerWeek))
	}
	for j, m := range w.Exercises {
		if !exercises[strings.ToLower(strings.TrimSpace(m.Exercise))] {
			errs = append(errs, fmt.Errorf("%s.exercises[%d]: unknown exercise %q", prefix, j, m.Exercise))
		}
	}
	for j, s := range w.Sessions {
		if _, err := domain.ParseLocalDateTime(s.CompletedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.sessions[%d].completedAt: %w", prefix, j, err))
		}
	}
	return errs
}
