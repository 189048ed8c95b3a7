package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
)

// resolveExercise finds an exercise by full id, case-insensitive name, or a
// unique id prefix, in that order. Archived exercises are included.
func resolveExercise(ctx context.Context, app *App, input string) (*domain.Exercise, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("exercise is required")
	}

	exercises, err := app.Exercises.List(ctx, true)
	if err != nil {
		return nil, err
	}
	match, err := resolveByIDOrName(exercises, input,
		func(e *domain.Exercise) string { return e.ID },
		func(e *domain.Exercise) string { return e.Name },
	)
	if err != nil {
		return nil, fmt.Errorf("exercise %q: %w", input, err)
	}
	return match, nil
}

func resolveWorkout(ctx context.Context, app *App, input string) (*domain.Workout, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("workout is required")
	}

	workouts, err := app.Workouts.List(ctx)
	if err != nil {
		return nil, err
	}
	match, err := resolveByIDOrName(workouts, input,
		func(w *domain.Workout) string { return w.ID },
		func(w *domain.Workout) string { return w.Name },
	)
	if err != nil {
		return nil, fmt.Errorf("workout %q: %w", input, err)
	}
	return match, nil
}

// resolveSession finds one of the exercise's sessions by id or id prefix.
func resolveSession(ctx context.Context, app *App, exerciseID, input string) (*domain.ExerciseSession, error) {
	sessions, err := app.Sessions.List(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	match, err := resolveByIDOrName(sessions, strings.TrimSpace(input),
		func(s *domain.ExerciseSession) string { return s.ID },
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", input, err)
	}
	return match, nil
}

func resolveByIDOrName[T any](items []T, input string, id func(T) string, name func(T) string) (T, error) {
	var zero T
	for _, it := range items {
		if id(it) == input {
			return it, nil
		}
	}
	if name != nil {
		for _, it := range items {
			if strings.EqualFold(name(it), input) {
				return it, nil
			}
		}
	}

	var matches []T
	for _, it := range items {
		if strings.HasPrefix(id(it), input) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return zero, repository.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("ambiguous id prefix, %d matches", len(matches))
	}
}
