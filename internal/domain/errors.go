package domain

import "errors"

var (
	ErrInvalidExercise = errors.New("invalid exercise")
	ErrInvalidSession  = errors.New("invalid session")
	ErrInvalidWorkout  = errors.New("invalid workout")
)
