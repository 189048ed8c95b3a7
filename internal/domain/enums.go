package domain

import (
	"fmt"
	"strings"
)

type ExerciseKind string

const (
	KindRepBased  ExerciseKind = "REP_BASED"
	KindTimeBased ExerciseKind = "TIME_BASED"
)

func (k ExerciseKind) Valid() bool {
	return k == KindRepBased || k == KindTimeBased
}

// Unit is the measurement label for one set of this kind.
func (k ExerciseKind) Unit() string {
	if k == KindTimeBased {
		return "sec"
	}
	return "reps"
}

// ParseExerciseKind accepts the canonical names and a few short aliases.
func ParseExerciseKind(s string) (ExerciseKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rep", "reps", "rep_based", "rep-based":
		return KindRepBased, nil
	case "time", "timed", "time_based", "time-based", "duration":
		return KindTimeBased, nil
	default:
		return "", fmt.Errorf("unknown exercise kind %q (want rep or time)", s)
	}
}
