package analytics

import "github.com/alexanderramin/physio/internal/domain"

// PersonalBest is the largest single set across all sessions. ok is false
// when no session yields a measurement.
func PersonalBest(kind domain.ExerciseKind, sessions []*domain.ExerciseSession) (best float64, ok bool) {
	for _, s := range sessions {
		for _, v := range ExtractSetValues(s, kind).Values {
			if !ok || v > best {
				best = v
				ok = true
			}
		}
	}
	return best, ok
}
