package analytics

import (
	"math"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// WeekDays is the length of the adherence window.
const WeekDays = 7

type Adherence struct {
	DaysCompleted      int
	TargetDays         int
	ProgressPercentage int
	IsOnTrack          bool
}

// WeeklyAdherence counts distinct calendar days with activity in
// [now-7d, now). A non-positive target is treated as already met.
func WeeklyAdherence(targetDays int, completedAt []time.Time, now time.Time) Adherence {
	windowStart := now.AddDate(0, 0, -WeekDays)

	days := make(map[string]struct{}, WeekDays+1)
	for _, at := range completedAt {
		if at.Before(windowStart) || !at.Before(now) {
			continue
		}
		days[domain.DateKey(at)] = struct{}{}
	}

	result := Adherence{
		DaysCompleted: len(days),
		TargetDays:    targetDays,
	}
	if targetDays <= 0 {
		result.ProgressPercentage = 100
		result.IsOnTrack = true
		return result
	}
	result.ProgressPercentage = int(math.Floor(float64(result.DaysCompleted)/float64(targetDays)*100 + 0.5))
	result.IsOnTrack = result.DaysCompleted >= targetDays
	return result
}

// ExerciseAdherence applies WeeklyAdherence to an exercise's sessions.
func ExerciseAdherence(e *domain.Exercise, sessions []*domain.ExerciseSession, now time.Time) Adherence {
	times := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		times = append(times, s.CompletedAt)
	}
	return WeeklyAdherence(e.TargetDaysPerWeek, times, now)
}
