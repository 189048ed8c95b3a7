package analytics

import (
	"slices"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// DefaultSeriesWindow is the number of days shown in an exercise history.
const DefaultSeriesWindow = 30

// DayPoint is one calendar day of an exercise history.
type DayPoint struct {
	Date  time.Time
	Value float64
	Goal  float64
}

// BuildDailySeries returns windowDays points ending on referenceDay.
//
// Goals form a step function. A day takes the snapshot of its earliest
// session; when that session has none, or the day has no sessions, the day
// repeats the previous goal. The first day falls back to the exercise's
// current targets.
func BuildDailySeries(e *domain.Exercise, sessions []*domain.ExerciseSession, windowDays int, referenceDay time.Time) []DayPoint {
	if windowDays <= 0 {
		return []DayPoint{}
	}

	byDay := groupByDay(sessions)
	first := domain.StartOfDay(referenceDay).AddDate(0, 0, -(windowDays - 1))

	points := make([]DayPoint, windowDays)
	for i := range points {
		day := first.AddDate(0, 0, i)
		daySessions := byDay[domain.DateKey(day)]

		p := DayPoint{Date: day}
		for _, s := range daySessions {
			p.Value += SessionTotal(s, e.Kind)
		}

		if len(daySessions) > 0 && daySessions[0].HasSnapshot() {
			p.Goal = daySessions[0].SnapshotGoal(e.Kind)
		} else if i == 0 {
			p.Goal = e.GoalValue()
		} else {
			p.Goal = points[i-1].Goal
		}
		points[i] = p
	}
	return points
}

// groupByDay buckets sessions by calendar date, each bucket in ascending
// completion order. Ties keep their input order.
func groupByDay(sessions []*domain.ExerciseSession) map[string][]*domain.ExerciseSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b *domain.ExerciseSession) int {
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	byDay := make(map[string][]*domain.ExerciseSession)
	for _, s := range sorted {
		key := domain.DateKey(s.CompletedAt)
		byDay[key] = append(byDay[key], s)
	}
	return byDay
}
