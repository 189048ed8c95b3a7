package analytics

import (
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// History is everything needed to draw an exercise's recent record.
type History struct {
	Points      []DayPoint
	OnTrack     []bool
	MaxValue    float64 // at least 1, for scaling
	ActiveDays  int
	OnTrackDays int

	// All-time totals across every session passed in.
	TotalSessions int
	TotalSets     int
	TotalVolume   float64
}

// BuildHistory composes the daily series, its on-track flags and window totals.
func BuildHistory(e *domain.Exercise, sessions []*domain.ExerciseSession, windowDays int, referenceDay time.Time) History {
	points := BuildDailySeries(e, sessions, windowDays, referenceDay)
	h := History{
		Points:        points,
		OnTrack:       ClassifyOnTrack(points, e.TargetDaysPerWeek),
		MaxValue:      1,
		TotalSessions: len(sessions),
	}
	for i, p := range points {
		if p.Value > h.MaxValue {
			h.MaxValue = p.Value
		}
		if p.Value > 0 {
			h.ActiveDays++
		}
		if h.OnTrack[i] {
			h.OnTrackDays++
		}
	}
	for _, s := range sessions {
		h.TotalSets += s.Sets
		h.TotalVolume += SessionTotal(s, e.Kind)
	}
	return h
}
