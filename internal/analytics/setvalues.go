// Package analytics derives personal bests, weekly adherence and daily
// history from already-fetched exercise records. Everything here is a pure
// function of its inputs; malformed data degrades to fallbacks, never errors.
package analytics

import (
	"encoding/json"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
)

// SetSource tells where extracted set values came from.
type SetSource int

const (
	SourceEmpty SetSource = iota
	SourceDetailed
	SourceAveraged
)

func (s SetSource) String() string {
	switch s {
	case SourceDetailed:
		return "detailed"
	case SourceAveraged:
		return "averaged"
	default:
		return "empty"
	}
}

// SetValues is the per-set view of a session.
type SetValues struct {
	Source SetSource
	Values []float64
}

// ExtractSetValues resolves a session to its per-set measurements. Stored
// per-set data wins when it decodes to a JSON array; otherwise the session's
// positive average for the kind's metric stands in as a single set.
func ExtractSetValues(s *domain.ExerciseSession, kind domain.ExerciseKind) SetValues {
	if values, ok := decodeSetsData(s.SetsData); ok {
		return SetValues{Source: SourceDetailed, Values: values}
	}
	if avg := s.Average(kind); avg > 0 {
		return SetValues{Source: SourceAveraged, Values: []float64{float64(avg)}}
	}
	return SetValues{Source: SourceEmpty}
}

// SessionTotal is a session's contribution to its day: the sum of detailed
// set values, or the average multiplied by the set count.
func SessionTotal(s *domain.ExerciseSession, kind domain.ExerciseKind) float64 {
	v := ExtractSetValues(s, kind)
	if v.Source == SourceDetailed && len(v.Values) > 0 {
		return sum(v.Values)
	}
	avg := s.Average(kind)
	if avg <= 0 || s.Sets <= 0 {
		return 0
	}
	return float64(avg * s.Sets)
}

// decodeSetsData reports ok only for a JSON array. Non-numeric elements are
// dropped.
func decodeSetsData(raw string) ([]float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return nil, false
	}
	values := make([]float64, 0, len(items))
	for _, item := range items {
		if f, ok := item.(float64); ok {
			values = append(values, f)
		}
	}
	return values, true
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
