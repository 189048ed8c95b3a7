package formatter

import (
	"strings"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/domain"
)

// FormatSets renders per-set values as "45 · 50 · 60". Sessions without
// per-set detail show "3 × 40s".
func FormatSets(s *domain.ExerciseSession, kind domain.ExerciseKind) string {
	v := analytics.ExtractSetValues(s, kind)
	switch v.Source {
	case analytics.SourceDetailed:
		parts := make([]string, 0, len(v.Values))
		for _, x := range v.Values {
			if kind == domain.KindTimeBased {
				parts = append(parts, FormatSeconds(x))
			} else {
				parts = append(parts, FormatNumber(x))
			}
		}
		return strings.Join(parts, " · ")
	case analytics.SourceAveraged:
		return FormatTarget(s.Sets, s.Average(kind), kind)
	default:
		return Dim("--")
	}
}

// FormatSessionList renders sessions in the order given.
func FormatSessionList(title string, sessions []*domain.ExerciseSession, kind domain.ExerciseKind) string {
	headers := []string{"ID", "COMPLETED", "SETS", "TOTAL", "WEIGHT", "NOTES"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanTimestamp(s.CompletedAt),
			FormatSets(s, kind),
			FormatMeasure(kind, analytics.SessionTotal(s, kind)),
			FormatWeight(s.Weight),
			Dim(Truncate(s.Notes, 40)),
		})
	}
	return RenderBox(title, RenderTable(headers, rows, 3))
}
