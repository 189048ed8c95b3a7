package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/physio/internal/service"
)

// FormatOverview renders the dashboard: one row per exercise with its weekly
// adherence, best day and last session.
func FormatOverview(rows []service.ExerciseOverview, now time.Time) string {
	if len(rows) == 0 {
		return Dim("No exercises yet. Add one with `physio exercise add`.") + "\n"
	}

	headers := []string{"EXERCISE", "THIS WEEK", "PROGRESS", "STATUS", "BEST", "LAST"}
	table := make([][]string, 0, len(rows))
	onTrack := 0
	for _, r := range rows {
		e := r.Exercise
		best := Dim("--")
		if r.PersonalBest != nil {
			best = FormatMeasure(e.Kind, *r.PersonalBest)
		}
		last := Dim("never")
		if r.LastSession != nil {
			last = RelativeDay(*r.LastSession, now)
		}
		if r.Adherence.IsOnTrack {
			onTrack++
		}
		name := e.Name
		if e.Archived {
			name = Dim(name)
		}
		table = append(table, []string{
			name,
			fmt.Sprintf("%d/%d", r.Adherence.DaysCompleted, r.Adherence.TargetDays),
			RenderProgress(r.Adherence.ProgressPercentage, 10),
			TrackIndicator(r.Adherence.IsOnTrack),
			best,
			last,
		})
	}

	summary := Dim(fmt.Sprintf("%d of %d exercises on track this week", onTrack, len(rows)))
	return RenderBox("Status", RenderTable(headers, table, 1)+"\n"+summary)
}
