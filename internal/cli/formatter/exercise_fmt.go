package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
)

func FormatExerciseList(exercises []*domain.Exercise) string {
	headers := []string{"ID", "NAME", "KIND", "TARGET", "DAYS/WK", ""}
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Name,
			StyleBlue.Render(e.Kind.Unit()),
			FormatTarget(e.TargetSets, e.ActiveTarget(), e.Kind),
			fmt.Sprintf("%d", e.TargetDaysPerWeek),
			ArchivedPill(e.Archived),
		})
	}
	return RenderBox("Exercises", RenderTable(headers, rows, 4))
}

// ExerciseDetail is what `exercise show` prints.
type ExerciseDetail struct {
	Exercise      *domain.Exercise
	PersonalBest  *float64
	TotalSessions int
	DaysThisWeek  int
	ProgressPct   int
	OnTrack       bool
}

func FormatExerciseDetail(d ExerciseDetail) string {
	e := d.Exercise
	var b strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", Dim(fmt.Sprintf("%-12s", label)), value)
	}
	line("ID", e.ID)
	line("Kind", e.Kind.Unit())
	line("Target", FormatTarget(e.TargetSets, e.ActiveTarget(), e.Kind))
	line("Days/week", fmt.Sprintf("%d", e.TargetDaysPerWeek))
	if e.Description != "" {
		line("Description", e.Description)
	}
	if e.Archived {
		line("Status", ArchivedPill(true))
	}
	b.WriteString("\n")

	best := Dim("none yet")
	if d.PersonalBest != nil {
		best = Bold(FormatMeasure(e.Kind, *d.PersonalBest))
	}
	line("Best set", best)
	line("Sessions", fmt.Sprintf("%d", d.TotalSessions))
	line("This week", fmt.Sprintf("%d/%d days  %s  %s",
		d.DaysThisWeek, e.TargetDaysPerWeek, RenderProgress(d.ProgressPct, 12), TrackIndicator(d.OnTrack)))

	return RenderBox(e.Name, strings.TrimRight(b.String(), "\n"))
}
