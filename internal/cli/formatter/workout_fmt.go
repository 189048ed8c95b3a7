package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

func FormatWorkoutList(workouts []*domain.Workout) string {
	headers := []string{"ID", "NAME", "EXERCISES", "DAYS/WK"}
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, []string{
			TruncID(w.ID),
			w.Name,
			fmt.Sprintf("%d", len(w.Exercises)),
			fmt.Sprintf("%d", w.TargetDaysPerWeek),
		})
	}
	return RenderBox("Workouts", RenderTable(headers, rows, 2, 3))
}

// FormatWorkoutDetail lists the members in order. exercises is keyed by id;
// members missing from it are shown by id with their set count only.
func FormatWorkoutDetail(w *domain.Workout, exercises map[string]*domain.Exercise, progress *service.WorkoutProgress) string {
	var b strings.Builder
	if w.Description != "" {
		b.WriteString(Dim(w.Description))
		b.WriteString("\n\n")
	}

	headers := []string{"#", "EXERCISE", "TARGET"}
	rows := make([][]string, 0, len(w.Exercises))
	for i, we := range w.Exercises {
		name, target := TruncID(we.ExerciseID), fmt.Sprintf("%d sets", we.TargetSets)
		if e, ok := exercises[we.ExerciseID]; ok {
			name = e.Name
			perSet := we.TargetReps
			if e.Kind == domain.KindTimeBased {
				perSet = we.TargetDuration
			}
			if perSet == 0 {
				perSet = e.ActiveTarget()
			}
			target = FormatTarget(we.TargetSets, perSet, e.Kind)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), name, target})
	}
	b.WriteString(RenderTable(headers, rows, 0))

	if progress != nil {
		fmt.Fprintf(&b, "\n%s %d/%d days  %s  %s",
			Dim("This week"),
			progress.DaysCompleted, progress.TargetDays,
			RenderProgress(progress.ProgressPercentage, 12),
			TrackIndicator(progress.IsOnTrack),
		)
	}
	return RenderBox(w.Name, b.String())
}
