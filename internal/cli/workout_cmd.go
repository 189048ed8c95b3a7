package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"wo"},
		Short:   "Manage workouts, ordered groups of exercises",
	}

	cmd.AddCommand(
		newWorkoutAddCmd(app),
		newWorkoutListCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutLogCmd(app),
		newWorkoutProgressCmd(app),
		newWorkoutRemoveCmd(app),
	)

	return cmd
}

func newWorkoutAddCmd(app *App) *cobra.Command {
	var description string
	var members []string
	var daysPerWeek int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a workout",
		Example: "  physio workout add Morning --exercise squats:3x12 --exercise plank:2x45 --days 4\n" +
			"  physio workout add Rehab --exercise bridge --exercise clamshell",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := &domain.Workout{
				Name:              args[0],
				Description:       description,
				TargetDaysPerWeek: daysPerWeek,
			}
			for _, m := range members {
				we, err := parseWorkoutMember(ctx, app, m)
				if err != nil {
					return err
				}
				w.Exercises = append(w.Exercises, we)
			}

			if err := app.Workouts.Create(ctx, w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout %s (%s) with %d exercises\n",
				formatter.Bold(w.Name), formatter.TruncID(w.ID), len(w.Exercises))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringArrayVarP(&members, "exercise", "e", nil, "Member exercise as EXERCISE[:SETSxTARGET], repeatable, in order")
	cmd.Flags().IntVar(&daysPerWeek, "days", 0, "Target days per week")

	return cmd
}

// parseWorkoutMember reads "squats", "squats:3" or "squats:3x12". The target
// is reps or seconds depending on the exercise.
func parseWorkoutMember(ctx context.Context, app *App, raw string) (domain.WorkoutExercise, error) {
	ref, targets, hasTargets := strings.Cut(raw, ":")
	e, err := resolveExercise(ctx, app, ref)
	if err != nil {
		return domain.WorkoutExercise{}, err
	}
	we := domain.WorkoutExercise{ExerciseID: e.ID, TargetSets: e.TargetSets}
	if !hasTargets {
		return we, nil
	}

	setsStr, perSetStr, hasPerSet := strings.Cut(strings.ToLower(targets), "x")
	if we.TargetSets, err = strconv.Atoi(setsStr); err != nil || we.TargetSets < 1 {
		return domain.WorkoutExercise{}, fmt.Errorf("member %q: sets must be a positive number", raw)
	}
	if hasPerSet {
		perSet, err := strconv.Atoi(perSetStr)
		if err != nil || perSet < 1 {
			return domain.WorkoutExercise{}, fmt.Errorf("member %q: target must be a positive number", raw)
		}
		if e.Kind == domain.KindTimeBased {
			we.TargetDuration = perSet
		} else {
			we.TargetReps = perSet
		}
	}
	return we, nil
}

func newWorkoutListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := app.Workouts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkoutList(workouts))
			return nil
		},
	}
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show WORKOUT",
		Short: "Show a workout's exercises and this week's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, args[0])
			if err != nil {
				return err
			}
			exercises, err := app.Exercises.List(ctx, true)
			if err != nil {
				return err
			}
			byID := make(map[string]*domain.Exercise, len(exercises))
			for _, e := range exercises {
				byID[e.ID] = e
			}
			progress, err := app.Workouts.Progress(ctx, w.ID, app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkoutDetail(w, byID, progress))
			return nil
		},
	}
}

func newWorkoutLogCmd(app *App) *cobra.Command {
	var notes string
	var at time.Time

	cmd := &cobra.Command{
		Use:   "log WORKOUT",
		Short: "Record that a workout was completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, args[0])
			if err != nil {
				return err
			}
			completedAt := at
			if completedAt.IsZero() {
				completedAt = app.now()
			}
			s, err := app.Workouts.LogSession(ctx, w.ID, &completedAt, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %s\n",
				formatter.Bold(w.Name), formatter.HumanTimestamp(s.CompletedAt))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	cmd.Flags().Var(newLocalTimeValue(&at), "at", "Completion time, YYYY-MM-DD[ HH:MM:SS] (default now)")

	return cmd
}

func newWorkoutProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress WORKOUT",
		Short: "Show weekly adherence and recent sessions of a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, args[0])
			if err != nil {
				return err
			}
			now := app.now()
			p, err := app.Workouts.Progress(ctx, w.ID, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %d/%d days  %s  %s\n",
				formatter.Bold(w.Name), p.DaysCompleted, p.TargetDays,
				formatter.RenderProgress(p.ProgressPercentage, 12), formatter.TrackIndicator(p.IsOnTrack))
			if len(p.RecentSessions) == 0 {
				fmt.Fprintln(out, formatter.Dim("No sessions yet."))
				return nil
			}
			for _, s := range p.RecentSessions {
				fmt.Fprintf(out, "  %-10s %s  %s\n",
					formatter.RelativeDay(s.CompletedAt, now),
					formatter.HumanTimestamp(s.CompletedAt),
					formatter.Dim(formatter.Truncate(s.Notes, 50)))
			}
			return nil
		},
	}
}

func newWorkoutRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove WORKOUT",
		Short: "Delete a workout and its session log; member exercises are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete workout %s?", w.Name))
			if err != nil || !ok {
				return err
			}
			if err := app.Workouts.Delete(ctx, w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed workout %s\n", w.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
