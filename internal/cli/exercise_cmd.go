package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercise",
		Aliases: []string{"ex"},
		Short:   "Manage exercises",
	}

	cmd.AddCommand(
		newExerciseAddCmd(app),
		newExerciseListCmd(app),
		newExerciseShowCmd(app),
		newExerciseEditCmd(app),
		newExerciseArchiveCmd(app, true),
		newExerciseArchiveCmd(app, false),
		newExerciseRemoveCmd(app),
	)

	return cmd
}

func newExerciseAddCmd(app *App) *cobra.Command {
	var name, description string
	var sets, reps, duration, daysPerWeek int
	kind := kindValue(domain.KindRepBased)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			var e *domain.Exercise
			if name == "" && app.interactive() {
				values := exerciseFormValues{Kind: kind.Kind()}
				if err := newExerciseForm(&values).Run(); err != nil {
					return err
				}
				var err error
				if e, err = values.toExercise(); err != nil {
					return err
				}
			} else {
				e = &domain.Exercise{
					Name:              name,
					Description:       description,
					Kind:              kind.Kind(),
					TargetSets:        sets,
					TargetReps:        reps,
					TargetDuration:    duration,
					TargetDaysPerWeek: daysPerWeek,
				}
			}

			if err := app.Exercises.Create(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s, %d days/week)\n",
				formatter.Bold(e.Name), formatter.TruncID(e.ID),
				formatter.FormatTarget(e.TargetSets, e.ActiveTarget(), e.Kind), e.TargetDaysPerWeek)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exercise name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Var(&kind, "kind", "Measurement: rep or time")
	cmd.Flags().IntVar(&sets, "sets", 0, "Target sets per session")
	cmd.Flags().IntVar(&reps, "reps", 0, "Target reps per set")
	cmd.Flags().IntVar(&duration, "duration", 0, "Target seconds per set")
	cmd.Flags().IntVar(&daysPerWeek, "days", 0, "Target days per week")

	return cmd
}

func newExerciseListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := app.Exercises.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(exercises) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No exercises found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseList(exercises))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived exercises")

	return cmd
}

func newExerciseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show EXERCISE",
		Short: "Show an exercise with its best day and weekly progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			best, err := app.Progress.PersonalBest(ctx, e.ID)
			if err != nil {
				return err
			}
			weekly, err := app.Progress.Weekly(ctx, e.ID, app.now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseDetail(formatter.ExerciseDetail{
				Exercise:      e,
				PersonalBest:  best.Value,
				TotalSessions: best.TotalSessions,
				DaysThisWeek:  weekly.DaysCompleted,
				ProgressPct:   weekly.ProgressPercentage,
				OnTrack:       weekly.IsOnTrack,
			}))
			return nil
		},
	}
}

func newExerciseEditCmd(app *App) *cobra.Command {
	var name, description string
	var sets, perSet, daysPerWeek int

	cmd := &cobra.Command{
		Use:   "edit EXERCISE",
		Short: "Change an exercise's name or targets",
		Long: "Change an exercise's name or targets. Sessions already logged keep the\n" +
			"targets that applied when they were recorded.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}

			var upd service.ExerciseUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				upd.Name = &name
			}
			if flags.Changed("description") {
				upd.Description = &description
			}
			if flags.Changed("sets") {
				upd.TargetSets = &sets
			}
			if flags.Changed("target") {
				if e.Kind == domain.KindTimeBased {
					upd.TargetDuration = &perSet
				} else {
					upd.TargetReps = &perSet
				}
			}
			if flags.Changed("days") {
				upd.TargetDaysPerWeek = &daysPerWeek
			}
			if upd == (service.ExerciseUpdate{}) {
				return fmt.Errorf("nothing to change; pass at least one of --name, --description, --sets, --target, --days")
			}

			updated, err := app.Exercises.Update(ctx, e.ID, upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s, %d days/week\n",
				formatter.Bold(updated.Name),
				formatter.FormatTarget(updated.TargetSets, updated.ActiveTarget(), updated.Kind),
				updated.TargetDaysPerWeek)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().IntVar(&sets, "sets", 0, "Target sets per session")
	cmd.Flags().IntVar(&perSet, "target", 0, "Target reps or seconds per set")
	cmd.Flags().IntVar(&daysPerWeek, "days", 0, "Target days per week")

	return cmd
}

func newExerciseArchiveCmd(app *App, archive bool) *cobra.Command {
	use, short, verb := "archive", "Hide an exercise from status and lists", "Archived"
	if !archive {
		use, short, verb = "unarchive", "Restore an archived exercise", "Restored"
	}

	return &cobra.Command{
		Use:   use + " EXERCISE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			if archive {
				err = app.Exercises.Archive(ctx, e.ID)
			} else {
				err = app.Exercises.Unarchive(ctx, e.ID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, e.Name)
			return nil
		},
	}
}

func newExerciseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove EXERCISE",
		Short: "Delete an exercise and all of its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete %s and all of its sessions?", e.Name))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Exercises.Delete(ctx, e.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", e.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
