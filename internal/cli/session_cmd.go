package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and correct logged sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionTodayCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list EXERCISE",
		Short: "List an exercise's sessions, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.List(ctx, e.ID)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			slices.Reverse(sessions)
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionList(e.Name, sessions, e.Kind))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many sessions (0 for all)")

	return cmd
}

func newSessionTodayCmd(app *App) *cobra.Command {
	var date time.Time

	cmd := &cobra.Command{
		Use:   "today EXERCISE",
		Short: "Show the session logged today, or on --date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			day := date
			if day.IsZero() {
				day = app.now()
			}

			s, err := app.Sessions.Today(ctx, e.ID, day)
			if err != nil {
				return err
			}
			if s == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No session for %s on %s.\n", e.Name, domain.DateKey(day))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionList(e.Name, []*domain.ExerciseSession{s}, e.Kind))
			return nil
		},
	}

	cmd.Flags().Var(newLocalTimeValue(&date), "date", "Day to show, YYYY-MM-DD (default today)")

	return cmd
}

func newSessionEditCmd(app *App) *cobra.Command {
	var sets, average int
	var weight float64
	var clearWeight bool
	var notes string
	var at time.Time

	cmd := &cobra.Command{
		Use:   "edit EXERCISE SESSION [VALUE...]",
		Short: "Correct a logged session",
		Long: "Correct a logged session. VALUEs replace the per-set data; --sets and\n" +
			"--average replace the summary instead. The targets recorded with the\n" +
			"session are never changed.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := resolveSession(ctx, app, e.ID, args[1])
			if err != nil {
				return err
			}

			var upd service.SessionUpdate
			if upd.SetValues, err = parseSetValues(args[2:]); err != nil {
				return err
			}
			if len(upd.SetValues) == 0 {
				upd.SetValues = nil
			}
			flags := cmd.Flags()
			if flags.Changed("sets") {
				upd.Sets = &sets
			}
			if flags.Changed("average") {
				upd.Average = &average
			}
			if flags.Changed("weight") {
				upd.Weight = &weight
			}
			upd.ClearWeight = clearWeight
			if flags.Changed("notes") {
				upd.Notes = &notes
			}
			upd.CompletedAt = optionalTime(at)

			updated, err := app.Sessions.Update(ctx, s.ID, upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated session %s: %s (%s)\n",
				formatter.TruncID(updated.ID),
				formatter.FormatSets(updated, e.Kind),
				formatter.FormatMeasure(e.Kind, analytics.SessionTotal(updated, e.Kind)))
			return nil
		},
	}

	cmd.Flags().IntVar(&sets, "sets", 0, "Number of sets")
	cmd.Flags().IntVar(&average, "average", 0, "Average reps or seconds per set")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Load in kg")
	cmd.Flags().BoolVar(&clearWeight, "clear-weight", false, "Remove the recorded load")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	cmd.Flags().Var(newLocalTimeValue(&at), "at", "Completion time, YYYY-MM-DD[ HH:MM:SS]")
	cmd.MarkFlagsMutuallyExclusive("weight", "clear-weight")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove EXERCISE SESSION",
		Short: "Remove a logged session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := resolveSession(ctx, app, e.ID, args[1])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Remove the %s session of %s?",
				e.Name, formatter.HumanTimestamp(s.CompletedAt)))
			if err != nil || !ok {
				return err
			}
			if err := app.Sessions.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
