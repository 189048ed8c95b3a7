package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

func newLogCmd(app *App) *cobra.Command {
	var sets, reps, duration int
	var weight float64
	var notes string
	var at time.Time

	cmd := &cobra.Command{
		Use:   "log EXERCISE [VALUE...]",
		Short: "Log today's session for an exercise",
		Long: "Log today's session for an exercise. Each VALUE is one set, in reps or\n" +
			"seconds depending on the exercise. Without values, --sets with --reps or\n" +
			"--duration record an average; anything left out defaults to the target.\n" +
			"Logging again on the same day replaces that day's session.",
		Example: "  physio log plank 45 50 60\n  physio log squats --sets 3 --reps 12 --weight 20",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}

			values, err := parseSetValues(args[1:])
			if err != nil {
				return err
			}

			req := service.LogSessionRequest{
				ExerciseID:  e.ID,
				CompletedAt: optionalTime(at),
				SetValues:   values,
				Notes:       notes,
			}
			if req.CompletedAt == nil {
				now := app.now()
				req.CompletedAt = &now
			}
			if len(values) == 0 {
				req.Sets = sets
				if req.Sets == 0 {
					req.Sets = e.TargetSets
				}
				req.Average = reps
				if e.Kind == domain.KindTimeBased {
					req.Average = duration
				}
				if req.Average == 0 {
					req.Average = e.ActiveTarget()
				}
			}
			if cmd.Flags().Changed("weight") {
				req.Weight = &weight
			}

			session, created, err := app.Sessions.Log(ctx, req)
			if err != nil {
				return err
			}

			verb := "Logged"
			if !created {
				verb = "Updated the day's session for"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s (%s)\n",
				verb, formatter.Bold(e.Name),
				formatter.FormatSets(session, e.Kind),
				formatter.FormatMeasure(e.Kind, analytics.SessionTotal(session, e.Kind)))
			return nil
		},
	}

	cmd.Flags().IntVar(&sets, "sets", 0, "Number of sets (without per-set values)")
	cmd.Flags().IntVar(&reps, "reps", 0, "Average reps per set")
	cmd.Flags().IntVar(&duration, "duration", 0, "Average seconds per set")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Load in kg")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	cmd.Flags().Var(newLocalTimeValue(&at), "at", "Completion time, YYYY-MM-DD[ HH:MM:SS] (default now)")

	return cmd
}

func parseSetValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("set value %q must be a non-negative number", a)
		}
		values = append(values, v)
	}
	return values, nil
}
