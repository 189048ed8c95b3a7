package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show weekly adherence for every exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			rows, err := app.Progress.Overview(cmd.Context(), all, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(rows, now))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived exercises")

	return cmd
}

func newBestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "best EXERCISE",
		Short: "Show the best single set ever recorded",
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
			if best.Value == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no sets recorded yet.\n", e.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: best set %s across %d sessions\n",
				formatter.Bold(e.Name), formatter.FormatMeasure(e.Kind, *best.Value), best.TotalSessions)
			return nil
		},
	}
}
