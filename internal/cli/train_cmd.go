package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

func newTrainCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "train EXERCISE",
		Short: "Count reps or time holds set by set, then log the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !app.interactive() {
				return fmt.Errorf("train needs an interactive terminal; use `physio log` instead")
			}
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}

			model := newTrainModel(e, trainSaver(ctx, app, e, notes))
			final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(trainModel); ok && m.saved == nil && len(m.sets) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Discarded %d unsaved sets.\n", len(m.sets))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")

	return cmd
}

func trainSaver(ctx context.Context, app *App, e *domain.Exercise, notes string) saveSetsFunc {
	return func(values []float64) (*domain.ExerciseSession, bool, error) {
		now := app.now()
		return app.Sessions.Log(ctx, service.LogSessionRequest{
			ExerciseID:  e.ID,
			CompletedAt: &now,
			SetValues:   values,
			Notes:       notes,
		})
	}
}
