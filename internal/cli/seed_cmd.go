package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

const (
	seedRaisedDays   = 15
	seedRaiseFactor  = 1.3
	seedAttendancePc = 60
)

func newSeedCmd(app *App) *cobra.Command {
	var days int
	var seed int64
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate demo history for every active exercise",
		Long: "Generate demo history for every active exercise. Targets recorded with the\n" +
			"most recent 15 days of sessions are 30% above the exercise's current\n" +
			"targets, so history charts show a raised goal line. Days that already have a\n" +
			"session are left alone; pass --reset to regenerate them too.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			ctx := cmd.Context()
			exercises, err := app.Exercises.List(ctx, false)
			if err != nil {
				return err
			}
			if len(exercises) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No exercises found. Add some with `physio exercise add` first.")
				return nil
			}

			s := &seeder{app: app, faker: gofakeit.New(seed), out: cmd.OutOrStdout()}
			for _, e := range exercises {
				if reset {
					if err := s.clear(ctx, e); err != nil {
						return err
					}
				}
				if err := s.seedExercise(ctx, e, days); err != nil {
					return fmt.Errorf("seeding %s: %w", e.Name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Number of days of history to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().BoolVar(&reset, "reset", false, "Delete existing sessions of each exercise first")

	return cmd
}

type seeder struct {
	app   *App
	faker *gofakeit.Faker
	out   io.Writer
}

func (s *seeder) clear(ctx context.Context, e *domain.Exercise) error {
	sessions, err := s.app.Sessions.List(ctx, e.ID)
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		if err := s.app.Sessions.Delete(ctx, sess.ID); err != nil {
			return err
		}
	}
	return nil
}

// seedExercise logs older days against the current targets, then raises the
// targets for the recent days so their snapshots carry the higher goal, and
// finally restores the exercise.
func (s *seeder) seedExercise(ctx context.Context, e *domain.Exercise, days int) (err error) {
	now := s.app.now()
	var older, recent []int
	skipped := 0
	for daysAgo := days - 1; daysAgo >= 0; daysAgo-- {
		if daysAgo > 0 && s.faker.Number(1, 100) > seedAttendancePc {
			continue
		}
		existing, err := s.app.Sessions.Today(ctx, e.ID, now.AddDate(0, 0, -daysAgo))
		if err != nil {
			return err
		}
		if existing != nil {
			skipped++
			continue
		}
		if daysAgo < seedRaisedDays {
			recent = append(recent, daysAgo)
		} else {
			older = append(older, daysAgo)
		}
	}

	base := e.ActiveTarget()
	for _, daysAgo := range older {
		if err := s.logDay(ctx, e, now.AddDate(0, 0, -daysAgo), base); err != nil {
			return err
		}
	}

	raised := int(math.Round(float64(base) * seedRaiseFactor))
	if err := s.setTarget(ctx, e, raised); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.setTarget(ctx, e, base))
	}()
	for _, daysAgo := range recent {
		if err := s.logDay(ctx, e, now.AddDate(0, 0, -daysAgo), raised); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.out, "%s: %d sessions over %d days", e.Name, len(older)+len(recent), days)
	if skipped > 0 {
		fmt.Fprintf(s.out, " (%d days already logged, left unchanged)", skipped)
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *seeder) setTarget(ctx context.Context, e *domain.Exercise, perSet int) error {
	upd := service.ExerciseUpdate{TargetReps: &perSet}
	if e.Kind == domain.KindTimeBased {
		upd = service.ExerciseUpdate{TargetDuration: &perSet}
	}
	_, err := s.app.Exercises.Update(ctx, e.ID, upd)
	return err
}

func (s *seeder) logDay(ctx context.Context, e *domain.Exercise, at time.Time, perSet int) error {
	sets := max(1, e.TargetSets-1+s.faker.Number(0, 1))
	values := make([]float64, sets)
	for i := range values {
		var v int
		if e.Kind == domain.KindTimeBased {
			v = perSet + s.faker.Number(-10, 20)
		} else {
			v = perSet + s.faker.Number(-2, 3)
		}
		values[i] = float64(max(1, v))
	}

	var notes string
	if s.faker.Number(1, 4) == 1 {
		notes = s.faker.Sentence(5)
	}
	_, _, err := s.app.Sessions.Log(ctx, service.LogSessionRequest{
		ExerciseID:  e.ID,
		CompletedAt: &at,
		SetValues:   values,
		Notes:       notes,
	})
	return err
}
