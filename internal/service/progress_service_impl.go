package service

import (
	"context"
	"time"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
	"go.opentelemetry.io/otel/attribute"
)

type progressService struct {
	exercises repository.ExerciseRepo
	sessions  repository.SessionRepo
}

// NewProgressService exposes the analytics over stored records. It is
// read-only and reports no use-case events.
func NewProgressService(exercises repository.ExerciseRepo, sessions repository.SessionRepo) ProgressService {
	return &progressService{exercises: exercises, sessions: sessions}
}

func (s *progressService) load(ctx context.Context, exerciseID string) (*domain.Exercise, []*domain.ExerciseSession, error) {
	exercise, err := s.exercises.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, nil, err
	}
	sessions, err := s.sessions.ListByExercise(ctx, exerciseID)
	if err != nil {
		return nil, nil, err
	}
	return exercise, sessions, nil
}

func (s *progressService) PersonalBest(ctx context.Context, exerciseID string) (*PersonalBest, error) {
	ctx, span := tracer.Start(ctx, "progress.personal_best")
	defer span.End()

	exercise, sessions, err := s.load(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	result := &PersonalBest{ExerciseID: exercise.ID, TotalSessions: len(sessions)}
	if best, ok := analytics.PersonalBest(exercise.Kind, sessions); ok {
		result.Value = &best
	}
	return result, nil
}

func (s *progressService) Weekly(ctx context.Context, exerciseID string, now time.Time) (*ExerciseProgress, error) {
	ctx, span := tracer.Start(ctx, "progress.weekly")
	defer span.End()

	exercise, sessions, err := s.load(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	return &ExerciseProgress{
		Exercise:  exercise,
		Adherence: analytics.ExerciseAdherence(exercise, sessions, now),
	}, nil
}

// History builds the daily series ending on referenceDay. A non-positive
// days uses the default window.
func (s *progressService) History(ctx context.Context, exerciseID string, days int, referenceDay time.Time) (*ExerciseHistory, error) {
	ctx, span := tracer.Start(ctx, "progress.history")
	defer span.End()

	if days <= 0 {
		days = analytics.DefaultSeriesWindow
	}
	span.SetAttributes(attribute.Int("days", days))

	exercise, sessions, err := s.load(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	return &ExerciseHistory{
		Exercise: exercise,
		History:  analytics.BuildHistory(exercise, sessions, days, referenceDay),
	}, nil
}

func (s *progressService) Overview(ctx context.Context, includeArchived bool, now time.Time) ([]ExerciseOverview, error) {
	ctx, span := tracer.Start(ctx, "progress.overview")
	defer span.End()

	exercises, err := s.exercises.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}
	rows := make([]ExerciseOverview, 0, len(exercises))
	for _, e := range exercises {
		sessions, err := s.sessions.ListByExercise(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		row := ExerciseOverview{
			Exercise:     e,
			Adherence:    analytics.ExerciseAdherence(e, sessions, now),
			SessionCount: len(sessions),
		}
		if best, ok := analytics.PersonalBest(e.Kind, sessions); ok {
			row.PersonalBest = &best
		}
		if n := len(sessions); n > 0 {
			last := sessions[n-1].CompletedAt
			row.LastSession = &last
		}
		rows = append(rows, row)
	}
	return rows, nil
}
