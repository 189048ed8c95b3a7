package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions  repository.SessionRepo
	exercises repository.ExerciseRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	exercises repository.ExerciseRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions:  sessions,
		exercises: exercises,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Log(ctx context.Context, req LogSessionRequest) (session *domain.ExerciseSession, created bool, err error) {
	fields := map[string]any{"exercise_id": req.ExerciseID}
	ctx, finish := useCase(ctx, s.observer, "session.log", fields)
	defer func() { finish(err) }()

	completedAt := wallNow()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txExercises := repository.NewSQLiteExerciseRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		exercise, err := txExercises.GetByID(ctx, req.ExerciseID)
		if err != nil {
			return err
		}

		existing, err := txSessions.GetForDay(ctx, exercise.ID, completedAt)
		switch {
		case err == nil:
			session = existing
		case errors.Is(err, repository.ErrNotFound):
			session = &domain.ExerciseSession{
				ID:         uuid.New().String(),
				ExerciseID: exercise.ID,
			}
			session.SnapshotTargets(exercise)
			created = true
		default:
			return err
		}

		session.CompletedAt = completedAt
		session.Weight = req.Weight
		session.Notes = req.Notes
		if err := recordMeasurements(session, exercise.Kind, req.SetValues, req.Sets, req.Average); err != nil {
			return err
		}

		if created {
			return txSessions.Create(ctx, session)
		}
		return txSessions.Update(ctx, session)
	})
	if err != nil {
		return nil, false, err
	}
	fields["session_id"] = session.ID
	fields["created"] = created
	return session, created, nil
}

func recordMeasurements(session *domain.ExerciseSession, kind domain.ExerciseKind, values []float64, sets, average int) error {
	if len(values) > 0 {
		return session.RecordSets(kind, values)
	}
	return session.RecordAverage(kind, sets, average)
}

func (s *sessionService) Today(ctx context.Context, exerciseID string, day time.Time) (*domain.ExerciseSession, error) {
	if _, err := s.exercises.GetByID(ctx, exerciseID); err != nil {
		return nil, err
	}
	session, err := s.sessions.GetForDay(ctx, exerciseID, day)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return session, err
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.ExerciseSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context, exerciseID string) ([]*domain.ExerciseSession, error) {
	if _, err := s.exercises.GetByID(ctx, exerciseID); err != nil {
		return nil, err
	}
	return s.sessions.ListByExercise(ctx, exerciseID)
}

func (s *sessionService) Update(ctx context.Context, id string, upd SessionUpdate) (session *domain.ExerciseSession, err error) {
	ctx, finish := useCase(ctx, s.observer, "session.update", map[string]any{"session_id": id})
	defer func() { finish(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		found, err := txSessions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		exercise, err := repository.NewSQLiteExerciseRepo(tx).GetByID(ctx, found.ExerciseID)
		if err != nil {
			return err
		}
		session = found

		session.CompletedAt = domain.ValueOr(session.CompletedAt, upd.CompletedAt)
		session.Notes = domain.ValueOr(session.Notes, upd.Notes)
		switch {
		case upd.ClearWeight:
			session.Weight = nil
		case upd.Weight != nil:
			session.Weight = upd.Weight
		}
		if upd.SetValues != nil || upd.Sets != nil || upd.Average != nil {
			sets := domain.ValueOr(session.Sets, upd.Sets)
			avg := domain.ValueOr(session.Average(exercise.Kind), upd.Average)
			if err := recordMeasurements(session, exercise.Kind, upd.SetValues, sets, avg); err != nil {
				return err
			}
		}
		return txSessions.Update(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "session.delete", map[string]any{"session_id": id})
	defer func() { finish(err) }()
	return s.sessions.Delete(ctx, id)
}
