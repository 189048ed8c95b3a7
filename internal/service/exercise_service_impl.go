package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/google/uuid"
)

type exerciseService struct {
	exercises repository.ExerciseRepo
	observer  UseCaseObserver
}

func NewExerciseService(exercises repository.ExerciseRepo, observers ...UseCaseObserver) ExerciseService {
	return &exerciseService{exercises: exercises, observer: useCaseObserverOrNoop(observers)}
}

func (s *exerciseService) Create(ctx context.Context, e *domain.Exercise) (err error) {
	ctx, finish := useCase(ctx, s.observer, "exercise.create", map[string]any{"name": e.Name})
	defer func() { finish(err) }()

	e.ApplyDefaults()
	e.Normalize()
	if err = e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := wallNow()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.exercises.Create(ctx, e)
}

func (s *exerciseService) Get(ctx context.Context, id string) (*domain.Exercise, error) {
	return s.exercises.GetByID(ctx, id)
}

func (s *exerciseService) List(ctx context.Context, includeArchived bool) ([]*domain.Exercise, error) {
	return s.exercises.List(ctx, includeArchived)
}

func (s *exerciseService) Update(ctx context.Context, id string, upd ExerciseUpdate) (e *domain.Exercise, err error) {
	ctx, finish := useCase(ctx, s.observer, "exercise.update", map[string]any{"exercise_id": id})
	defer func() { finish(err) }()

	e, err = s.exercises.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Kind != nil && *upd.Kind != e.Kind {
		return nil, fmt.Errorf("%w: %s to %s", ErrKindImmutable, e.Kind, *upd.Kind)
	}

	e.Name = domain.ValueOr(e.Name, upd.Name)
	e.Description = domain.ValueOr(e.Description, upd.Description)
	e.TargetSets = domain.ValueOr(e.TargetSets, upd.TargetSets)
	e.TargetReps = domain.ValueOr(e.TargetReps, upd.TargetReps)
	e.TargetDuration = domain.ValueOr(e.TargetDuration, upd.TargetDuration)
	e.TargetDaysPerWeek = domain.ValueOr(e.TargetDaysPerWeek, upd.TargetDaysPerWeek)
	e.Archived = domain.ValueOr(e.Archived, upd.Archived)
	e.Normalize()
	if err = e.Validate(); err != nil {
		return nil, err
	}
	e.UpdatedAt = wallNow()
	if err = s.exercises.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *exerciseService) Archive(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "exercise.archive", map[string]any{"exercise_id": id})
	defer func() { finish(err) }()
	return s.exercises.Archive(ctx, id, wallNow())
}

func (s *exerciseService) Unarchive(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "exercise.unarchive", map[string]any{"exercise_id": id})
	defer func() { finish(err) }()
	return s.exercises.Unarchive(ctx, id, wallNow())
}

// Delete removes the exercise together with its sessions.
func (s *exerciseService) Delete(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "exercise.delete", map[string]any{"exercise_id": id})
	defer func() { finish(err) }()
	return s.exercises.Delete(ctx, id)
}
