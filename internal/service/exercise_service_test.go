package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/alexanderramin/physio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestExerciseCreate_AppliesDefaults(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	now := freezeClock(t, "2025-06-01 08:00:00")
	svc := NewExerciseService(exercises)
	ctx := context.Background()

	rep := &domain.Exercise{Name: "  Squat  ", TargetDuration: 99}
	require.NoError(t, svc.Create(ctx, rep))
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "Squat", rep.Name)
	assert.Equal(t, domain.KindRepBased, rep.Kind)
	assert.Equal(t, 3, rep.TargetSets)
	assert.Equal(t, 10, rep.TargetReps)
	assert.Zero(t, rep.TargetDuration, "inactive target cleared")
	assert.Equal(t, 3, rep.TargetDaysPerWeek)
	assert.True(t, now.Equal(rep.CreatedAt))

	timed := &domain.Exercise{Name: "Plank", Kind: domain.KindTimeBased, TargetSets: 2}
	require.NoError(t, svc.Create(ctx, timed))
	assert.Equal(t, 30, timed.TargetDuration)
	assert.Equal(t, 2, timed.TargetSets)

	stored, err := exercises.GetByID(ctx, timed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindTimeBased, stored.Kind)
}

func TestExerciseCreate_ReportsEveryViolation(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)

	err := svc.Create(context.Background(), &domain.Exercise{
		Name:              " ",
		TargetSets:        -1,
		TargetDaysPerWeek: 9,
	})
	require.ErrorIs(t, err, domain.ErrInvalidExercise)
	assert.Len(t, multierr.Errors(err), 3)

	list, err := exercises.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExerciseUpdate_Partial(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)
	ctx := context.Background()

	e := &domain.Exercise{Name: "Bridge", Description: "glutes"}
	require.NoError(t, svc.Create(ctx, e))

	freezeClock(t, "2025-07-01 10:00:00")
	got, err := svc.Update(ctx, e.ID, ExerciseUpdate{
		TargetReps:        ptr(15),
		TargetDaysPerWeek: ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bridge", got.Name)
	assert.Equal(t, "glutes", got.Description)
	assert.Equal(t, 15, got.TargetReps)
	assert.Equal(t, 5, got.TargetDaysPerWeek)
	assert.Equal(t, "2025-07-01 10:00:00", domain.FormatLocalDateTime(got.UpdatedAt))

	stored, err := exercises.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, stored.TargetReps)
}

func TestExerciseUpdate_KindIsImmutable(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)
	ctx := context.Background()

	e := &domain.Exercise{Name: "Squat"}
	require.NoError(t, svc.Create(ctx, e))

	_, err := svc.Update(ctx, e.ID, ExerciseUpdate{Kind: ptr(domain.KindTimeBased)})
	require.ErrorIs(t, err, ErrKindImmutable)

	_, err = svc.Update(ctx, e.ID, ExerciseUpdate{Kind: ptr(domain.KindRepBased), Name: ptr("Deep squat")})
	require.NoError(t, err, "restating the same kind is allowed")
}

func TestExerciseUpdate_RejectsInvalidResult(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)
	ctx := context.Background()

	e := &domain.Exercise{Name: "Squat"}
	require.NoError(t, svc.Create(ctx, e))

	_, err := svc.Update(ctx, e.ID, ExerciseUpdate{TargetDaysPerWeek: ptr(0)})
	require.ErrorIs(t, err, domain.ErrInvalidExercise)

	stored, err := exercises.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.TargetDaysPerWeek)
}

func TestExerciseUpdate_NotFound(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)

	_, err := svc.Update(context.Background(), "missing", ExerciseUpdate{Name: ptr("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseArchiveCycle(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)
	ctx := context.Background()

	e := &domain.Exercise{Name: "Clamshell"}
	require.NoError(t, svc.Create(ctx, e))
	require.NoError(t, svc.Archive(ctx, e.ID))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.Unarchive(ctx, e.ID))
	got, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.Archived)
}

func TestExerciseDelete_RemovesSessions(t *testing.T) {
	exercises, sessions, _, _ := setupRepos(t)
	svc := NewExerciseService(exercises)
	ctx := context.Background()

	e := testutil.NewTestExercise("Bridge")
	require.NoError(t, exercises.Create(ctx, e))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(e.ID, "2025-06-01 09:00:00", testutil.WithReps(3, 10))))

	require.NoError(t, svc.Delete(ctx, e.ID))

	left, err := sessions.ListByExercise(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.ErrorIs(t, svc.Delete(ctx, e.ID), repository.ErrNotFound)
}

func TestExerciseService_ReportsUseCases(t *testing.T) {
	exercises, _, _, _ := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewExerciseService(exercises, obs)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.Exercise{Name: "Squat"}))
	ev := obs.last()
	assert.Equal(t, "exercise.create", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "Squat", ev.Fields["name"])

	require.Error(t, svc.Archive(ctx, "missing"))
	ev = obs.last()
	assert.Equal(t, "exercise.archive", ev.Name)
	assert.False(t, ev.Success)
	assert.ErrorIs(t, ev.Err, repository.ErrNotFound)
}
