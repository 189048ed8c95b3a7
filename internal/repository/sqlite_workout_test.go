package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	exercises := NewSQLiteExerciseRepo(db)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	squat := testutil.NewTestExercise("Squat")
	plank := testutil.NewTestExercise("Plank", testutil.WithKind(domain.KindTimeBased))
	require.NoError(t, exercises.Create(ctx, squat))
	require.NoError(t, exercises.Create(ctx, plank))

	w := testutil.NewTestWorkout("Morning", plank.ID, squat.ID)
	w.Exercises[0].TargetDuration = 40
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning", got.Name)
	require.Len(t, got.Exercises, 2)
	assert.Equal(t, plank.ID, got.Exercises[0].ExerciseID)
	assert.Equal(t, 40, got.Exercises[0].TargetDuration)
	assert.Equal(t, squat.ID, got.Exercises[1].ExerciseID)
	assert.Equal(t, 1, got.Exercises[1].OrderIndex)
}

func TestWorkoutRepo_ListAndUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	exercises := NewSQLiteExerciseRepo(db)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	a := testutil.NewTestExercise("A")
	b := testutil.NewTestExercise("B")
	require.NoError(t, exercises.Create(ctx, a))
	require.NoError(t, exercises.Create(ctx, b))

	w1 := testutil.NewTestWorkout("Evening", a.ID)
	w2 := testutil.NewTestWorkout("Daily", a.ID, b.ID)
	require.NoError(t, repo.Create(ctx, w1))
	require.NoError(t, repo.Create(ctx, w2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Daily", list[0].Name)
	assert.Len(t, list[0].Exercises, 2)
	assert.Len(t, list[1].Exercises, 1)

	w1.Name = "Late evening"
	w1.Exercises = []domain.WorkoutExercise{{ExerciseID: b.ID, TargetSets: 2}}
	require.NoError(t, repo.Update(ctx, w1))

	got, err := repo.GetByID(ctx, w1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Late evening", got.Name)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, b.ID, got.Exercises[0].ExerciseID)
}

func TestWorkoutRepo_Sessions(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	w := testutil.NewTestWorkout("Rehab")
	require.NoError(t, repo.Create(ctx, w))

	for i, at := range []string{"2025-06-12 18:00:00", "2025-06-10 18:00:00"} {
		require.NoError(t, repo.AddSession(ctx, &domain.WorkoutSession{
			ID:          w.ID + "-" + string(rune('a'+i)),
			WorkoutID:   w.ID,
			CompletedAt: testutil.MustLocal(at),
		}))
	}

	sessions, err := repo.ListSessions(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "2025-06-10", domain.DateKey(sessions[0].CompletedAt))

	require.NoError(t, repo.Delete(ctx, w.ID))
	sessions, err = repo.ListSessions(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions, "sessions cascade with the workout")

	_, err = repo.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkoutRepo_DeletingExerciseDropsMembership(t *testing.T) {
	db := testutil.NewTestDB(t)
	exercises := NewSQLiteExerciseRepo(db)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	a := testutil.NewTestExercise("A")
	require.NoError(t, exercises.Create(ctx, a))
	w := testutil.NewTestWorkout("Solo", a.ID)
	require.NoError(t, repo.Create(ctx, w))

	require.NoError(t, exercises.Delete(ctx, a.ID))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Exercises)
}
