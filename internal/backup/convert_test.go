package backup

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importedAt = time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)

func TestConvert_MinimalFile(t *testing.T) {
	ds, err := Convert(validMinimalFile(), importedAt)
	require.NoError(t, err)

	require.Len(t, ds.Exercises, 1)
	e := ds.Exercises[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Squats", e.Name)
	assert.Equal(t, domain.KindRepBased, e.Kind)
	assert.Equal(t, 10, e.TargetReps)
	assert.Equal(t, importedAt, e.CreatedAt)
	assert.Empty(t, ds.Sessions)
	assert.Empty(t, ds.Workouts)
}

func TestConvert_FullFile(t *testing.T) {
	ds, err := Convert(validFullFile(), importedAt)
	require.NoError(t, err)

	require.Len(t, ds.Exercises, 2)
	squats, plank := ds.Exercises[0], ds.Exercises[1]
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), squats.CreatedAt)
	assert.Equal(t, domain.KindTimeBased, plank.Kind)
	assert.True(t, plank.Archived)
	assert.Equal(t, 45, plank.TargetDuration)

	require.Len(t, ds.Sessions, 3)
	first := ds.Sessions[0]
	assert.Equal(t, squats.ID, first.ExerciseID)
	assert.Equal(t, "[10,10,10]", first.SetsData)
	assert.Equal(t, 10, first.Reps)
	assert.True(t, first.HasSnapshot())
	assert.Equal(t, 10, first.TargetReps)

	second := ds.Sessions[1]
	assert.False(t, second.HasSnapshot())
	assert.Empty(t, second.SetsData)
	require.NotNil(t, second.Weight)
	assert.InDelta(t, 20.0, *second.Weight, 1e-9)
	assert.Equal(t, "heavy", second.Notes)

	third := ds.Sessions[2]
	assert.Equal(t, plank.ID, third.ExerciseID)
	assert.Equal(t, 40, third.Duration)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), third.CompletedAt)

	require.Len(t, ds.Workouts, 1)
	w := ds.Workouts[0]
	require.Len(t, w.Exercises, 2)
	assert.Equal(t, squats.ID, w.Exercises[0].ExerciseID)
	assert.Equal(t, 2, w.Exercises[0].TargetSets)
	assert.Equal(t, 8, w.Exercises[0].TargetReps)
	assert.Equal(t, plank.ID, w.Exercises[1].ExerciseID)
	assert.Equal(t, domain.DefaultTargetSets, w.Exercises[1].TargetSets)
	assert.Equal(t, 1, w.Exercises[1].OrderIndex)

	require.Len(t, ds.WorkoutSessions, 1)
	assert.Equal(t, w.ID, ds.WorkoutSessions[0].WorkoutID)
	assert.Equal(t, "ok", ds.WorkoutSessions[0].Notes)
}

func TestConvert_AppliesExerciseDefaults(t *testing.T) {
	f := &File{
		Version:   FormatVersion,
		Exercises: []ExerciseRecord{{Name: "Wall sit", Type: "time", TargetReps: ptrInt(12)}},
	}

	ds, err := Convert(f, importedAt)
	require.NoError(t, err)

	e := ds.Exercises[0]
	assert.Equal(t, domain.DefaultTargetSets, e.TargetSets)
	assert.Equal(t, domain.DefaultTargetDuration, e.TargetDuration)
	assert.Equal(t, domain.DefaultTargetDaysPerWeek, e.TargetDaysPerWeek)
	assert.Zero(t, e.TargetReps, "target for the other kind is cleared")
}

func TestConvert_UnknownWorkoutMember(t *testing.T) {
	f := validMinimalFile()
	f.Workouts = []WorkoutRecord{{Name: "A", Exercises: []WorkoutExerciseRecord{{Exercise: "Lunges"}}}}

	_, err := Convert(f, importedAt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exercise")
}

func TestBuild_ConvertsBackWithoutLoss(t *testing.T) {
	original := validFullFile()
	ds, err := Convert(original, importedAt)
	require.NoError(t, err)

	sessions := map[string][]*domain.ExerciseSession{}
	for _, s := range ds.Sessions {
		sessions[s.ExerciseID] = append(sessions[s.ExerciseID], s)
	}
	workoutSessions := map[string][]*domain.WorkoutSession{}
	for _, s := range ds.WorkoutSessions {
		workoutSessions[s.WorkoutID] = append(workoutSessions[s.WorkoutID], s)
	}

	built := Build(ds.Exercises, sessions, ds.Workouts, workoutSessions, importedAt)

	assert.Equal(t, FormatVersion, built.Version)
	assert.Equal(t, "2024-06-10 18:00:00", built.ExportedAt)
	assert.Empty(t, Validate(built))

	require.Len(t, built.Exercises, 2)
	assert.Equal(t, "REP_BASED", built.Exercises[0].Type)
	assert.Equal(t, "2024-05-01 09:00:00", built.Exercises[0].CreatedAt)
	require.Len(t, built.Exercises[0].Sessions, 2)
	assert.Equal(t, ptrStr("[10,10,10]"), built.Exercises[0].Sessions[0].SetsData)
	assert.Nil(t, built.Exercises[0].Sessions[1].TargetSets)
	assert.Nil(t, built.Exercises[1].TargetReps)

	require.Len(t, built.Workouts, 1)
	assert.Equal(t, "Squats", built.Workouts[0].Exercises[0].Exercise)
	assert.Equal(t, "Plank", built.Workouts[0].Exercises[1].Exercise)
	assert.Equal(t, "2024-06-01 08:30:00", built.Workouts[0].Sessions[0].CompletedAt)
}

func TestWriteAndLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, validFullFile()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Contains(t, raw, "exercises")
	assert.Contains(t, raw, "workouts")

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, validFullFile(), loaded)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing backup file")
}
