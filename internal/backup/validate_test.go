package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int           { return &i }
func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalFile() *File {
	return &File{
		Version: FormatVersion,
		Exercises: []ExerciseRecord{
			{Name: "Squats", Type: "REP_BASED", TargetSets: 3, TargetReps: ptrInt(10), TargetDaysPerWeek: 3},
		},
	}
}

func validFullFile() *File {
	return &File{
		Version:    FormatVersion,
		ExportedAt: "2024-06-10 18:00:00",
		Exercises: []ExerciseRecord{
			{
				Name: "Squats", Type: "rep", TargetSets: 3, TargetReps: ptrInt(12), TargetDaysPerWeek: 4,
				CreatedAt: "2024-05-01 09:00:00",
				Sessions: []SessionRecord{
					{CompletedAt: "2024-06-01 08:00:00", Sets: 3, Reps: ptrInt(10), SetsData: ptrStr("[10,10,10]"), TargetSets: ptrInt(3), TargetReps: ptrInt(10)},
					{CompletedAt: "2024-06-02 08:00:00", Sets: 2, Reps: ptrInt(11), Weight: ptrFloat(20), Notes: "heavy"},
				},
			},
			{
				Name: "Plank", Type: "TIME_BASED", TargetSets: 2, TargetDuration: ptrInt(45), TargetDaysPerWeek: 5, Archived: true,
				Sessions: []SessionRecord{
					{CompletedAt: "2024-06-01", Sets: 2, Duration: ptrInt(40)},
				},
			},
		},
		Workouts: []WorkoutRecord{
			{
				Name: "Morning", TargetDaysPerWeek: 3,
				Exercises: []WorkoutExerciseRecord{
					{Exercise: "squats", TargetSets: 2, TargetReps: ptrInt(8)},
					{Exercise: "Plank"},
				},
				Sessions: []WorkoutSessionRecord{{CompletedAt: "2024-06-01 08:30:00", Notes: "ok"}},
			},
		},
	}
}

func TestValidate_ValidMinimal(t *testing.T) {
	assert.Empty(t, Validate(validMinimalFile()))
}

func TestValidate_ValidFull(t *testing.T) {
	assert.Empty(t, Validate(validFullFile()))
}

func TestValidate_UnsupportedVersion(t *testing.T) {
	f := validMinimalFile()
	f.Version = 2

	errs := Validate(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "version")
}

func TestValidate_ExerciseErrorsAreCollected(t *testing.T) {
	f := &File{
		Version: FormatVersion,
		Exercises: []ExerciseRecord{
			{Name: "", Type: "jumping", TargetDaysPerWeek: 9},
		},
	}

	errs := Validate(f)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "exercises[0].name is required")
	assert.Contains(t, errs[1].Error(), "exercises[0].type")
	assert.Contains(t, errs[2].Error(), "targetDaysPerWeek")
}

func TestValidate_DuplicateExerciseNameIgnoresCase(t *testing.T) {
	f := validMinimalFile()
	f.Exercises = append(f.Exercises, ExerciseRecord{Name: " squats ", Type: "rep"})

	errs := Validate(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "used twice")
}

func TestValidate_Sessions(t *testing.T) {
	f := validMinimalFile()
	f.Exercises[0].Sessions = []SessionRecord{
		{CompletedAt: "2024-06-01 08:00:00", Sets: 3},
		{CompletedAt: "2024-06-01 19:00:00", Sets: 3},
		{CompletedAt: "yesterday", Sets: 0},
	}

	errs := Validate(f)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "second session on 2024-06-01")
	assert.Contains(t, errs[1].Error(), "sessions[2].completedAt")
	assert.Contains(t, errs[2].Error(), "sessions[2].sets must be at least 1")
}

func TestValidate_WorkoutReferences(t *testing.T) {
	f := validMinimalFile()
	f.Workouts = []WorkoutRecord{
		{Name: "A", Exercises: []WorkoutExerciseRecord{{Exercise: "Lunges"}}},
		{Name: "a", Sessions: []WorkoutSessionRecord{{CompletedAt: "not a date"}}},
	}

	errs := Validate(f)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), `unknown exercise "Lunges"`)
	assert.Contains(t, errs[1].Error(), "workouts[1].name")
	assert.Contains(t, errs[2].Error(), "workouts[1].sessions[0].completedAt")
}
