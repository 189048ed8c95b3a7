package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/testutil"
)

func TestRenderHistory(t *testing.T) {
	exercise := testutil.NewTestExercise("Plank", testutil.WithKind(domain.KindTimeBased), testutil.WithDaysPerWeek(2))
	sessions := []*domain.ExerciseSession{
		testutil.NewTestSession(exercise.ID, "2024-06-09 08:00:00",
			testutil.WithSetValues(30, 30, 30), testutil.WithSnapshot(3, 0, 30)),
		testutil.NewTestSession(exercise.ID, "2024-06-10 08:00:00",
			testutil.WithSetValues(40, 40, 40), testutil.WithSnapshot(3, 0, 30)),
	}
	history := analytics.BuildHistory(exercise, sessions, 7, testutil.MustLocal("2024-06-10 00:00:00"))

	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, "Plank history", history, domain.KindTimeBased))

	out := buf.String()
	assert.Contains(t, out, "Plank history")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Goal")
	assert.Contains(t, out, "Seconds per day")
	assert.Contains(t, out, colorOnTrack)
	assert.Contains(t, out, "06-10")
}

func TestRenderHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, "Nothing yet", analytics.History{MaxValue: 1}, domain.KindRepBased))
	assert.Contains(t, buf.String(), "Reps per day")
}
