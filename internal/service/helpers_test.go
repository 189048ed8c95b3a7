package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/alexanderramin/physio/internal/testutil"
)

func setupRepos(t *testing.T) (
	repository.ExerciseRepo,
	repository.SessionRepo,
	repository.WorkoutRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteExerciseRepo(database),
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteWorkoutRepo(database),
		testutil.NewTestUoW(database)
}

// freezeClock pins wallNow for the duration of the test.
func freezeClock(t *testing.T, at string) time.Time {
	t.Helper()
	fixed := testutil.MustLocal(at)
	prev := wallNow
	wallNow = func() time.Time { return fixed }
	t.Cleanup(func() { wallNow = prev })
	return fixed
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func ptr[T any](v T) *T { return &v }
