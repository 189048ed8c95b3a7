package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory database that lives for the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// InsertExercise writes e straight to the exercises table, bypassing
// service defaults and validation.
func InsertExercise(t *testing.T, conn db.DBTX, e *domain.Exercise) {
	t.Helper()
	archived := 0
	if e.Archived {
		archived = 1
	}
	_, err := conn.ExecContext(context.Background(),
		`INSERT INTO exercises (id, name, description, kind, target_sets, target_reps, target_duration,
			target_days_per_week, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Description, string(e.Kind), e.TargetSets, e.TargetReps, e.TargetDuration,
		e.TargetDaysPerWeek, archived, domain.FormatLocalDateTime(e.CreatedAt), domain.FormatLocalDateTime(e.UpdatedAt),
	)
	require.NoError(t, err, "inserting exercise %s", e.Name)
}
