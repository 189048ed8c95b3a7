package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A database created before target snapshots existed must keep its sessions
// and gain the snapshot columns as NULL.
func TestMigrate_UpgradeAddsSnapshotColumns(t *testing.T) {
	db, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE exercises (
			id TEXT PRIMARY KEY, name TEXT NOT NULL, description TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL DEFAULT 'REP_BASED', target_sets INTEGER NOT NULL DEFAULT 3,
			target_reps INTEGER, target_duration INTEGER, target_days_per_week INTEGER NOT NULL DEFAULT 3,
			archived INTEGER NOT NULL DEFAULT 0, created_at TEXT NOT NULL, updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE exercise_sessions (
			id TEXT PRIMARY KEY, exercise_id TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
			completed_at TEXT NOT NULL, sets INTEGER NOT NULL DEFAULT 0, reps INTEGER, duration INTEGER,
			weight REAL, notes TEXT NOT NULL DEFAULT '', sets_data TEXT
		)`,
		`INSERT INTO exercises (id, name, target_reps, created_at, updated_at)
			VALUES ('e1', 'Bridge', 12, '2024-12-01 09:00:00', '2024-12-01 09:00:00')`,
		`INSERT INTO exercise_sessions (id, exercise_id, completed_at, sets, reps, sets_data)
			VALUES ('s1', 'e1', '2024-12-02 09:00:00', 3, 12, '[12,12,12]')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var setsData string
	var targetSets sql.NullInt64
	err = db.QueryRow(`SELECT sets_data, target_sets FROM exercise_sessions WHERE id = 's1'`).Scan(&setsData, &targetSets)
	require.NoError(t, err)
	assert.Equal(t, "[12,12,12]", setsData)
	assert.False(t, targetSets.Valid)
}
