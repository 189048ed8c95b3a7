package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every statement in order. Statements are idempotent, so
// the full list runs on each start; ALTER TABLE additions that already exist
// are skipped.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		kind                 TEXT NOT NULL DEFAULT 'REP_BASED'
		                     CHECK(kind IN ('REP_BASED','TIME_BASED')),
		target_sets          INTEGER NOT NULL DEFAULT 3,
		target_reps          INTEGER,
		target_duration      INTEGER,
		target_days_per_week INTEGER NOT NULL DEFAULT 3,
		archived             INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_sessions (
		id           TEXT PRIMARY KEY,
		exercise_id  TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		completed_at TEXT NOT NULL,
		sets         INTEGER NOT NULL DEFAULT 0,
		reps         INTEGER,
		duration     INTEGER,
		weight       REAL,
		notes        TEXT NOT NULL DEFAULT '',
		sets_data    TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercise_sessions_exercise ON exercise_sessions(exercise_id, completed_at)`,

	// Target snapshots arrived after the first schema; older rows keep NULL.
	`ALTER TABLE exercise_sessions ADD COLUMN target_sets INTEGER`,
	`ALTER TABLE exercise_sessions ADD COLUMN target_reps INTEGER`,
	`ALTER TABLE exercise_sessions ADD COLUMN target_duration INTEGER`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		target_days_per_week INTEGER NOT NULL DEFAULT 3,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workout_exercises (
		workout_id      TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		exercise_id     TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		target_sets     INTEGER NOT NULL DEFAULT 3,
		target_reps     INTEGER,
		target_duration INTEGER,
		order_index     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (workout_id, exercise_id)
	)`,

	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id           TEXT PRIMARY KEY,
		workout_id   TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		completed_at TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_sessions_workout ON workout_sessions(workout_id, completed_at)`,
}
