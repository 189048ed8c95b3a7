package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
)

const sessionColumns = `id, exercise_id, completed_at, sets, reps, duration, weight, notes, sets_data,
	target_sets, target_reps, target_duration`

// SQLiteSessionRepo stores exercise sessions.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.ExerciseSession) error {
	query := `INSERT INTO exercise_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ExerciseID,
		formatLocal(s.CompletedAt),
		s.Sets,
		zeroIntToNull(s.Reps),
		zeroIntToNull(s.Duration),
		nullableFloatToValue(s.Weight),
		s.Notes,
		emptyStringToNull(s.SetsData),
		zeroIntToNull(s.TargetSets),
		zeroIntToNull(s.TargetReps),
		zeroIntToNull(s.TargetDuration),
	)
	if err != nil {
		return fmt.Errorf("inserting exercise session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.ExerciseSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM exercise_sessions WHERE id = ?`
	return scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) ListByExercise(ctx context.Context, exerciseID string) ([]*domain.ExerciseSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM exercise_sessions
		WHERE exercise_id = ? ORDER BY completed_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by exercise: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.ExerciseSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// GetForDay compares the canonical text form directly; it sorts the same as
// the wall-clock instant it encodes.
func (r *SQLiteSessionRepo) GetForDay(ctx context.Context, exerciseID string, day time.Time) (*domain.ExerciseSession, error) {
	start := domain.StartOfDay(day)
	end := start.AddDate(0, 0, 1)
	query := `SELECT ` + sessionColumns + ` FROM exercise_sessions
		WHERE exercise_id = ? AND completed_at >= ? AND completed_at < ?
		ORDER BY completed_at, rowid LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, exerciseID, formatLocal(start), formatLocal(end))
	return scanSession(row)
}

// Update rewrites the measured fields. The target snapshot is left as first
// recorded.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.ExerciseSession) error {
	query := `UPDATE exercise_sessions SET completed_at = ?, sets = ?, reps = ?, duration = ?,
		weight = ?, notes = ?, sets_data = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		formatLocal(s.CompletedAt),
		s.Sets,
		zeroIntToNull(s.Reps),
		zeroIntToNull(s.Duration),
		nullableFloatToValue(s.Weight),
		s.Notes,
		emptyStringToNull(s.SetsData),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating exercise session: %w", err)
	}
	return requireAffected("exercise session", res)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercise_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise session: %w", err)
	}
	return requireAffected("exercise session", res)
}

func scanSession(row rowScanner) (*domain.ExerciseSession, error) {
	var (
		s                                 domain.ExerciseSession
		completedAt                       string
		reps, duration                    sql.NullInt64
		weight                            sql.NullFloat64
		setsData                          sql.NullString
		targetSets, targetReps, targetDur sql.NullInt64
	)
	err := row.Scan(
		&s.ID, &s.ExerciseID, &completedAt, &s.Sets, &reps, &duration, &weight, &s.Notes, &setsData,
		&targetSets, &targetReps, &targetDur,
	)
	if err != nil {
		return nil, notFoundOr("exercise session", err)
	}

	if s.CompletedAt, err = parseLocal("completed_at", completedAt); err != nil {
		return nil, err
	}
	s.Reps = int(reps.Int64)
	s.Duration = int(duration.Int64)
	s.Weight = nullFloatPtr(weight)
	s.SetsData = setsData.String
	s.TargetSets = int(targetSets.Int64)
	s.TargetReps = int(targetReps.Int64)
	s.TargetDuration = int(targetDur.Int64)
	return &s, nil
}
