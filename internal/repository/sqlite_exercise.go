package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
)

const exerciseColumns = `id, name, description, kind, target_sets, target_reps, target_duration,
	target_days_per_week, archived, created_at, updated_at`

type SQLiteExerciseRepo struct {
	db db.DBTX
}

func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) Create(ctx context.Context, e *domain.Exercise) error {
	query := `INSERT INTO exercises (` + exerciseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.Description,
		string(e.Kind),
		e.TargetSets,
		zeroIntToNull(e.TargetReps),
		zeroIntToNull(e.TargetDuration),
		e.TargetDaysPerWeek,
		boolToInt(e.Archived),
		formatLocal(e.CreatedAt),
		formatLocal(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	return nil
}

func (r *SQLiteExerciseRepo) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ?`
	return r.scanExercise(r.db.QueryRowContext(ctx, query, id))
}

// List returns exercises ordered by name.
func (r *SQLiteExerciseRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY name COLLATE NOCASE, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		e, err := r.scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}

func (r *SQLiteExerciseRepo) Update(ctx context.Context, e *domain.Exercise) error {
	query := `UPDATE exercises SET name = ?, description = ?, kind = ?, target_sets = ?,
		target_reps = ?, target_duration = ?, target_days_per_week = ?, archived = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.Description,
		string(e.Kind),
		e.TargetSets,
		zeroIntToNull(e.TargetReps),
		zeroIntToNull(e.TargetDuration),
		e.TargetDaysPerWeek,
		boolToInt(e.Archived),
		formatLocal(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating exercise: %w", err)
	}
	return requireAffected("exercise", res)
}

func (r *SQLiteExerciseRepo) Archive(ctx context.Context, id string, at time.Time) error {
	return r.setArchived(ctx, id, true, at)
}

func (r *SQLiteExerciseRepo) Unarchive(ctx context.Context, id string, at time.Time) error {
	return r.setArchived(ctx, id, false, at)
}

func (r *SQLiteExerciseRepo) setArchived(ctx context.Context, id string, archived bool, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE exercises SET archived = ?, updated_at = ? WHERE id = ?`,
		boolToInt(archived), formatLocal(at), id)
	if err != nil {
		return fmt.Errorf("setting exercise archived=%t: %w", archived, err)
	}
	return requireAffected("exercise", res)
}

// Delete removes the exercise. Its sessions and workout memberships go with it.
func (r *SQLiteExerciseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	return requireAffected("exercise", res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteExerciseRepo) scanExercise(row rowScanner) (*domain.Exercise, error) {
	var (
		e                    domain.Exercise
		kind                 string
		reps, duration       sql.NullInt64
		archived             int
		createdAt, updatedAt string
	)
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &kind, &e.TargetSets, &reps, &duration,
		&e.TargetDaysPerWeek, &archived, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, notFoundOr("exercise", err)
	}

	e.Kind = domain.ExerciseKind(kind)
	e.TargetReps = int(reps.Int64)
	e.TargetDuration = int(duration.Int64)
	e.Archived = intToBool(archived)
	if e.CreatedAt, err = parseLocal("created_at", createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseLocal("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
