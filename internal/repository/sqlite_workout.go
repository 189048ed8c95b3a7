package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
)

// SQLiteWorkoutRepo stores workouts, their member exercises and the
// sessions logged against them. Multi-row writes should run inside a
// UnitOfWork so a workout is never stored without its members.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

func (r *SQLiteWorkoutRepo) Create(ctx context.Context, w *domain.Workout) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workouts (id, name, description, target_days_per_week, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Description, w.TargetDaysPerWeek,
		formatLocal(w.CreatedAt), formatLocal(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return r.insertExercises(ctx, w)
}

func (r *SQLiteWorkoutRepo) insertExercises(ctx context.Context, w *domain.Workout) error {
	for _, we := range w.Exercises {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO workout_exercises (workout_id, exercise_id, target_sets, target_reps, target_duration, order_index)
			VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID, we.ExerciseID, we.TargetSets,
			zeroIntToNull(we.TargetReps), zeroIntToNull(we.TargetDuration), we.OrderIndex,
		)
		if err != nil {
			return fmt.Errorf("inserting workout exercise %s: %w", we.ExerciseID, err)
		}
	}
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, target_days_per_week, created_at, updated_at
		FROM workouts WHERE id = ?`, id)
	w, err := scanWorkout(row)
	if err != nil {
		return nil, err
	}
	if w.Exercises, err = r.listExercises(ctx, w.ID); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWorkoutRepo) List(ctx context.Context) ([]*domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, target_days_per_week, created_at, updated_at
		FROM workouts ORDER BY name COLLATE NOCASE, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}

	var workouts []*domain.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	// Close before issuing member queries; a pinned single connection
	// cannot serve a second statement while rows are open.
	rows.Close()

	for _, w := range workouts {
		if w.Exercises, err = r.listExercises(ctx, w.ID); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

func (r *SQLiteWorkoutRepo) Update(ctx context.Context, w *domain.Workout) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE workouts SET name = ?, description = ?, target_days_per_week = ?, updated_at = ?
		WHERE id = ?`,
		w.Name, w.Description, w.TargetDaysPerWeek, formatLocal(w.UpdatedAt), w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}
	if err := requireAffected("workout", res); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workout_exercises WHERE workout_id = ?`, w.ID); err != nil {
		return fmt.Errorf("clearing workout exercises: %w", err)
	}
	return r.insertExercises(ctx, w)
}

func (r *SQLiteWorkoutRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	return requireAffected("workout", res)
}

func (r *SQLiteWorkoutRepo) AddSession(ctx context.Context, s *domain.WorkoutSession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workout_sessions (id, workout_id, completed_at, notes) VALUES (?, ?, ?, ?)`,
		s.ID, s.WorkoutID, formatLocal(s.CompletedAt), s.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting workout session: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) ListSessions(ctx context.Context, workoutID string) ([]*domain.WorkoutSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, workout_id, completed_at, notes FROM workout_sessions
		WHERE workout_id = ? ORDER BY completed_at, rowid`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing workout sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkoutSession
	for rows.Next() {
		var s domain.WorkoutSession
		var completedAt string
		if err := rows.Scan(&s.ID, &s.WorkoutID, &completedAt, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout session row: %w", err)
		}
		if s.CompletedAt, err = parseLocal("completed_at", completedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteWorkoutRepo) listExercises(ctx context.Context, workoutID string) ([]domain.WorkoutExercise, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT exercise_id, target_sets, target_reps, target_duration, order_index
		FROM workout_exercises WHERE workout_id = ? ORDER BY order_index`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing workout exercises: %w", err)
	}
	defer rows.Close()

	var members []domain.WorkoutExercise
	for rows.Next() {
		var we domain.WorkoutExercise
		var reps, duration sql.NullInt64
		if err := rows.Scan(&we.ExerciseID, &we.TargetSets, &reps, &duration, &we.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning workout exercise row: %w", err)
		}
		we.TargetReps = int(reps.Int64)
		we.TargetDuration = int(duration.Int64)
		members = append(members, we)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout exercises: %w", err)
	}
	return members, nil
}

func scanWorkout(row rowScanner) (*domain.Workout, error) {
	var w domain.Workout
	var createdAt, updatedAt string
	err := row.Scan(&w.ID, &w.Name, &w.Description, &w.TargetDaysPerWeek, &createdAt, &updatedAt)
	if err != nil {
		return nil, notFoundOr("workout", err)
	}
	if w.CreatedAt, err = parseLocal("created_at", createdAt); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseLocal("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
