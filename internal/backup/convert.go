package backup

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/google/uuid"
)

// Dataset is a backup converted to domain objects with fresh ids.
type Dataset struct {
	Exercises       []*domain.Exercise
	Sessions        []*domain.ExerciseSession
	Workouts        []*domain.Workout
	WorkoutSessions []*domain.WorkoutSession
}

// Convert turns a validated file into domain objects ready for persistence.
// Call Validate first; Convert assumes the file is well formed but still
// applies the domain validation to every exercise and workout.
func Convert(f *File, now time.Time) (*Dataset, error) {
	ds := &Dataset{}
	byName := make(map[string]string, len(f.Exercises)) // lower name -> id

	for i, rec := range f.Exercises {
		kind, err := domain.ParseExerciseKind(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("exercises[%d]: %w", i, err)
		}
		e := &domain.Exercise{
			ID:                uuid.New().String(),
			Name:              rec.Name,
			Description:       rec.Description,
			Kind:              kind,
			TargetSets:        rec.TargetSets,
			TargetReps:        derefInt(rec.TargetReps),
			TargetDuration:    derefInt(rec.TargetDuration),
			TargetDaysPerWeek: rec.TargetDaysPerWeek,
			Archived:          rec.Archived,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if rec.CreatedAt != "" {
			if e.CreatedAt, err = domain.ParseLocalDateTime(rec.CreatedAt); err != nil {
				return nil, fmt.Errorf("exercises[%d].createdAt: %w", i, err)
			}
		}
		e.ApplyDefaults()
		e.Normalize()
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("exercises[%d]: %w", i, err)
		}
		ds.Exercises = append(ds.Exercises, e)
		byName[strings.ToLower(e.Name)] = e.ID

		for j, sr := range rec.Sessions {
			s, err := convertSession(e, sr)
			if err != nil {
				return nil, fmt.Errorf("exercises[%d].sessions[%d]: %w", i, j, err)
			}
			ds.Sessions = append(ds.Sessions, s)
		}
	}

	for i, rec := range f.Workouts {
		w := &domain.Workout{
			ID:                uuid.New().String(),
			Name:              rec.Name,
			Description:       rec.Description,
			TargetDaysPerWeek: rec.TargetDaysPerWeek,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		for _, m := range rec.Exercises {
			id, ok := byName[strings.ToLower(strings.TrimSpace(m.Exercise))]
			if !ok {
				return nil, fmt.Errorf("workouts[%d]: unknown exercise %q", i, m.Exercise)
			}
			w.Exercises = append(w.Exercises, domain.WorkoutExercise{
				ExerciseID:     id,
				TargetSets:     m.TargetSets,
				TargetReps:     derefInt(m.TargetReps),
				TargetDuration: derefInt(m.TargetDuration),
			})
		}
		w.ApplyDefaults()
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("workouts[%d]: %w", i, err)
		}
		ds.Workouts = append(ds.Workouts, w)

		for j, sr := range rec.Sessions {
			at, err := domain.ParseLocalDateTime(sr.CompletedAt)
			if err != nil {
				return nil, fmt.Errorf("workouts[%d].sessions[%d]: %w", i, j, err)
			}
			ds.WorkoutSessions = append(ds.WorkoutSessions, &domain.WorkoutSession{
				ID:          uuid.New().String(),
				WorkoutID:   w.ID,
				CompletedAt: at,
				Notes:       sr.Notes,
			})
		}
	}

	return ds, nil
}

func convertSession(e *domain.Exercise, sr SessionRecord) (*domain.ExerciseSession, error) {
	at, err := domain.ParseLocalDateTime(sr.CompletedAt)
	if err != nil {
		return nil, err
	}
	s := &domain.ExerciseSession{
		ID:             uuid.New().String(),
		ExerciseID:     e.ID,
		CompletedAt:    at,
		Weight:         sr.Weight,
		Notes:          sr.Notes,
		TargetSets:     derefInt(sr.TargetSets),
		TargetReps:     derefInt(sr.TargetReps),
		TargetDuration: derefInt(sr.TargetDuration),
	}
	if err := s.RecordAverage(e.Kind, sr.Sets, averageOf(e.Kind, sr)); err != nil {
		return nil, err
	}
	if sr.SetsData != nil {
		s.SetsData = *sr.SetsData
	}
	return s, nil
}

func averageOf(kind domain.ExerciseKind, sr SessionRecord) int {
	if kind == domain.KindTimeBased {
		return derefInt(sr.Duration)
	}
	return derefInt(sr.Reps)
}

// Build assembles a backup file from stored data. sessions and
// workoutSessions are keyed by their parent id.
func Build(
	exercises []*domain.Exercise,
	sessions map[string][]*domain.ExerciseSession,
	workouts []*domain.Workout,
	workoutSessions map[string][]*domain.WorkoutSession,
	exportedAt time.Time,
) *File {
	f := &File{
		Version:    FormatVersion,
		ExportedAt: domain.FormatLocalDateTime(exportedAt),
		Exercises:  make([]ExerciseRecord, 0, len(exercises)),
	}

	names := make(map[string]string, len(exercises))
	for _, e := range exercises {
		names[e.ID] = e.Name
		rec := ExerciseRecord{
			Name:              e.Name,
			Description:       e.Description,
			Type:              string(e.Kind),
			TargetSets:        e.TargetSets,
			TargetReps:        optionalInt(e.TargetReps),
			TargetDuration:    optionalInt(e.TargetDuration),
			TargetDaysPerWeek: e.TargetDaysPerWeek,
			Archived:          e.Archived,
			CreatedAt:         domain.FormatLocalDateTime(e.CreatedAt),
		}
		for _, s := range sessions[e.ID] {
			sr := SessionRecord{
				CompletedAt:    domain.FormatLocalDateTime(s.CompletedAt),
				Sets:           s.Sets,
				Reps:           optionalInt(s.Reps),
				Duration:       optionalInt(s.Duration),
				Weight:         s.Weight,
				Notes:          s.Notes,
				TargetSets:     optionalInt(s.TargetSets),
				TargetReps:     optionalInt(s.TargetReps),
				TargetDuration: optionalInt(s.TargetDuration),
			}
			if s.SetsData != "" {
				data := s.SetsData
				sr.SetsData = &data
			}
			rec.Sessions = append(rec.Sessions, sr)
		}
		f.Exercises = append(f.Exercises, rec)
	}

	for _, w := range workouts {
		rec := WorkoutRecord{
			Name:              w.Name,
			Description:       w.Description,
			TargetDaysPerWeek: w.TargetDaysPerWeek,
			Exercises:         make([]WorkoutExerciseRecord, 0, len(w.Exercises)),
		}
		for _, m := range w.Exercises {
			rec.Exercises = append(rec.Exercises, WorkoutExerciseRecord{
				Exercise:       names[m.ExerciseID],
				TargetSets:     m.TargetSets,
				TargetReps:     optionalInt(m.TargetReps),
				TargetDuration: optionalInt(m.TargetDuration),
			})
		}
		for _, s := range workoutSessions[w.ID] {
			rec.Sessions = append(rec.Sessions, WorkoutSessionRecord{
				CompletedAt: domain.FormatLocalDateTime(s.CompletedAt),
				Notes:       s.Notes,
			})
		}
		f.Workouts = append(f.Workouts, rec)
	}
	return f
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func optionalInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
