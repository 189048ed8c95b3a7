package httpapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

// localTime marshals as the canonical "YYYY-MM-DD HH:MM:SS" wall-clock form.
type localTime time.Time

func (t localTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(domain.FormatLocalDateTime(time.Time(t)))
}

func (t *localTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := domain.ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*t = localTime(parsed)
	return nil
}

func nonZero(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

type exerciseResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Type              string    `json:"type"`
	TargetSets        int       `json:"targetSets"`
	TargetReps        *int      `json:"targetReps"`
	TargetDuration    *int      `json:"targetDuration"`
	TargetDaysPerWeek int       `json:"targetDaysPerWeek"`
	Archived          bool      `json:"archived"`
	CreatedAt         localTime `json:"createdAt"`
	UpdatedAt         localTime `json:"updatedAt"`
}

func toExerciseResponse(e *domain.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description,
		Type:              string(e.Kind),
		TargetSets:        e.TargetSets,
		TargetReps:        nonZero(e.TargetReps),
		TargetDuration:    nonZero(e.TargetDuration),
		TargetDaysPerWeek: e.TargetDaysPerWeek,
		Archived:          e.Archived,
		CreatedAt:         localTime(e.CreatedAt),
		UpdatedAt:         localTime(e.UpdatedAt),
	}
}

// exerciseRequest serves both create and partial update.
type exerciseRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Type              *string `json:"type"`
	TargetSets        *int    `json:"targetSets"`
	TargetReps        *int    `json:"targetReps"`
	TargetDuration    *int    `json:"targetDuration"`
	TargetDaysPerWeek *int    `json:"targetDaysPerWeek"`
	Archived          *bool   `json:"archived"`
}

func (r exerciseRequest) kind() (*domain.ExerciseKind, error) {
	if r.Type == nil {
		return nil, nil
	}
	k, err := domain.ParseExerciseKind(*r.Type)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r exerciseRequest) toExercise() (*domain.Exercise, error) {
	k, err := r.kind()
	if err != nil {
		return nil, err
	}
	e := &domain.Exercise{
		Name:              domain.ValueOr("", r.Name),
		Description:       domain.ValueOr("", r.Description),
		TargetSets:        domain.ValueOr(0, r.TargetSets),
		TargetReps:        domain.ValueOr(0, r.TargetReps),
		TargetDuration:    domain.ValueOr(0, r.TargetDuration),
		TargetDaysPerWeek: domain.ValueOr(0, r.TargetDaysPerWeek),
	}
	if k != nil {
		e.Kind = *k
	}
	return e, nil
}

func (r exerciseRequest) toUpdate() (service.ExerciseUpdate, error) {
	k, err := r.kind()
	if err != nil {
		return service.ExerciseUpdate{}, err
	}
	return service.ExerciseUpdate{
		Name:              r.Name,
		Description:       r.Description,
		Kind:              k,
		TargetSets:        r.TargetSets,
		TargetReps:        r.TargetReps,
		TargetDuration:    r.TargetDuration,
		TargetDaysPerWeek: r.TargetDaysPerWeek,
		Archived:          r.Archived,
	}, nil
}

type sessionResponse struct {
	ID             string    `json:"id"`
	ExerciseID     string    `json:"exerciseId"`
	CompletedAt    localTime `json:"completedAt"`
	Sets           int       `json:"sets"`
	Reps           *int      `json:"reps"`
	Duration       *int      `json:"duration"`
	Weight         *float64  `json:"weight"`
	Notes          string    `json:"notes"`
	SetsData       *string   `json:"setsData"`
	TargetSets     *int      `json:"targetSets"`
	TargetReps     *int      `json:"targetReps"`
	TargetDuration *int      `json:"targetDuration"`
}

func toSessionResponse(s *domain.ExerciseSession) sessionResponse {
	resp := sessionResponse{
		ID:             s.ID,
		ExerciseID:     s.ExerciseID,
		CompletedAt:    localTime(s.CompletedAt),
		Sets:           s.Sets,
		Reps:           nonZero(s.Reps),
		Duration:       nonZero(s.Duration),
		Weight:         s.Weight,
		Notes:          s.Notes,
		TargetSets:     nonZero(s.TargetSets),
		TargetReps:     nonZero(s.TargetReps),
		TargetDuration: nonZero(s.TargetDuration),
	}
	if s.SetsData != "" {
		data := s.SetsData
		resp.SetsData = &data
	}
	return resp
}

// sessionRequest accepts setsData either as a JSON array or as a string
// holding one.
type sessionRequest struct {
	Sets        *int            `json:"sets"`
	Reps        *int            `json:"reps"`
	Duration    *int            `json:"duration"`
	Weight      *float64        `json:"weight"`
	Notes       *string         `json:"notes"`
	SetsData    json.RawMessage `json:"setsData"`
	CompletedAt *localTime      `json:"completedAt"`
}

func (r sessionRequest) setValues() ([]float64, error) {
	raw := r.SetsData
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if inner == "" {
			return nil, nil
		}
		raw = json.RawMessage(inner)
	}
	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: setsData must be an array of numbers", domain.ErrInvalidSession)
	}
	return values, nil
}

func (r sessionRequest) completedAt() *time.Time {
	if r.CompletedAt == nil {
		return nil
	}
	t := time.Time(*r.CompletedAt)
	return &t
}

// average picks the measurement matching the exercise kind.
func (r sessionRequest) average(kind domain.ExerciseKind) *int {
	if kind == domain.KindTimeBased {
		return r.Duration
	}
	return r.Reps
}

func (r sessionRequest) toLogRequest(exercise *domain.Exercise) (service.LogSessionRequest, error) {
	values, err := r.setValues()
	if err != nil {
		return service.LogSessionRequest{}, err
	}
	return service.LogSessionRequest{
		ExerciseID:  exercise.ID,
		CompletedAt: r.completedAt(),
		SetValues:   values,
		Sets:        domain.ValueOr(0, r.Sets),
		Average:     domain.ValueOr(0, r.average(exercise.Kind)),
		Weight:      r.Weight,
		Notes:       domain.ValueOr("", r.Notes),
	}, nil
}

func (r sessionRequest) toUpdate(kind domain.ExerciseKind) (service.SessionUpdate, error) {
	values, err := r.setValues()
	if err != nil {
		return service.SessionUpdate{}, err
	}
	return service.SessionUpdate{
		CompletedAt: r.completedAt(),
		SetValues:   values,
		Sets:        r.Sets,
		Average:     r.average(kind),
		Weight:      r.Weight,
		Notes:       r.Notes,
	}, nil
}

type personalBestResponse struct {
	PersonalBest  *float64 `json:"personalBest"`
	TotalSessions int      `json:"totalSessions"`
}

type exerciseProgressResponse struct {
	ExerciseID             string `json:"exerciseId"`
	ExerciseName           string `json:"exerciseName"`
	TargetDaysPerWeek      int    `json:"targetDaysPerWeek"`
	DaysCompletedLast7Days int    `json:"daysCompletedLast7Days"`
	ProgressPercentage     int    `json:"progressPercentage"`
	IsOnTrack              bool   `json:"isOnTrack"`
}

type historyPoint struct {
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
	Goal    float64 `json:"goal"`
	OnTrack bool    `json:"onTrack"`
}

type historyResponse struct {
	ExerciseID    string         `json:"exerciseId"`
	Days          int            `json:"days"`
	Points        []historyPoint `json:"points"`
	MaxValue      float64        `json:"maxValue"`
	ActiveDays    int            `json:"activeDays"`
	OnTrackDays   int            `json:"onTrackDays"`
	TotalSessions int            `json:"totalSessions"`
	TotalSets     int            `json:"totalSets"`
	TotalVolume   float64        `json:"totalVolume"`
}

func toHistoryResponse(h *service.ExerciseHistory) historyResponse {
	resp := historyResponse{
		ExerciseID:    h.Exercise.ID,
		Days:          len(h.Points),
		Points:        make([]historyPoint, len(h.Points)),
		MaxValue:      h.MaxValue,
		ActiveDays:    h.ActiveDays,
		OnTrackDays:   h.OnTrackDays,
		TotalSessions: h.TotalSessions,
		TotalSets:     h.TotalSets,
		TotalVolume:   h.TotalVolume,
	}
	for i, p := range h.Points {
		resp.Points[i] = historyPoint{
			Date:    domain.DateKey(p.Date),
			Value:   p.Value,
			Goal:    p.Goal,
			OnTrack: h.OnTrack[i],
		}
	}
	return resp
}

type workoutExerciseJSON struct {
	ExerciseID     string `json:"exerciseId"`
	TargetSets     int    `json:"targetSets"`
	TargetReps     *int   `json:"targetReps"`
	TargetDuration *int   `json:"targetDuration"`
	OrderIndex     int    `json:"orderIndex"`
}

type workoutResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	TargetDaysPerWeek int                   `json:"targetDaysPerWeek"`
	Exercises         []workoutExerciseJSON `json:"exercises"`
	CreatedAt         localTime             `json:"createdAt"`
	UpdatedAt         localTime             `json:"updatedAt"`
}

func toWorkoutResponse(w *domain.Workout) workoutResponse {
	resp := workoutResponse{
		ID:                w.ID,
		Name:              w.Name,
		Description:       w.Description,
		TargetDaysPerWeek: w.TargetDaysPerWeek,
		Exercises:         make([]workoutExerciseJSON, 0, len(w.Exercises)),
		CreatedAt:         localTime(w.CreatedAt),
		UpdatedAt:         localTime(w.UpdatedAt),
	}
	for _, we := range w.Exercises {
		resp.Exercises = append(resp.Exercises, workoutExerciseJSON{
			ExerciseID:     we.ExerciseID,
			TargetSets:     we.TargetSets,
			TargetReps:     nonZero(we.TargetReps),
			TargetDuration: nonZero(we.TargetDuration),
			OrderIndex:     we.OrderIndex,
		})
	}
	return resp
}

type workoutRequest struct {
	Name              *string               `json:"name"`
	Description       *string               `json:"description"`
	TargetDaysPerWeek *int                  `json:"targetDaysPerWeek"`
	Exercises         []workoutExerciseJSON `json:"exercises"`
}

func (r workoutRequest) toWorkout() *domain.Workout {
	w := &domain.Workout{
		Name:              domain.ValueOr("", r.Name),
		Description:       domain.ValueOr("", r.Description),
		TargetDaysPerWeek: domain.ValueOr(0, r.TargetDaysPerWeek),
	}
	for _, we := range r.Exercises {
		w.Exercises = append(w.Exercises, domain.WorkoutExercise{
			ExerciseID:     we.ExerciseID,
			TargetSets:     we.TargetSets,
			TargetReps:     domain.ValueOr(0, we.TargetReps),
			TargetDuration: domain.ValueOr(0, we.TargetDuration),
		})
	}
	return w
}

type workoutSessionJSON struct {
	ID          string    `json:"id"`
	WorkoutID   string    `json:"workoutId"`
	CompletedAt localTime `json:"completedAt"`
	Notes       string    `json:"notes"`
}

func toWorkoutSessionJSON(s *domain.WorkoutSession) workoutSessionJSON {
	return workoutSessionJSON{
		ID:          s.ID,
		WorkoutID:   s.WorkoutID,
		CompletedAt: localTime(s.CompletedAt),
		Notes:       s.Notes,
	}
}

type workoutSessionRequest struct {
	Notes       string     `json:"notes"`
	CompletedAt *localTime `json:"completedAt"`
}

type workoutProgressResponse struct {
	WorkoutID              string               `json:"workoutId"`
	WorkoutName            string               `json:"workoutName"`
	TargetDaysPerWeek      int                  `json:"targetDaysPerWeek"`
	DaysCompletedLast7Days int                  `json:"daysCompletedLast7Days"`
	ProgressPercentage     int                  `json:"progressPercentage"`
	IsOnTrack              bool                 `json:"isOnTrack"`
	RecentSessions         []workoutSessionJSON `json:"recentSessions"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type overviewRow struct {
	Exercise      exerciseResponse         `json:"exercise"`
	Progress      exerciseProgressResponse `json:"progress"`
	PersonalBest  *float64                 `json:"personalBest"`
	TotalSessions int                      `json:"totalSessions"`
	LastSession   *localTime               `json:"lastSession"`
}

func toExerciseProgressResponse(e *domain.Exercise, a analytics.Adherence) exerciseProgressResponse {
	return exerciseProgressResponse{
		ExerciseID:             e.ID,
		ExerciseName:           e.Name,
		TargetDaysPerWeek:      a.TargetDays,
		DaysCompletedLast7Days: a.DaysCompleted,
		ProgressPercentage:     a.ProgressPercentage,
		IsOnTrack:              a.IsOnTrack,
	}
}

func toOverviewRow(o service.ExerciseOverview) overviewRow {
	row := overviewRow{
		Exercise:      toExerciseResponse(o.Exercise),
		Progress:      toExerciseProgressResponse(o.Exercise, o.Adherence),
		PersonalBest:  o.PersonalBest,
		TotalSessions: o.SessionCount,
	}
	if o.LastSession != nil {
		last := localTime(*o.LastSession)
		row.LastSession = &last
	}
	return row
}
