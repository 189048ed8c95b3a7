// Package httpapi exposes the exercise, session, workout and progress use
// cases as a JSON REST API.
package httpapi

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/metrics"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/alexanderramin/physio/internal/service"
)

//go:generate mockgen -destination=mocks_test.go -package=httpapi_test github.com/alexanderramin/physio/internal/service ExerciseService,SessionService,WorkoutService,ProgressService

type Services struct {
	Exercises service.ExerciseService
	Sessions  service.SessionService
	Workouts  service.WorkoutService
	Progress  service.ProgressService
}

type Handler struct {
	exercises service.ExerciseService
	sessions  service.SessionService
	workouts  service.WorkoutService
	progress  service.ProgressService

	metricsManager *metrics.Manager
	historyDays    int
	now            func() time.Time
}

// NewHandler builds the API handler. historyDays is the history window used
// when a request does not name one.
func NewHandler(services Services, metricsManager *metrics.Manager, historyDays int) *Handler {
	return &Handler{
		exercises:      services.Exercises,
		sessions:       services.Sessions,
		workouts:       services.Workouts,
		progress:       services.Progress,
		metricsManager: metricsManager,
		historyDays:    historyDays,
		now:            func() time.Time { return domain.WallClock(time.Now()) },
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/overview", handler.handleOverview).Methods("GET").Name("overview")

	api.HandleFunc("/exercises", handler.handleListExercises).Methods("GET").Name("list-exercises")
	api.HandleFunc("/exercises", handler.handleCreateExercise).Methods("POST").Name("create-exercise")
	api.HandleFunc("/exercises/{id}", handler.handleGetExercise).Methods("GET").Name("get-exercise")
	api.HandleFunc("/exercises/{id}", handler.handleUpdateExercise).Methods("PUT").Name("update-exercise")
	api.HandleFunc("/exercises/{id}", handler.handleDeleteExercise).Methods("DELETE").Name("delete-exercise")

	api.HandleFunc("/exercises/{id}/sessions", handler.handleListSessions).Methods("GET").Name("list-sessions")
	api.HandleFunc("/exercises/{id}/sessions", handler.handleLogSession).Methods("POST").Name("log-session")
	api.HandleFunc("/exercises/{id}/sessions/today", handler.handleTodaySession).Methods("GET").Name("today-session")
	api.HandleFunc("/exercises/{id}/sessions/{sessionId}", handler.handleUpdateSession).Methods("PUT").Name("update-session")
	api.HandleFunc("/exercises/{id}/sessions/{sessionId}", handler.handleDeleteSession).Methods("DELETE").Name("delete-session")

	api.HandleFunc("/exercises/{id}/personal-best", handler.handlePersonalBest).Methods("GET").Name("personal-best")
	api.HandleFunc("/exercises/{id}/progress", handler.handleExerciseProgress).Methods("GET").Name("exercise-progress")
	api.HandleFunc("/exercises/{id}/history", handler.handleHistory).Methods("GET").Name("exercise-history")

	api.HandleFunc("/workouts", handler.handleListWorkouts).Methods("GET").Name("list-workouts")
	api.HandleFunc("/workouts", handler.handleCreateWorkout).Methods("POST").Name("create-workout")
	api.HandleFunc("/workouts/{id}", handler.handleGetWorkout).Methods("GET").Name("get-workout")
	api.HandleFunc("/workouts/{id}", handler.handleUpdateWorkout).Methods("PUT").Name("update-workout")
	api.HandleFunc("/workouts/{id}", handler.handleDeleteWorkout).Methods("DELETE").Name("delete-workout")
	api.HandleFunc("/workouts/{id}/sessions", handler.handleListWorkoutSessions).Methods("GET").Name("list-workout-sessions")
	api.HandleFunc("/workouts/{id}/sessions", handler.handleLogWorkoutSession).Methods("POST").Name("log-workout-session")
	api.HandleFunc("/workouts/{id}/progress", handler.handleWorkoutProgress).Methods("GET").Name("workout-progress")
}

func queryBool(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}

func (handler *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	rows, err := handler.progress.Overview(r.Context(), queryBool(r, "includeArchived"), handler.now())
	if err != nil {
		writeError(w, "overview", err)
		return
	}
	resp := make([]overviewRow, 0, len(rows))
	for _, o := range rows {
		resp = append(resp, toOverviewRow(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (handler *Handler) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := handler.exercises.List(r.Context(), queryBool(r, "includeArchived"))
	if err != nil {
		writeError(w, "list exercises", err)
		return
	}
	resp := make([]exerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		resp = append(resp, toExerciseResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (handler *Handler) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req exerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "create exercise", err)
		return
	}
	e, err := req.toExercise()
	if err != nil {
		writeError(w, "create exercise", badRequest("%s", err))
		return
	}
	if err := handler.exercises.Create(r.Context(), e); err != nil {
		writeError(w, "create exercise", err)
		return
	}
	writeJSON(w, http.StatusCreated, toExerciseResponse(e))
}

func (handler *Handler) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	e, err := handler.exercises.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get exercise", err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseResponse(e))
}

func (handler *Handler) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var req exerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "update exercise", err)
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		writeError(w, "update exercise", badRequest("%s", err))
		return
	}
	e, err := handler.exercises.Update(r.Context(), mux.Vars(r)["id"], upd)
	if err != nil {
		writeError(w, "update exercise", err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseResponse(e))
}

func (handler *Handler) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := handler.exercises.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete exercise", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleListSessions returns the exercise's sessions, most recent first.
func (handler *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := handler.sessions.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "list sessions", err)
		return
	}
	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionResponse(s))
	}
	slices.Reverse(resp)
	writeJSON(w, http.StatusOK, resp)
}

func (handler *Handler) handleLogSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "log session", err)
		return
	}
	exercise, err := handler.exercises.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "log session", err)
		return
	}
	logReq, err := req.toLogRequest(exercise)
	if err != nil {
		writeError(w, "log session", err)
		return
	}
	session, created, err := handler.sessions.Log(ctx, logReq)
	if err != nil {
		writeError(w, "log session", err)
		return
	}

	status, outcome := http.StatusOK, "updated"
	if created {
		status, outcome = http.StatusCreated, "created"
	}
	if handler.metricsManager != nil {
		handler.metricsManager.CounterSessionsLogged.WithLabelValues(outcome).Inc()
	}
	writeJSON(w, status, toSessionResponse(session))
}

// handleTodaySession answers with null when nothing was logged that day.
func (handler *Handler) handleTodaySession(w http.ResponseWriter, r *http.Request) {
	day := handler.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseLocalDate(raw)
		if err != nil {
			writeError(w, "today session", badRequest("%s", err))
			return
		}
		day = parsed
	}
	session, err := handler.sessions.Today(r.Context(), mux.Vars(r)["id"], day)
	if err != nil {
		writeError(w, "today session", err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// ownedSession loads a session and checks it belongs to the exercise in the
// route. A mismatch reads as not found.
func (handler *Handler) ownedSession(r *http.Request) (*domain.ExerciseSession, error) {
	vars := mux.Vars(r)
	session, err := handler.sessions.Get(r.Context(), vars["sessionId"])
	if err != nil {
		return nil, err
	}
	if session.ExerciseID != vars["id"] {
		return nil, fmt.Errorf("session %s of exercise %s: %w", vars["sessionId"], vars["id"], repository.ErrNotFound)
	}
	return session, nil
}

func (handler *Handler) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "update session", err)
		return
	}
	exercise, err := handler.exercises.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "update session", err)
		return
	}
	session, err := handler.ownedSession(r)
	if err != nil {
		writeError(w, "update session", err)
		return
	}
	upd, err := req.toUpdate(exercise.Kind)
	if err != nil {
		writeError(w, "update session", err)
		return
	}
	updated, err := handler.sessions.Update(ctx, session.ID, upd)
	if err != nil {
		writeError(w, "update session", err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(updated))
}

func (handler *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := handler.ownedSession(r)
	if err != nil {
		writeError(w, "delete session", err)
		return
	}
	if err := handler.sessions.Delete(r.Context(), session.ID); err != nil {
		writeError(w, "delete session", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (handler *Handler) handlePersonalBest(w http.ResponseWriter, r *http.Request) {
	best, err := handler.progress.PersonalBest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "personal best", err)
		return
	}
	writeJSON(w, http.StatusOK, personalBestResponse{
		PersonalBest:  best.Value,
		TotalSessions: best.TotalSessions,
	})
}

func (handler *Handler) handleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	p, err := handler.progress.Weekly(r.Context(), mux.Vars(r)["id"], handler.now())
	if err != nil {
		writeError(w, "exercise progress", err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseProgressResponse(p.Exercise, p.Adherence))
}

func (handler *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	days := handler.historyDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, "exercise history", badRequest("days must be a positive integer, got %q", raw))
			return
		}
		days = n
	}
	h, err := handler.progress.History(r.Context(), mux.Vars(r)["id"], days, handler.now())
	if err != nil {
		writeError(w, "exercise history", err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(h))
}

func (handler *Handler) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := handler.workouts.List(r.Context())
	if err != nil {
		writeError(w, "list workouts", err)
		return
	}
	resp := make([]workoutResponse, 0, len(workouts))
	for _, wo := range workouts {
		resp = append(resp, toWorkoutResponse(wo))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (handler *Handler) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "create workout", err)
		return
	}
	wo := req.toWorkout()
	if err := handler.workouts.Create(r.Context(), wo); err != nil {
		writeError(w, "create workout", err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkoutResponse(wo))
}

func (handler *Handler) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	wo, err := handler.workouts.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get workout", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkoutResponse(wo))
}

func (handler *Handler) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "update workout", err)
		return
	}
	wo, err := handler.workouts.Update(r.Context(), mux.Vars(r)["id"], service.WorkoutUpdate{
		Name:              req.Name,
		Description:       req.Description,
		TargetDaysPerWeek: req.TargetDaysPerWeek,
	})
	if err != nil {
		writeError(w, "update workout", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkoutResponse(wo))
}

func (handler *Handler) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := handler.workouts.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete workout", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleListWorkoutSessions returns the workout's sessions, most recent first.
func (handler *Handler) handleListWorkoutSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := handler.workouts.Sessions(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "list workout sessions", err)
		return
	}
	resp := make([]workoutSessionJSON, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toWorkoutSessionJSON(s))
	}
	slices.Reverse(resp)
	writeJSON(w, http.StatusOK, resp)
}

func (handler *Handler) handleLogWorkoutSession(w http.ResponseWriter, r *http.Request) {
	var req workoutSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "log workout session", err)
		return
	}
	var completedAt *time.Time
	if req.CompletedAt != nil {
		t := time.Time(*req.CompletedAt)
		completedAt = &t
	}
	session, err := handler.workouts.LogSession(r.Context(), mux.Vars(r)["id"], completedAt, req.Notes)
	if err != nil {
		writeError(w, "log workout session", err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkoutSessionJSON(session))
}

func (handler *Handler) handleWorkoutProgress(w http.ResponseWriter, r *http.Request) {
	p, err := handler.workouts.Progress(r.Context(), mux.Vars(r)["id"], handler.now())
	if err != nil {
		writeError(w, "workout progress", err)
		return
	}
	resp := workoutProgressResponse{
		WorkoutID:              p.Workout.ID,
		WorkoutName:            p.Workout.Name,
		TargetDaysPerWeek:      p.TargetDays,
		DaysCompletedLast7Days: p.DaysCompleted,
		ProgressPercentage:     p.ProgressPercentage,
		IsOnTrack:              p.IsOnTrack,
		RecentSessions:         make([]workoutSessionJSON, 0, len(p.RecentSessions)),
	}
	for _, s := range p.RecentSessions {
		resp.RecentSessions = append(resp.RecentSessions, toWorkoutSessionJSON(s))
	}
	slices.Reverse(resp.RecentSessions)
	writeJSON(w, http.StatusOK, resp)
}
