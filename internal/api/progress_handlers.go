package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/pkg/entity"
	"github.com/limbo/habitpulse/pkg/httputil"
)

const maxCompletionsRange = 366

type SetCompletionRequest struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type ToggleCompletionResponse struct {
	HabitID   string     `json:"habit_id"`
	Date      *time.Time `json:"date,omitempty"`
	Completed bool       `json:"completed"`
}

type GetCompletionsResponse struct {
	HabitID     string                   `json:"habit_id"`
	Completions []entity.HabitCompletion `json:"completions"`
}

type RefreshStreaksResponse struct {
	UserID string         `json:"uid"`
	Habits []entity.Habit `json:"habits"`
}

// queryDay parses an optional date query parameter. Missing values give the zero time.
func queryDay(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	return progress.ParseDay(raw)
}

// ToggleCompletion godoc
// @Summary Toggle completion of a day
// @Tags completions
// @Produce json
// @Security BearerAuth
// @Param id path string true "habit id"
// @Param date query string false "YYYY-MM-DD or RFC3339, today when empty"
// @Success 200 {object} api.ToggleCompletionResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /habits/{id}/completions/toggle [post]
func (s *Server) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitRequestIDs(w, r, "toggle completion")
	if !ok {
		return
	}
	date, err := queryDay(r, "date")
	if err != nil {
		logger.Error("toggle completion error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	completed, err := s.completionsService.ToggleCompletion(ctx, id, uid, date)
	if err != nil {
		writeHabitError(w, logger, "toggle completion", err)
		return
	}
	resp := ToggleCompletionResponse{
		HabitID:   id.String(),
		Completed: completed,
	}
	if !date.IsZero() {
		resp.Date = &date
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("completion toggled", slog.String("habit_id", id.String()), slog.Bool("completed", completed))
}

// SetCompletion godoc
// @Summary Set completion of a day
// @Tags completions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.SetCompletionRequest true "request body"
// @Param id path string true "habit id"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Router /habits/{id}/completions [put]
func (s *Server) SetCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitRequestIDs(w, r, "set completion")
	if !ok {
		return
	}
	var req SetCompletionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("set completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := progress.ParseDay(req.Date)
	if err != nil {
		logger.Error("set completion error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.completionsService.SetCompletion(ctx, id, uid, date, req.Completed); err != nil {
		writeHabitError(w, logger, "set completion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("completion set", slog.String("habit_id", id.String()), slog.Bool("completed", req.Completed))
}

// GetCompletions godoc
// @Summary List completions in a range
// @Tags completions
// @Produce json
// @Security BearerAuth
// @Param id path string true "habit id"
// @Param from query string false "range start"
// @Param to query string false "range end"
// @Success 200 {object} api.GetCompletionsResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /habits/{id}/completions [get]
func (s *Server) GetCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitRequestIDs(w, r, "get completions")
	if !ok {
		return
	}
	from, errFrom := queryDay(r, "from")
	to, errTo := queryDay(r, "to")
	if err := errors.Join(errFrom, errTo); err != nil {
		logger.Error("get completions error: invalid range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", err)
		return
	}
	if !from.IsZero() && !to.IsZero() && max(progress.DaysBetween(from, to), progress.DaysBetween(to, from)) > maxCompletionsRange {
		logger.Error("get completions error: range too wide")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date range is wider than a year", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	completions, err := s.completionsService.GetHabitCompletions(ctx, id, uid, from, to)
	if err != nil {
		writeHabitError(w, logger, "get completions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCompletionsResponse{
		HabitID:     id.String(),
		Completions: completions,
	})
}

// GetHabitStats godoc
// @Summary Habit statistics
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "habit id"
// @Param today query string false "reference day"
// @Success 200 {object} entity.HabitStats
// @Failure 400 {object} httputil.ErrorResponse
// @Router /habits/{id}/stats [get]
func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitRequestIDs(w, r, "habit stats")
	if !ok {
		return
	}
	today, err := queryDay(r, "today")
	if err != nil {
		logger.Error("habit stats error: invalid today")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.progressService.GetHabitStats(ctx, id, uid, today)
	if err != nil {
		writeHabitError(w, logger, "habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

// GetStats godoc
// @Summary Aggregate statistics
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param timeframe query string false "week, month or year"
// @Param today query string false "reference day"
// @Success 200 {object} progress.Stats
// @Failure 400 {object} httputil.ErrorResponse
// @Router /progress/stats [get]
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, today, ok := userAndToday(w, r, "stats")
	if !ok {
		return
	}
	tf := progress.TimeframeWeek
	if raw := r.URL.Query().Get("timeframe"); raw != "" {
		parsed, known := progress.ParseTimeframe(raw)
		if !known {
			logger.Error("stats error: unknown timeframe", slog.String("timeframe", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "timeframe must be week, month or year", nil)
			return
		}
		tf = parsed
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	stats, err := s.progressService.GetStats(ctx, uid, tf, today)
	if err != nil {
		logger.Error("stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

// GetGamification godoc
// @Summary XP, level and achievements
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param today query string false "reference day"
// @Success 200 {object} progress.Gamification
// @Failure 400 {object} httputil.ErrorResponse
// @Router /progress/gamification [get]
func (s *Server) GetGamification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, today, ok := userAndToday(w, r, "gamification")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	g, err := s.progressService.GetGamification(ctx, uid, today)
	if err != nil {
		logger.Error("gamification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, g)
}

// RefreshStreaks godoc
// @Summary Recompute and store streaks
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param today query string false "reference day"
// @Success 200 {object} api.RefreshStreaksResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /progress/refresh [post]
func (s *Server) RefreshStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, today, ok := userAndToday(w, r, "refresh streaks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	habits, err := s.progressService.RefreshStreaks(ctx, uid, today)
	if err != nil {
		logger.Error("refresh streaks error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while refreshing streaks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RefreshStreaksResponse{
		UserID: uid.String(),
		Habits: habits,
	})
	logger.Info("streaks refreshed", slog.Int("habits", len(habits)))
}

func userAndToday(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, time.Time, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, time.Time{}, false
	}
	today, err := queryDay(r, "today")
	if err != nil {
		logger.Error(op + " error: invalid today")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return uuid.UUID{}, time.Time{}, false
	}
	return uid, today, true
}
