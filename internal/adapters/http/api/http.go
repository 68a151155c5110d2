// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	repository "github.com/tapinapp/wordle-leaderboard/internal/adapters/repository"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// SubmitScore persists a submission and returns the created record.
	SubmitScore(ctx context.Context, sub repository.Submission) (model.Score, error)

	// Leaderboard returns up to limit ranked entries for a puzzle date.
	Leaderboard(ctx context.Context, puzzleDate string, limit int) []types.Entry

	// Dates returns every puzzle date with at least one record.
	Dates(ctx context.Context) []string

	// Clear and ClearAll are admin/test support; both are idempotent.
	Clear(ctx context.Context, puzzleDate string)
	ClearAll(ctx context.Context)
}

// Server wires HTTP routes for the leaderboard API.
type Server struct {
	scoresHandler      *ScoresHandler
	leaderboardHandler *LeaderboardHandler
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	indexHandler       *IndexHandler
}

// NewServer creates a new API server with all handlers. defaultLimit and
// maxLimit control the leaderboard ?limit clamp, which lives in this layer
// so the core stays limit-agnostic.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaultLimit, maxLimit int) *Server {
	return &Server{
		scoresHandler:      NewScoresHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, defaultLimit, maxLimit),
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		indexHandler:       NewIndexHandler(),
	}
}

// Router builds the chi router with the full middleware stack and all
// business routes attached. Further routes (e.g. docs) may be added to the
// returned router before serving begins.
func (s *Server) Router(_ context.Context) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/", Metrics(s.indexHandler.HandleIndex, "index"))
	r.Get("/healthz", s.healthHandler.HandleMetrics)
	r.Get("/stats", Metrics(s.statsHandler.HandleStats, "stats"))

	r.Route("/api/leaderboard", func(r chi.Router) {
		// Static segments first; chi matches them ahead of {date}.
		r.Get("/health", Metrics(s.healthHandler.HandleHealth, "health"))
		r.Get("/dates", Metrics(s.leaderboardHandler.HandleGetDates, "dates"))
		r.Post("/score", Metrics(s.scoresHandler.HandlePostScore, "submit_score"))
		r.Get("/{date}", Metrics(s.leaderboardHandler.HandleGetLeaderboard, "get_leaderboard"))
		r.Delete("/{date}", Metrics(s.leaderboardHandler.HandleClearDate, "clear_date"))
		r.Delete("/", Metrics(s.leaderboardHandler.HandleClearAll, "clear_all"))
	})

	return r
}

// scorePayload mirrors the public shape of a stored score.
type scorePayload struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Guesses     int    `json:"guesses"`
	TimeSeconds int    `json:"time_seconds"`
	PuzzleDate  string `json:"puzzle_date"`
}

func toScorePayload(s model.Score) scorePayload {
	return scorePayload{
		ID:          s.ID,
		Username:    s.Username,
		Guesses:     s.Guesses,
		TimeSeconds: s.TimeSeconds,
		PuzzleDate:  s.PuzzleDate,
	}
}

// submitResponse is the 201 body for POST /api/leaderboard/score.
type submitResponse struct {
	Success bool         `json:"success"`
	Score   scorePayload `json:"score"`
}

// leaderboardResponse is the 200 body for GET /api/leaderboard/{date}.
type leaderboardResponse struct {
	Success     bool          `json:"success"`
	PuzzleDate  string        `json:"puzzle_date"`
	Leaderboard []types.Entry `json:"leaderboard"`
}

// datesResponse is the 200 body for GET /api/leaderboard/dates.
type datesResponse struct {
	Success bool     `json:"success"`
	Dates   []string `json:"dates"`
}

// statusResponse acknowledges admin operations.
type statusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// errorResponse is the body of every non-2xx business response.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, ErrEndpointNotFound)
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

// validDate checks the YYYY-MM-DD partition key shape.
func validDate(date string) bool {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// isInvalidScore reports whether err is a core validation rejection, which
// the API maps to 400 rather than 500.
func isInvalidScore(err error) bool {
	return errors.Is(err, model.ErrInvalidScore)
}
