// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// LeaderboardHandler handles leaderboard reads and the admin clear routes.
type LeaderboardHandler struct {
	deps         Dependencies
	defaultLimit int
	maxLimit     int
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps Dependencies, defaultLimit, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleGetLeaderboard handles GET /api/leaderboard/{date}?limit=N.
// The limit defaults to defaultLimit and is clamped to [1, maxLimit] here;
// the core never sees an out-of-policy limit.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		writeError(w, http.StatusBadRequest, ErrBadDate)
		return
	}

	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrBadLimit)
			return
		}
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	entries := h.deps.Leaderboard(r.Context(), date, limit)
	writeJSON(w, http.StatusOK, leaderboardResponse{
		Success:     true,
		PuzzleDate:  date,
		Leaderboard: entries,
	})
}

// HandleGetDates handles GET /api/leaderboard/dates.
func (h *LeaderboardHandler) HandleGetDates(w http.ResponseWriter, r *http.Request) {
	dates := h.deps.Dates(r.Context())
	writeJSON(w, http.StatusOK, datesResponse{Success: true, Dates: dates})
}

// HandleClearDate handles DELETE /api/leaderboard/{date}. Clearing an empty
// day succeeds; the operation is idempotent.
func (h *LeaderboardHandler) HandleClearDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		writeError(w, http.StatusBadRequest, ErrBadDate)
		return
	}
	h.deps.Clear(r.Context(), date)
	writeJSON(w, http.StatusOK, statusResponse{Success: true, Status: "cleared"})
}

// HandleClearAll handles DELETE /api/leaderboard.
func (h *LeaderboardHandler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	h.deps.ClearAll(r.Context())
	writeJSON(w, http.StatusOK, statusResponse{Success: true, Status: "cleared"})
}
