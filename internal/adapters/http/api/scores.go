// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/tapinapp/wordle-leaderboard/internal/adapters/repository"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
)

// ScoresHandler handles score submissions.
type ScoresHandler struct {
	deps Dependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps Dependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// scoreRequest is the typed body of POST /api/leaderboard/score. Pointer
// fields distinguish absent from zero so presence can be validated
// explicitly. Username is intentionally not accepted: the current public
// contract always server-generates it.
type scoreRequest struct {
	Guesses     *int    `json:"guesses"`
	TimeSeconds *int    `json:"time_seconds"`
	PuzzleDate  *string `json:"puzzle_date"`
}

func (r scoreRequest) validate() error {
	var missing []string
	if r.Guesses == nil {
		missing = append(missing, "guesses")
	}
	if r.TimeSeconds == nil {
		missing = append(missing, "time_seconds")
	}
	if r.PuzzleDate == nil {
		missing = append(missing, "puzzle_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if *r.Guesses < model.MinGuesses || *r.Guesses > model.MaxGuesses {
		return errors.New("guesses must be an integer between 1 and 6")
	}
	if *r.TimeSeconds < 0 {
		return errors.New("time_seconds must be a non-negative integer")
	}
	if !validDate(*r.PuzzleDate) {
		return errors.New("puzzle_date must be in YYYY-MM-DD format")
	}
	return nil
}

// HandlePostScore handles POST /api/leaderboard/score.
func (h *ScoresHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrBodyNotJSON)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	score, err := h.deps.SubmitScore(r.Context(), repository.Submission{
		Guesses:     *req.Guesses,
		TimeSeconds: *req.TimeSeconds,
		PuzzleDate:  *req.PuzzleDate,
	})
	if err != nil {
		// The store enforces its own range invariant even though the request
		// was validated above.
		if isInvalidScore(err) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success: true,
		Score:   toScorePayload(score),
	})
}
