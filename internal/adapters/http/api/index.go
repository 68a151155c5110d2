// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// IndexHandler serves basic API discovery information at the root.
type IndexHandler struct{}

// NewIndexHandler creates a new index handler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// indexBody describes the service and its endpoints.
type indexBody struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HandleIndex handles GET /.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, indexBody{
		Service: "Wordle Leaderboard API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"submit_score":    "POST /api/leaderboard/score",
			"get_leaderboard": "GET /api/leaderboard/{date}",
			"list_dates":      "GET /api/leaderboard/dates",
			"health_check":    "GET /api/leaderboard/health",
			"api_docs":        "GET /api-docs",
		},
	})
}
