// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tapinapp/wordle-leaderboard/pkg/metrics"
)

// healthBody is the static liveness payload. The probe has no dependency on
// the store: a healthy process answers even with an empty leaderboard.
type healthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler handles liveness and metrics-scrape requests.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth handles GET /api/leaderboard/health.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{
		Status:  "healthy",
		Service: "wordle-leaderboard",
	})
}

// HandleMetrics handles GET /healthz, serving the custom Prometheus registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
