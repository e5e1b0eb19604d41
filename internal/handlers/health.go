package handlers

import (
	"net/http"
	"time"

	"github.com/ricechain/supply-tracker/internal/models"
)

// NewHealthHandler returns a liveness check.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is running"
// @Router /health [get]
func NewHealthHandler(now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Success:   true,
			Status:    "OK",
			Message:   "Supply tracker API is running",
			Timestamp: now().UTC().Format(time.RFC3339),
		})
	}
}
