package handlers

//go:generate mockgen -source=batches.go -destination=mock_batches.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/ricechain/supply-tracker/internal/models"
)

// BatchLister lists all batches.
type BatchLister interface {
	List(ctx context.Context) ([]models.BatchDB, error)
}

// NewListBatchesHandler returns an HTTP handler listing every batch, newest first.
// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BatchListResponse "Batches"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /batches [get]
func NewListBatchesHandler(svc BatchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batches, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.BatchListResponse{
			Success: true,
			Count:   len(batches),
			Batches: batches,
		})
	}
}
