package handlers

//go:generate mockgen -source=batch.go -destination=mock_batch.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// BatchTracer returns the public trace of a batch.
type BatchTracer interface {
	GetTrace(ctx context.Context, code string) (*models.BatchTrace, error)
}

// NewGetBatchHandler returns an HTTP handler for the public trace of a batch.
// @Summary Trace a batch
// @Description Public lookup of a batch with its creator and full transaction history, oldest first.
// @Tags batches
// @Produce json
// @Param batch_code path string true "Batch code"
// @Success 200 {object} models.BatchTraceResponse "Batch trace"
// @Failure 404 {object} models.ErrorResponse "Batch not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /batches/{batch_code} [get]
func NewGetBatchHandler(svc BatchTracer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "batch_code")

		trace, err := svc.GetTrace(r.Context(), code)
		if err != nil {
			if errors.Is(err, services.ErrBatchNotFound) {
				writeError(w, http.StatusNotFound, "Batch not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.BatchTraceResponse{
			Success:    true,
			BatchTrace: *trace,
		})
	}
}
