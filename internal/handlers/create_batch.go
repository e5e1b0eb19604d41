package handlers

//go:generate mockgen -source=create_batch.go -destination=mock_create_batch.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ricechain/supply-tracker/internal/middlewares"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// BatchCreator registers new batches.
type BatchCreator interface {
	Create(ctx context.Context, userID int64, req models.CreateBatchRequest) (*models.CreatedBatch, error)
}

// NewCreateBatchHandler returns an HTTP handler for batch creation.
// @Summary Create a batch
// @Description Registers a batch and its initial CREATE transaction in one database transaction.
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBatchRequest body models.CreateBatchRequest true "Batch to create"
// @Success 201 {object} models.CreateBatchResponse "Batch created"
// @Failure 400 {object} models.ErrorResponse "Validation failed / batch code already exists"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /batches [post]
func NewCreateBatchHandler(svc BatchCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req models.CreateBatchRequest
		normalize := func() {
			req.BatchCode = strings.TrimSpace(req.BatchCode)
			req.ProductName = strings.TrimSpace(req.ProductName)
			req.Unit = strings.TrimSpace(req.Unit)
		}
		if !decodeAndValidate(w, r, &req, normalize) {
			return
		}

		batch, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			if errors.Is(err, services.ErrBatchAlreadyExists) {
				writeError(w, http.StatusBadRequest, "Batch code already exists")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.CreateBatchResponse{
			Success: true,
			Message: "Batch created successfully",
			Batch:   *batch,
		})
	}
}
