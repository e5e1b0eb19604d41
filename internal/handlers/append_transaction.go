package handlers

//go:generate mockgen -source=append_transaction.go -destination=mock_append_transaction.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ricechain/supply-tracker/internal/middlewares"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// TransactionAppender adds transactions to a batch.
type TransactionAppender interface {
	AppendTransaction(ctx context.Context, userID int64, code string, req models.AppendTransactionRequest) error
}

// NewAppendTransactionHandler returns an HTTP handler appending a transaction to a batch.
// @Summary Add a transaction
// @Description Appends an event to the history of an existing batch. The batch row itself is not modified.
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch_code path string true "Batch code"
// @Param appendTransactionRequest body models.AppendTransactionRequest true "Transaction to add"
// @Success 200 {object} models.MessageResponse "Transaction added"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Batch not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /batches/{batch_code}/transaction [post]
func NewAppendTransactionHandler(svc TransactionAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req models.AppendTransactionRequest
		normalize := func() {
			req.Action = strings.TrimSpace(req.Action)
			req.Description = strings.TrimSpace(req.Description)
			if req.Location != nil {
				loc := strings.TrimSpace(*req.Location)
				req.Location = &loc
			}
		}
		if !decodeAndValidate(w, r, &req, normalize) {
			return
		}

		code := chi.URLParam(r, "batch_code")
		if err := svc.AppendTransaction(r.Context(), claims.UserID, code, req); err != nil {
			if errors.Is(err, services.ErrBatchNotFound) {
				writeError(w, http.StatusNotFound, "Batch not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Success: true,
			Message: "Transaction added successfully",
		})
	}
}
