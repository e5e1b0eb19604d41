package handlers

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// ReceiptVerifier looks up ledger receipts.
type ReceiptVerifier interface {
	VerifyReceipt(ctx context.Context, hash string) (*models.LedgerReceipt, error)
}

// NewLedgerReceiptHandler returns an HTTP handler verifying a transaction hash.
// @Summary Verify a ledger hash
// @Description Returns the receipt of a transaction hash recorded by the simulated ledger.
// @Tags ledger
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} models.LedgerReceiptResponse "Receipt"
// @Failure 404 {object} models.ErrorResponse "Receipt not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /ledger/{hash} [get]
func NewLedgerReceiptHandler(svc ReceiptVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt, err := svc.VerifyReceipt(r.Context(), chi.URLParam(r, "hash"))
		if err != nil {
			if errors.Is(err, services.ErrReceiptNotFound) {
				writeError(w, http.StatusNotFound, "Receipt not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LedgerReceiptResponse{
			Success: true,
			Receipt: *receipt,
		})
	}
}
