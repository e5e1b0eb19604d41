package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLedgerReceiptHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReceiptVerifier(ctrl)
	mockSvc.EXPECT().VerifyReceipt(gomock.Any(), "0xabc").
		Return(&models.LedgerReceipt{Hash: "0xabc", BlockNumber: 10000, Status: "confirmed", Verified: true, Simulated: true}, nil)
	mockSvc.EXPECT().VerifyReceipt(gomock.Any(), "0xnope").Return(nil, services.ErrReceiptNotFound)
	mockSvc.EXPECT().VerifyReceipt(gomock.Any(), "0xerr").Return(nil, errors.New("boom"))

	handler := NewLedgerReceiptHandler(mockSvc)

	tests := []struct {
		hash         string
		expectedCode int
	}{
		{"0xabc", http.StatusOK},
		{"0xnope", http.StatusNotFound},
		{"0xerr", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/ledger/"+tt.hash, nil), "hash", tt.hash)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedCode == http.StatusOK {
				receipt := resp["receipt"].(map[string]any)
				assert.Equal(t, true, receipt["verified"])
				assert.Equal(t, true, receipt["simulated"])
				assert.EqualValues(t, 10000, receipt["block_number"])
			}
		})
	}
}
