package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 8, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	rr := httptest.NewRecorder()
	NewHealthHandler(func() time.Time { return fixed })(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeBody(t, rr)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "OK", resp["status"])
	assert.Equal(t, "2025-03-01T01:00:00Z", resp["timestamp"])
}
