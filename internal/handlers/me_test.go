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

func TestMeHandler(t *testing.T) {
	tests := []struct {
		name         string
		authorized   bool
		mockSetup    func(m *MockProfileGetter)
		expectedCode int
	}{
		{
			name:       "success",
			authorized: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().Profile(gomock.Any(), testClaims.UserID).
					Return(&models.Profile{ID: 7, Username: "farmer_an", Role: models.RoleFarmer}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "deactivated user",
			authorized: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().Profile(gomock.Any(), testClaims.UserID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "internal error",
			authorized: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().Profile(gomock.Any(), testClaims.UserID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "no claims",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProfileGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.authorized {
				req = withClaims(req)
			}
			rr := httptest.NewRecorder()
			NewMeHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			assert.Equal(t, tt.expectedCode == http.StatusOK, resp["success"])
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "farmer_an", resp["user"].(map[string]any)["username"])
			}
		})
	}
}
