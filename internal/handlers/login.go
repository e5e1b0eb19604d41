package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// Loginer defines the interface for authenticating users.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.PublicUser, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login
// @Description Authenticates an active user and returns a JWT valid for 24 hours.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.LoginResponse "Successful login"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		normalize := func() {
			req.Username = strings.TrimSpace(req.Username)
		}
		if !decodeAndValidate(w, r, &req, normalize) {
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Success: true,
			Message: "Login successful",
			Token:   token,
			User:    *user,
		})
	}
}
