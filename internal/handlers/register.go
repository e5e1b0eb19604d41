package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Validation failed / username or email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		normalize := func() {
			req.Username = strings.TrimSpace(req.Username)
			req.Email = strings.TrimSpace(req.Email)
			req.FullName = strings.TrimSpace(req.FullName)
		}
		if !decodeAndValidate(w, r, &req, normalize) {
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "Username or email already exists")
				return
			}
			if errors.Is(err, services.ErrPasswordTooLong) {
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Success: false,
					Message: msgValidationFailed,
					Errors: []models.FieldError{{
						Field:   "password",
						Message: "password must be at most 72 bytes",
					}},
				})
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Success: true,
			Message: "User registered successfully",
			User:    *user,
		})
	}
}
