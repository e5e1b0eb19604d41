package handlers

//go:generate mockgen -source=me.go -destination=mock_me.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ricechain/supply-tracker/internal/middlewares"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/services"
)

// ProfileGetter returns the profile of an active user.
type ProfileGetter interface {
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Current user
// @Description Returns the profile of the user identified by the bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MeResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/me [get]
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		profile, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MeResponse{
			Success: true,
			User:    *profile,
		})
	}
}
