package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Log out
// @Description Revokes the presented bearer token for its remaining lifetime.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(tokenGetter TokenGetter, svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Logout(ctx, token); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Logged out",
			Success: true,
		})
	}
}
