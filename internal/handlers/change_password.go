package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) (bool, error)
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"old_password"`

	// New password, 6-100 characters
	// required: true
	NewPassword string `json:"new_password"`
}

// MessageResponse represents a generic success message
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Description Verifies the old password before accepting the new one. A mismatch is a 400, not a server error.
// @Tags auth
// @Accept json
// @Produce json
// @Param changeRequest body handlers.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} handlers.MessageResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Old password incorrect"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(tokenGetter TokenGetter, provider CurrentUserProvider, svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r, tokenGetter, provider)
		if user == nil {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, err := svc.ChangePassword(r.Context(), user.UserID, req.OldPassword, req.NewPassword)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Old password incorrect"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Password changed successfully",
			Success: true,
		})
	}
}
