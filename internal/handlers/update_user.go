package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/services"
)

// UserUpdater defines the interface that the profile-update service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a partial profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New display name (optional)
	UserName *string `json:"name,omitempty"`

	// New email address (optional)
	Email *string `json:"email,omitempty"`

	// New password (optional, 6-100 characters)
	Password *string `json:"password,omitempty"`
}

// NewUpdateUserHandler returns an HTTP handler for partial profile updates.
// @Summary Update current user
// @Description Applies a partial update to the authenticated user's profile. Email uniqueness is re-checked; a new password is re-hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param updateRequest body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Invalid profile fields"
// @Router /auth/me [put]
// @Security BearerAuth
func NewUpdateUserHandler(tokenGetter TokenGetter, provider CurrentUserProvider, svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r, tokenGetter, provider)
		if user == nil {
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		updated, err := svc.UpdateUser(r.Context(), user.UserID, models.UserPatch{
			UserName: req.UserName,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email already registered"})
			case errors.Is(err, services.ErrInvalidUserInput):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid profile fields"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(updated))
	}
}
