package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// TokenGetter extracts the raw bearer token from a request.
type TokenGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// CurrentUserProvider resolves a token to the live stored user.
type CurrentUserProvider interface {
	GetCurrentUser(ctx context.Context, token string) (*models.UserDB, error)
}

// currentUser resolves the requesting user or writes a 401 and returns nil.
func currentUser(w http.ResponseWriter, r *http.Request, tokenGetter TokenGetter, provider CurrentUserProvider) *models.UserDB {
	ctx := r.Context()

	token, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	user, err := provider.GetCurrentUser(ctx, token)
	if err != nil || user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return user
}

// NewMeHandler returns the current user's public profile.
// @Summary Current user
// @Description Returns the authenticated user's basic profile
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(tokenGetter TokenGetter, provider CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r, tokenGetter, provider)
		if user == nil {
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}

// NewMeDetailHandler returns the current user's profile with timestamps.
// @Summary Current user detail
// @Description Returns the authenticated user's profile including creation and update timestamps
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserDetailResponse "Current user detail"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/me/detail [get]
// @Security BearerAuth
func NewMeDetailHandler(tokenGetter TokenGetter, provider CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r, tokenGetter, provider)
		if user == nil {
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserDetailResponse{
			UserResponse: newUserResponse(user),
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		})
	}
}

// NewVerifyTokenHandler confirms a bearer token and echoes its user.
// @Summary Verify token
// @Description Returns the token's user when the token is valid
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Token subject"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/verify-token [post]
// @Security BearerAuth
func NewVerifyTokenHandler(tokenGetter TokenGetter, provider CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r, tokenGetter, provider)
		if user == nil {
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
