package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/jwt"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/services"
)

// ClaimsTokener extracts and decodes the bearer token for the plan handlers.
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// requestClaims resolves the caller's claims or writes a 401 and returns nil.
func requestClaims(w http.ResponseWriter, r *http.Request, tokener ClaimsTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// PlanGetter defines the interface that the service must implement.
type PlanGetter interface {
	Get(ctx context.Context, planID, userID uuid.UUID) (*models.PlanDB, error)
}

// NewGetPlanHandler returns an HTTP handler for fetching a single plan.
// @Summary Get shoot plan
// @Description Returns one plan under the caller's ownership. Not-found and not-owned are the same 404.
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} handlers.PlanResponse "Plan"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plan not found or no access"
// @Router /plans/{id} [get]
// @Security BearerAuth
func NewGetPlanHandler(svc PlanGetter, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		planID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid plan id"})
			return
		}

		plan, err := svc.Get(r.Context(), planID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Plan not found or no access"})
			default:
				logger.Log.Errorw("failed to get plan", "plan_id", planID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newPlanResponse(plan))
	}
}
