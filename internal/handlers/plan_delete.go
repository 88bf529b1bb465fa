package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// PlanDeleter defines the interface that the service must implement.
type PlanDeleter interface {
	Delete(ctx context.Context, planID, userID uuid.UUID) (bool, error)
}

// NewDeletePlanHandler returns an HTTP handler for plan deletion.
// @Summary Delete shoot plan
// @Description Deletes a plan under the caller's ownership. Not-found and not-owned are the same 404.
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 204 "Plan deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plan not found or no access"
// @Router /plans/{id} [delete]
// @Security BearerAuth
func NewDeletePlanHandler(svc PlanDeleter, tokener ClaimsTokener) http.HandlerFunc {
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

		deleted, err := svc.Delete(r.Context(), planID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to delete plan", "plan_id", planID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Plan not found or no access"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
