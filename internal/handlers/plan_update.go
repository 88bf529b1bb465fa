package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/services"
)

// PlanUpdater defines the interface that the service must implement.
type PlanUpdater interface {
	Update(ctx context.Context, planID, userID uuid.UUID, patch models.PlanPatch) (*models.PlanDB, error)
}

// UpdatePlanRequest represents the JSON body for a partial plan update.
// Ownership is not part of the contract: a user_id field, if sent, is
// ignored by decoding.
// swagger:model UpdatePlanRequest
type UpdatePlanRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	StartTime   *models.Timestamp `json:"start_time,omitempty"`
	Camera      *models.Camera    `json:"camera,omitempty"`
	TilesetURL  *string           `json:"tileset_url,omitempty"`
}

// NewUpdatePlanHandler returns an HTTP handler for partial plan updates.
// @Summary Update shoot plan
// @Description Merges the provided fields over the stored plan under the caller's ownership. A patched start time must be in the future.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param updateRequest body handlers.UpdatePlanRequest true "Fields to update"
// @Success 200 {object} handlers.PlanResponse "Updated plan"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Plan not found or no access"
// @Failure 422 {object} handlers.ErrorResponse "Start time not in the future"
// @Router /plans/{id} [patch]
// @Security BearerAuth
func NewUpdatePlanHandler(svc PlanUpdater, tokener ClaimsTokener) http.HandlerFunc {
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

		var req UpdatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		patch := models.PlanPatch{
			Name:        req.Name,
			Description: req.Description,
			Camera:      req.Camera,
			TilesetURL:  req.TilesetURL,
		}
		if req.StartTime != nil {
			patch.StartTime = &req.StartTime.Time
		}

		plan, err := svc.Update(r.Context(), planID, claims.UserID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Plan not found or no access"})
			case errors.Is(err, services.ErrPastStartTime):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Start time must be in the future"})
			default:
				logger.Log.Errorw("failed to update plan", "plan_id", planID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newPlanResponse(plan))
	}
}
