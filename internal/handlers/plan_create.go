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

// PlanCreator defines the interface that the service must implement.
type PlanCreator interface {
	Create(ctx context.Context, userID uuid.UUID, draft models.PlanCreate) (*models.PlanDB, error)
}

// CreatePlanRequest represents the JSON body for a new shoot plan
// swagger:model CreatePlanRequest
type CreatePlanRequest struct {
	// Plan name
	// required: true
	// default: Lake Tour
	Name string `json:"name"`

	// Optional free-text description
	Description *string `json:"description,omitempty"`

	// Shoot start, RFC3339 or zone-less (read as UTC), must be in the future
	// required: true
	StartTime models.Timestamp `json:"start_time"`

	// Camera pose
	// required: true
	Camera models.Camera `json:"camera"`

	// 3D tileset URL for the scene
	// required: true
	// default: https://example.com/tileset.json
	TilesetURL string `json:"tileset_url"`
}

// NewCreatePlanHandler returns an HTTP handler for plan creation.
// @Summary Create shoot plan
// @Description Creates a plan owned by the caller. The start time must be strictly in the future.
// @Tags plans
// @Accept json
// @Produce json
// @Param createRequest body handlers.CreatePlanRequest true "Plan draft"
// @Success 201 {object} handlers.PlanResponse "Created plan"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Start time not in the future / invalid fields"
// @Router /plans [post]
// @Security BearerAuth
func NewCreatePlanHandler(svc PlanCreator, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req CreatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		plan, err := svc.Create(r.Context(), claims.UserID, models.PlanCreate{
			Name:        req.Name,
			Description: req.Description,
			StartTime:   req.StartTime.Time,
			Camera:      req.Camera,
			TilesetURL:  req.TilesetURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPastStartTime):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Start time must be in the future"})
			case errors.Is(err, services.ErrInvalidPlanInput):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid plan fields"})
			default:
				logger.Log.Errorw("failed to create plan", "user_id", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newPlanResponse(plan))
	}
}
