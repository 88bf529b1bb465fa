package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// PlanLister defines the interface that the service must implement.
type PlanLister interface {
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.PlanDB, error)
}

// NewListPlansHandler returns an HTTP handler for listing the caller's plans.
// @Summary List shoot plans
// @Description Returns the caller's plans, paginated by skip/limit.
// @Tags plans
// @Produce json
// @Param skip query int false "Number of plans to skip" default(0)
// @Param limit query int false "Maximum number of plans to return" default(100)
// @Success 200 {array} handlers.PlanResponse "Plans"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /plans [get]
// @Security BearerAuth
func NewListPlansHandler(svc PlanLister, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil {
			limit = 100
		}

		plans, err := svc.List(r.Context(), claims.UserID, skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list plans", "user_id", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]PlanResponse, 0, len(plans))
		for i := range plans {
			resp = append(resp, newPlanResponse(&plans[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
