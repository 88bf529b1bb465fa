package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/facades"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// PositionSearcher defines the interface that the geocoder facade must implement.
type PositionSearcher interface {
	SearchPosition(ctx context.Context, name string) (*facades.PositionResult, error)
}

// NewPositionHandler returns an HTTP handler proxying fuzzy place search.
// @Summary Place search
// @Description Stateless pass-through to the geocoding provider's fuzzy place search.
// @Tags util
// @Produce json
// @Param name query string true "Place name"
// @Success 200 {object} object "Search result, provider-shaped"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 500 {object} handlers.ErrorResponse "Upstream failure"
// @Router /util/position [get]
func NewPositionHandler(facade PositionSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "name is required"})
			return
		}

		result, err := facade.SearchPosition(r.Context(), name)
		if err != nil {
			logger.Log.Errorw("position search failed", "name", name, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Position service unavailable"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
