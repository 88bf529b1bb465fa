package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// WeatherGetter defines the interface that the weather facade must implement.
type WeatherGetter interface {
	GetWeather(ctx context.Context, lat, lon float64, dt int64) (json.RawMessage, error)
}

// NewWeatherHandler returns an HTTP handler proxying the weather lookup.
// @Summary Weather lookup
// @Description Stateless pass-through to the weather provider for a coordinate and Unix timestamp.
// @Tags util
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param dt query integer true "Unix timestamp"
// @Success 200 {object} object "Weather payload, provider-shaped"
// @Failure 400 {object} handlers.ErrorResponse "Malformed coordinates"
// @Failure 500 {object} handlers.ErrorResponse "Upstream failure"
// @Router /util/weather [get]
func NewWeatherHandler(facade WeatherGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
		dt, dtErr := strconv.ParseInt(q.Get("dt"), 10, 64)
		if latErr != nil || lonErr != nil || dtErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "lat, lon and dt are required"})
			return
		}

		payload, err := facade.GetWeather(r.Context(), lat, lon, dt)
		if err != nil {
			logger.Log.Errorw("weather lookup failed", "lat", lat, "lon", lon, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Weather service unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}
