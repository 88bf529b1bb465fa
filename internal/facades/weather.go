package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// WeatherFacade fetches historical/forecast weather for a point in time
// through the OpenWeather timemachine API.
type WeatherFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewWeatherFacade creates a facade with a bounded-timeout HTTP client.
func NewWeatherFacade(apiKey, baseURL string) *WeatherFacade {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/3.0/onecall/timemachine"
	}
	return &WeatherFacade{
		client:  &http.Client{Timeout: defaultUpstreamTimeout},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// GetWeather returns the upstream answer verbatim. The payload shape is
// owned by the provider, so it is passed through as raw JSON.
func (f *WeatherFacade) GetWeather(ctx context.Context, lat, lon float64, dt int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("dt", strconv.FormatInt(dt, 10))
	params.Set("appid", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("weather request failed", "lat", lat, "lon", lon, "dt", dt, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("weather bad status", "lat", lat, "lon", lon, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	logger.Log.Infow("weather query completed", "lat", lat, "lon", lon, "dt", dt)
	return payload, nil
}
