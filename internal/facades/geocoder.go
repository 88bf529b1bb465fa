package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// ErrUpstream covers timeouts, transport failures and non-2xx answers from
// third-party APIs. Handlers map it to a 500 with a message instead of
// leaking raw transport errors.
var ErrUpstream = errors.New("upstream service failure")

const defaultUpstreamTimeout = 10 * time.Second

// PositionTip is one suggestion returned by the location search.
type PositionTip struct {
	Name     string `json:"name"`
	District string `json:"district"`
	Location string `json:"location"` // "lon,lat"
}

// PositionResult is the location search answer.
type PositionResult struct {
	Status string        `json:"status"`
	Count  string        `json:"count"`
	Tips   []PositionTip `json:"tips"`
}

// GeocoderFacade resolves place names to coordinates through the Amap
// input-tips API.
type GeocoderFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewGeocoderFacade creates a facade with a bounded-timeout HTTP client.
func NewGeocoderFacade(apiKey, baseURL string) *GeocoderFacade {
	if baseURL == "" {
		baseURL = "https://restapi.amap.com/v3/assistant/inputtips"
	}
	return &GeocoderFacade{
		client:  &http.Client{Timeout: defaultUpstreamTimeout},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// SearchPosition runs a fuzzy place-name search and returns the raw tips.
func (f *GeocoderFacade) SearchPosition(ctx context.Context, name string) (*PositionResult, error) {
	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("keywords", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("position search request failed", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("position search bad status", "name", name, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var result PositionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	logger.Log.Infow("position search completed", "name", name, "count", result.Count)
	return &result, nil
}

// ResolveCoordinates returns the (lon, lat) of the best match for a place
// name, used by the assistant's search_location tool.
func (f *GeocoderFacade) ResolveCoordinates(ctx context.Context, name string) (lon, lat float64, err error) {
	result, err := f.SearchPosition(ctx, name)
	if err != nil {
		return 0, 0, err
	}
	if result.Status != "1" || len(result.Tips) == 0 {
		return 0, 0, fmt.Errorf("%w: no match for %q", ErrUpstream, name)
	}

	parts := strings.SplitN(result.Tips[0].Location, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: malformed location %q", ErrUpstream, result.Tips[0].Location)
	}
	lon, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	lat, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return lon, lat, nil
}
