package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPosition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "lighthouse", r.URL.Query().Get("keywords"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"1","count":"2","tips":[` +
			`{"name":"Old Lighthouse","district":"Harbor District","location":"116.40,39.90"},` +
			`{"name":"New Lighthouse","district":"Bay District","location":"121.47,31.23"}]}`))
	}))
	defer srv.Close()

	facade := NewGeocoderFacade("test-key", srv.URL)

	result, err := facade.SearchPosition(context.Background(), "lighthouse")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "1", result.Status)
	require.Len(t, result.Tips, 2)
	assert.Equal(t, "Old Lighthouse", result.Tips[0].Name)
	assert.Equal(t, "116.40,39.90", result.Tips[0].Location)
}

func TestSearchPosition_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	facade := NewGeocoderFacade("test-key", srv.URL)

	result, err := facade.SearchPosition(context.Background(), "lighthouse")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Nil(t, result)
}

func TestSearchPosition_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	facade := NewGeocoderFacade("test-key", srv.URL)

	_, err := facade.SearchPosition(context.Background(), "lighthouse")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestResolveCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","count":"1","tips":[{"name":"Pier 7","location":"116.40,39.90"}]}`))
	}))
	defer srv.Close()

	facade := NewGeocoderFacade("test-key", srv.URL)

	lon, lat, err := facade.ResolveCoordinates(context.Background(), "Pier 7")
	assert.NoError(t, err)
	assert.InDelta(t, 116.40, lon, 1e-9)
	assert.InDelta(t, 39.90, lat, 1e-9)
}

func TestResolveCoordinates_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","count":"0","tips":[]}`))
	}))
	defer srv.Close()

	facade := NewGeocoderFacade("test-key", srv.URL)

	_, _, err := facade.ResolveCoordinates(context.Background(), "nowhere at all")
	assert.Error(t, err)
}

func TestResolveCoordinates_MalformedLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","count":"1","tips":[{"name":"Pier 7","location":"not-a-point"}]}`))
	}))
	defer srv.Close()

	facade := NewGeocoderFacade("test-key", srv.URL)

	_, _, err := facade.ResolveCoordinates(context.Background(), "Pier 7")
	assert.Error(t, err)
}
