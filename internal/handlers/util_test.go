package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/facades"
)

func TestWeatherHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockWeatherGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "success",
			query: "lat=39.9&lon=116.4&dt=1750000000",
			mockSetup: func(m *MockWeatherGetter) {
				m.EXPECT().
					GetWeather(gomock.Any(), 39.9, 116.4, int64(1750000000)).
					Return(json.RawMessage(`{"data":[{"temp":288.15}]}`), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":[{"temp":288.15}]}`,
		},
		{
			name:         "missing params",
			query:        "lat=39.9",
			mockSetup:    func(m *MockWeatherGetter) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "upstream failure",
			query: "lat=39.9&lon=116.4&dt=1750000000",
			mockSetup: func(m *MockWeatherGetter) {
				m.EXPECT().
					GetWeather(gomock.Any(), 39.9, 116.4, int64(1750000000)).
					Return(nil, errors.New("upstream down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := NewMockWeatherGetter(ctrl)
			tt.mockSetup(facade)

			handler := NewWeatherHandler(facade)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/util/weather?"+tt.query, nil)
			w := httptest.NewRecorder()
			handler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestTileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		facade := NewMockTileURLBuilder(ctrl)
		facade.EXPECT().
			TileURL(421, 193, 9).
			Return("http://tiles.example.com/wmts?TILEMATRIX=9")

		handler := NewTileHandler(facade)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/util/tile?x=421&y=193&z=9", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp TileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "http://tiles.example.com/wmts?TILEMATRIX=9", resp.URL)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		facade := NewMockTileURLBuilder(ctrl)

		handler := NewTileHandler(facade)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/util/tile?x=421&y=193", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPositionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		facade := NewMockPositionSearcher(ctrl)
		facade.EXPECT().
			SearchPosition(gomock.Any(), "lighthouse").
			Return(&facades.PositionResult{
				Status: "1",
				Count:  "1",
				Tips:   []facades.PositionTip{{Name: "Old Lighthouse", Location: "116.40,39.90"}},
			}, nil)

		handler := NewPositionHandler(facade)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/util/position?name=lighthouse", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp facades.PositionResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Tips, 1)
		assert.Equal(t, "Old Lighthouse", resp.Tips[0].Name)
	})

	t.Run("missing name", func(t *testing.T) {
		facade := NewMockPositionSearcher(ctrl)

		handler := NewPositionHandler(facade)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/util/position", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		facade := NewMockPositionSearcher(ctrl)
		facade.EXPECT().
			SearchPosition(gomock.Any(), "lighthouse").
			Return(nil, errors.New("upstream down"))

		handler := NewPositionHandler(facade)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/util/position?name=lighthouse", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
