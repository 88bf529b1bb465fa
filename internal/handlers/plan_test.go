package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	appjwt "github.com/dreamcatcher-app/dreamcatcher-server/internal/jwt"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/services"
)

// expectClaims wires the tokener mock to authenticate the request as userID.
func expectClaims(m *MockClaimsTokener, userID uuid.UUID) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.EXPECT().GetClaims(gomock.Any(), "token").Return(&appjwt.Claims{UserID: userID}, nil)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func samplePlan(planID, userID uuid.UUID) *models.PlanDB {
	return &models.PlanDB{
		PlanID:     planID,
		Name:       "pier sunrise",
		StartTime:  time.Date(2026, 1, 2, 6, 30, 0, 0, time.UTC),
		Camera:     models.Camera{FocalLength: 35, Position: [3]float64{1, 2, 3}, Rotation: [4]float64{0, 0, 0, 1}},
		TilesetURL: "https://tiles.example.com/a.json",
		UserID:     userID,
	}
}

func TestGetPlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planID := uuid.New()
	userID := uuid.New()

	t.Run("owned plan", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), planID, userID).Return(samplePlan(planID, userID), nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/plans/"+planID.String(), nil), "id", planID.String())
		rr := httptest.NewRecorder()
		NewGetPlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp PlanResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, planID, resp.ID)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("missing or foreign plan", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), planID, userID).Return(nil, services.ErrPlanNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/plans/"+planID.String(), nil), "id", planID.String())
		rr := httptest.NewRecorder()
		NewGetPlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid plan id", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanGetter(ctrl)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/plans/nope", nil), "id", "nope")
		rr := httptest.NewRecorder()
		NewGetPlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))
		svc := NewMockPlanGetter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/plans/"+planID.String(), nil)
		rr := httptest.NewRecorder()
		NewGetPlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListPlansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("pagination params forwarded", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanLister(ctrl)
		svc.EXPECT().
			List(gomock.Any(), userID, 5, 20).
			Return([]models.PlanDB{*samplePlan(uuid.New(), userID)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/plans?skip=5&limit=20", nil)
		rr := httptest.NewRecorder()
		NewListPlansHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []PlanResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID, 0, 100).Return([]models.PlanDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/plans", nil)
		rr := httptest.NewRecorder()
		NewListPlansHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestCreatePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	body := `{
		"name": "pier sunrise",
		"start_time": "2026-01-02T06:30:00Z",
		"camera": {"focal_length": 35, "position": [1,2,3], "rotation": [0,0,0,1]},
		"tileset_url": "https://tiles.example.com/a.json"
	}`

	t.Run("created", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanCreator(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, uid uuid.UUID, draft models.PlanCreate) (*models.PlanDB, error) {
				assert.Equal(t, "pier sunrise", draft.Name)
				assert.Equal(t, 35.0, draft.Camera.FocalLength)
				plan := samplePlan(uuid.New(), uid)
				return plan, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp PlanResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("zone-less start time read as utc", func(t *testing.T) {
		naiveBody := `{
			"name": "pier sunrise",
			"start_time": "2099-01-01T10:00:00",
			"camera": {"focal_length": 35, "position": [1,2,3], "rotation": [0,0,0,1]},
			"tileset_url": "https://tiles.example.com/a.json"
		}`

		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanCreator(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, uid uuid.UUID, draft models.PlanCreate) (*models.PlanDB, error) {
				assert.True(t, time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC).Equal(draft.StartTime))
				return samplePlan(uuid.New(), uid), nil
			})

		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(naiveBody))
		rr := httptest.NewRecorder()
		NewCreatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("past start time", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanCreator(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), userID, gomock.Any()).
			Return(nil, services.ErrPastStartTime)

		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		NewCreatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Start time must be in the future", resp.Error)
	})

	t.Run("invalid json", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanCreator(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString("{invalid"))
		rr := httptest.NewRecorder()
		NewCreatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdatePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planID := uuid.New()
	userID := uuid.New()

	t.Run("partial patch forwarded", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), planID, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch models.PlanPatch) (*models.PlanDB, error) {
				assert.NotNil(t, patch.Name)
				assert.Equal(t, "renamed", *patch.Name)
				assert.Nil(t, patch.StartTime)
				plan := samplePlan(planID, userID)
				plan.Name = *patch.Name
				return plan, nil
			})

		req := withURLParam(
			httptest.NewRequest(http.MethodPatch, "/plans/"+planID.String(), bytes.NewBufferString(`{"name":"renamed"}`)),
			"id", planID.String())
		rr := httptest.NewRecorder()
		NewUpdatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp PlanResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "renamed", resp.Name)
	})

	t.Run("zone-less start time read as utc", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), planID, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch models.PlanPatch) (*models.PlanDB, error) {
				assert.NotNil(t, patch.StartTime)
				assert.True(t, time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC).Equal(*patch.StartTime))
				return samplePlan(planID, userID), nil
			})

		req := withURLParam(
			httptest.NewRequest(http.MethodPatch, "/plans/"+planID.String(), bytes.NewBufferString(`{"start_time":"2099-01-01T10:00:00"}`)),
			"id", planID.String())
		rr := httptest.NewRecorder()
		NewUpdatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("sent user_id is ignored", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), planID, userID, gomock.Any()).
			Return(samplePlan(planID, userID), nil)

		body := `{"name":"renamed","user_id":"` + uuid.NewString() + `"}`
		req := withURLParam(
			httptest.NewRequest(http.MethodPatch, "/plans/"+planID.String(), bytes.NewBufferString(body)),
			"id", planID.String())
		rr := httptest.NewRecorder()
		NewUpdatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp PlanResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), planID, userID, gomock.Any()).
			Return(nil, services.ErrPlanNotFound)

		req := withURLParam(
			httptest.NewRequest(http.MethodPatch, "/plans/"+planID.String(), bytes.NewBufferString(`{"name":"renamed"}`)),
			"id", planID.String())
		rr := httptest.NewRecorder()
		NewUpdatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("past start time", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), planID, userID, gomock.Any()).
			Return(nil, services.ErrPastStartTime)

		req := withURLParam(
			httptest.NewRequest(http.MethodPatch, "/plans/"+planID.String(), bytes.NewBufferString(`{"start_time":"2020-01-01T00:00:00Z"}`)),
			"id", planID.String())
		rr := httptest.NewRecorder()
		NewUpdatePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestDeletePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planID := uuid.New()
	userID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), planID, userID).Return(true, nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/plans/"+planID.String(), nil), "id", planID.String())
		rr := httptest.NewRecorder()
		NewDeletePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("absent", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), planID, userID).Return(false, nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/plans/"+planID.String(), nil), "id", planID.String())
		rr := httptest.NewRecorder()
		NewDeletePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		tokener := NewMockClaimsTokener(ctrl)
		expectClaims(tokener, userID)
		svc := NewMockPlanDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), planID, userID).Return(false, errors.New("db failure"))

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/plans/"+planID.String(), nil), "id", planID.String())
		rr := httptest.NewRecorder()
		NewDeletePlanHandler(svc, tokener)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
