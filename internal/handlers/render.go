package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/facades"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// RenderPlanReader looks up the plan a render session is keyed by.
type RenderPlanReader interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*models.PlanDB, error)
}

// RenderControl is the client-side control message.
type RenderControl struct {
	Action string `json:"action"` // start_render or stop_render
}

type renderError struct {
	Type    string `json:"type"` // always "error"
	Message string `json:"message"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The relay is bearer-keyed by plan id; cross-origin browser clients
	// are expected.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewRenderRelayHandler returns a WebSocket handler that bridges a client
// to the external renderer for one plan. Disconnecting either side tears
// down the paired connection; no relay outlives its session.
func NewRenderRelayHandler(plans RenderPlanReader, newGateway func() facades.RendererGateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		planID, err := uuid.Parse(chi.URLParam(r, "plan_id"))
		if err != nil {
			http.Error(w, "invalid plan id", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Errorw("websocket upgrade failed", "plan_id", planID, "error", err)
			return
		}
		defer conn.Close()

		plan, err := plans.GetByID(ctx, planID)
		if err != nil || plan == nil {
			// Distinct close code so clients can tell a missing plan from
			// a transport failure.
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "plan not found")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			return
		}

		gateway := newGateway()
		defer gateway.Close()

		for {
			var control RenderControl
			if err := conn.ReadJSON(&control); err != nil {
				// Client gone; the deferred gateway close halts forwarding.
				logger.Log.Infow("render client disconnected", "plan_id", planID)
				return
			}

			switch control.Action {
			case "start_render":
				relayFrames(ctx, conn, gateway, plan)
			case "stop_render":
				_ = gateway.SendStop(ctx)
			}
		}
	}
}

// relayFrames runs one render session: sends the render request upstream
// and forwards frames to the client until either side ends the session.
func relayFrames(ctx context.Context, conn *websocket.Conn, gateway facades.RendererGateway, plan *models.PlanDB) {
	if err := gateway.Connect(ctx); err != nil {
		writeRenderError(conn, "renderer unavailable")
		return
	}

	// A plan already past its start renders the present instead.
	currentTime := plan.StartTime
	if now := time.Now(); plan.StartTime.Before(now) {
		currentTime = now
	}

	req := facades.RenderRequest{
		Camera:      plan.Camera,
		TilesetURL:  plan.TilesetURL,
		CurrentTime: currentTime.UTC().Format(time.RFC3339),
	}
	if err := gateway.SendRenderRequest(ctx, req); err != nil {
		writeRenderError(conn, "failed to start render")
		return
	}

	for {
		frame, err := gateway.ReceiveFrame(ctx)
		if err != nil {
			if errors.Is(err, facades.ErrRendererClosed) {
				writeRenderError(conn, "renderer connection closed")
			} else {
				writeRenderError(conn, "render error")
			}
			return
		}

		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			// Client write failed; stop upstream as well.
			return
		}
	}
}

func writeRenderError(conn *websocket.Conn, message string) {
	payload, _ := json.Marshal(renderError{Type: "error", Message: message})
	_ = conn.WriteMessage(websocket.TextMessage, payload)
}
