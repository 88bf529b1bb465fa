package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// ErrRendererClosed is returned by ReceiveFrame when the renderer has
// finished or dropped the session.
var ErrRendererClosed = errors.New("renderer connection closed")

// RenderRequest is the message sent upstream to start a render session.
type RenderRequest struct {
	Camera      models.Camera `json:"camera"`
	TilesetURL  string        `json:"tileset_url"`
	CurrentTime string        `json:"current_time"`
}

// StopRequest tells the renderer to abort the session.
type StopRequest struct {
	Action string `json:"action"` // always "stop"
}

// RendererGateway is the boundary to the external render service: one
// production adapter speaks WebSocket, one stub serves tests.
type RendererGateway interface {
	Connect(ctx context.Context) error
	SendRenderRequest(ctx context.Context, req RenderRequest) error
	SendStop(ctx context.Context) error
	ReceiveFrame(ctx context.Context) ([]byte, error)
	Close() error
}

// WebSocketRendererGateway is the production adapter.
type WebSocketRendererGateway struct {
	url  string
	conn *websocket.Conn
}

func NewWebSocketRendererGateway(url string) *WebSocketRendererGateway {
	return &WebSocketRendererGateway{url: url}
}

// Connect dials the renderer with a bounded handshake timeout.
func (g *WebSocketRendererGateway) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: defaultUpstreamTimeout}
	conn, _, err := dialer.DialContext(ctx, g.url, nil)
	if err != nil {
		logger.Log.Errorw("renderer dial failed", "url", g.url, "error", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	g.conn = conn
	return nil
}

func (g *WebSocketRendererGateway) SendRenderRequest(ctx context.Context, req RenderRequest) error {
	if g.conn == nil {
		return ErrRendererClosed
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return g.conn.WriteMessage(websocket.TextMessage, data)
}

func (g *WebSocketRendererGateway) SendStop(ctx context.Context) error {
	if g.conn == nil {
		return ErrRendererClosed
	}
	data, _ := json.Marshal(StopRequest{Action: "stop"})
	return g.conn.WriteMessage(websocket.TextMessage, data)
}

// ReceiveFrame blocks until the next frame arrives. A closed upstream is
// reported as ErrRendererClosed, the relay's terminal event.
func (g *WebSocketRendererGateway) ReceiveFrame(ctx context.Context) ([]byte, error) {
	if g.conn == nil {
		return nil, ErrRendererClosed
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = g.conn.SetReadDeadline(deadline)
	}
	_, data, err := g.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil, ErrRendererClosed
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return data, nil
}

func (g *WebSocketRendererGateway) Close() error {
	if g.conn == nil {
		return nil
	}
	err := g.conn.Close()
	g.conn = nil
	return err
}

// StubRendererGateway is the test adapter: it emits a bounded sequence of
// synthetic frames without any network.
type StubRendererGateway struct {
	mu         sync.Mutex
	connected  bool
	frameCount int
	maxFrames  int
	stopped    bool
}

func NewStubRendererGateway(maxFrames int) *StubRendererGateway {
	if maxFrames <= 0 {
		maxFrames = 100
	}
	return &StubRendererGateway{maxFrames: maxFrames}
}

func (g *StubRendererGateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.connected = true
	g.frameCount = 0
	g.stopped = false
	return nil
}

func (g *StubRendererGateway) SendRenderRequest(ctx context.Context, req RenderRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected {
		return ErrRendererClosed
	}
	g.frameCount = 0
	return nil
}

func (g *StubRendererGateway) SendStop(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
	return nil
}

func (g *StubRendererGateway) ReceiveFrame(ctx context.Context) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected || g.stopped {
		return nil, ErrRendererClosed
	}
	g.frameCount++
	if g.frameCount > g.maxFrames {
		return nil, ErrRendererClosed
	}
	frame := map[string]any{
		"type":         "frame",
		"frame_number": g.frameCount,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	}
	return json.Marshal(frame)
}

func (g *StubRendererGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.connected = false
	return nil
}
