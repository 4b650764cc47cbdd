package handler

import (
	"errors"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jobboard/internal/hub"
)

// wsClient serializes writes to a single websocket connection. Broadcasts
// and keepalive echoes run on different goroutines.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsClient) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

func (w *wsClient) writeMessage(messageType int, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteMessage(messageType, data)
}

// WSUpgrade rejects plain HTTP requests on the websocket endpoint.
func WSUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return writeError(c, fiber.StatusUpgradeRequired, "UPGRADE_REQUIRED", "websocket upgrade required")
		}
		return c.Next()
	}
}

// AdminWS registers the connection in the hub and keeps it alive until
// the peer hangs up. Text frames are acknowledged so dashboards can use
// them as keepalives.
func AdminWS(h *hub.Hub, log *zap.Logger) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &wsClient{conn: conn}
		if err := h.Register(client); err != nil {
			if errors.Is(err, hub.ErrFull) {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many connections"))
			}
			conn.Close()
			return
		}
		defer h.Unregister(client)

		for {
			mt, _, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt == websocket.TextMessage {
				if err := client.writeMessage(websocket.TextMessage, []byte("ok")); err != nil {
					log.Debug("keepalive ack failed", zap.Error(err))
					return
				}
			}
		}
	})
}
