package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"shuddhify/internal/infrastructure/websocket"
	"shuddhify/pkg/logger"

	"github.com/google/uuid"
)

type WebSocketHandler struct {
	manager  *websocket.Manager
	upgrader gorillaws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Feed is public read-only data; origin not restricted.
				return true
			},
		},
	}
}

// LiveFeed upgrades the connection and streams report lifecycle events.
func (h *WebSocketHandler) LiveFeed(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("websocket upgrade failed: %v", err)
		return err
	}

	client := &websocket.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 32),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
