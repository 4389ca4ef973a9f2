package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"shuddhify/pkg/logger"
)

// Client represents one connected map view.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// FeedEvent is the wire shape of every message on the live report feed.
type FeedEvent struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Manager fans report lifecycle events out to all connected feed clients.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("feed client connected: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("feed client disconnected: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for id, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, id)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Publish broadcasts a feed event to every connected client. Implements the
// use case layer's FeedPublisher.
func (m *Manager) Publish(event string, payload interface{}) {
	message, err := json.Marshal(FeedEvent{
		Type:      event,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to encode feed event %s: %v", event, err)
		return
	}

	select {
	case m.broadcast <- message:
	default:
		logger.Warn("feed broadcast channel full, dropping %s event", event)
	}
}

// ReadPump drains the connection until the client goes away.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("feed read error: %v", err)
			}
			break
		}
		// The feed is one-way; inbound messages are ignored.
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("feed write error: %v", err)
			return
		}
	}
}
