package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/models"
)

const writeWait = 5 * time.Second

// Hub fans new orders out to every connected admin screen.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]*sync.Mutex
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// Admin routes are already behind the API key.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// OrderWebSocketHandler keeps the connection open until the client leaves.
// Anything the client sends is ignored.
func (h *Hub) OrderWebSocketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("⚠️ websocket upgrade failed", zap.Error(err))
			return
		}
		h.add(conn)
		defer h.remove(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// Broadcast sends order to every client. Clients that fail are dropped.
func (h *Hub) Broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		h.logger.Error("❌ failed to encode order for feed", zap.Error(err))
		return
	}

	// Writes happen outside h.mu so a slow client does not block
	// connects and disconnects. Each conn allows one writer at a time.
	h.mu.Lock()
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for conn, writeMu := range h.clients {
		targets[conn] = writeMu
	}
	h.mu.Unlock()

	for conn, writeMu := range targets {
		writeMu.Lock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := conn.WriteMessage(websocket.TextMessage, data)
		writeMu.Unlock()
		if err != nil {
			h.logger.Debug("dropping order feed client", zap.Error(err))
			h.remove(conn)
		}
	}
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = &sync.Mutex{}
	h.mu.Unlock()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}
