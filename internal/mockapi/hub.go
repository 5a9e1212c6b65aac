package mockapi

import (
	"encoding/json"
	"sync"

	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
)

// Hub fans mock backend events out to connected websocket clients, keyed by
// user id with multi-device support. Single process, so there is no
// cross-instance relay.
type Hub struct {
	clients map[string][]*wsClient

	register   chan *wsClient
	unregister chan *wsClient
	done       chan struct{}

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		done:       make(chan struct{}),
		clients:    make(map[string][]*wsClient),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userId] = append(h.clients[client.userId], client)
			h.mu.Unlock()
			h.logger.Info("HUB", "Client registered", map[string]interface{}{"user_id": client.userId})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.userId]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.userId] = append(clients[:i], clients[i+1:]...)
						close(client.send)
						break
					}
				}
				if len(h.clients[client.userId]) == 0 {
					delete(h.clients, client.userId)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			return
		}
	}
}

func (h *Hub) Close() {
	close(h.done)
}

// Broadcast pushes a typed payload to every connected client.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.send <- data:
			default:
				h.logger.Warn("HUB", "Client send buffer full, dropping client", map[string]interface{}{"user_id": client.userId})
			}
		}
	}
}

// Send pushes a typed payload to one user's connections.
func (h *Hub) Send(userId, eventType string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[userId] {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("HUB", "Client send buffer full, dropping message", map[string]interface{}{"user_id": userId})
		}
	}
}
