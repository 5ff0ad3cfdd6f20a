package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"smart-trolley-be/internal/pkg/logger"
)

const clusterChannel = "trolley_events"

type Hub struct {
	// Registered clients map: SessionID -> List of Clients (tablet plus
	// any mirrored companion devices)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, nil when not configured
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

// Register queues a connection for tracking by the hub loop.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a connection for removal. The hub loop is the single
// owner of close(client.Send); nothing else may close that channel.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount reports how many connections a session currently has.
func (h *Hub) ClientCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast delivers a bus event to connected trolleys. When the payload
// carries a session_id the delivery is scoped to that session, otherwise
// every connected client receives it.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, _ := json.Marshal(map[string]interface{}{
		"type": event,
		"data": data,
	})

	target := "*"
	if m, ok := data.(map[string]interface{}); ok {
		if sid, ok := m["session_id"].(string); ok && sid != "" {
			target = sid
		}
	}

	h.deliverLocal(target, payload)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"target_session_id": target,
			"message":           json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), clusterChannel, envelope)
	}
}

// SendToSession pushes an already composed message to one session's clients.
func (h *Hub) SendToSession(sessionID uuid.UUID, payload []byte) {
	h.deliverLocal(sessionID.String(), payload)
}

// SendToClient replies on a single connection. The registration check runs
// under the hub lock, the same lock the unregister branch closes Send under,
// so the reply can never race a concurrent close.
func (h *Hub) SendToClient(client *Client, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients[client.SessionID] {
		if c == client {
			h.push(c, payload)
			return
		}
	}
}

func (h *Hub) deliverLocal(target string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if target == "*" {
		for _, clients := range h.clients {
			for _, client := range clients {
				h.push(client, payload)
			}
		}
		return
	}

	sid, err := uuid.Parse(target)
	if err != nil {
		return
	}
	for _, client := range h.clients[sid] {
		h.push(client, payload)
	}
}

// push enqueues a payload, dropping the connection when its buffer is full.
// Only the unregister branch in Run closes Send, so a stalled client that
// trips this path more than once before Run drains the queue is harmless.
func (h *Hub) push(client *Client, payload []byte) {
	select {
	case client.Send <- payload:
	default:
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"session_id": client.SessionID})
		go func() { h.unregister <- client }()
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.deliverLocal(envelope.TargetSessionID, envelope.Message)
	}
}
