package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers a trolley connection on the hub and pumps it until the
// peer disconnects. onMessage receives every inbound frame.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID uuid.UUID, onMessage InboundHandler) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, 256)}
	hub.Register(client)

	go client.writePump()
	client.readPump(onMessage) // Run readPump in current goroutine (handler)
}
