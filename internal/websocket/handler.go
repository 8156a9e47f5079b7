package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers the connection with the hub and pumps it until it
// closes. initial, when non-nil, is the first frame sent to the client.
func ServeWs(hub *Hub, conn *websocket.Conn, sessionID uuid.UUID, initial []byte, onMessage MessageHandler) {
	client := NewClient(hub, conn, sessionID, onMessage)
	if !hub.join(client) {
		conn.Close()
		return
	}
	if initial != nil {
		client.trySend(initial)
	}

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
