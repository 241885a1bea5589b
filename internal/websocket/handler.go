package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers a new client connection with the hub and starts its
// read and write pumps. Blocks until the connection closes.
func ServeWs(hub *Hub, c *websocket.Conn, userId uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, UserId: userId, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
