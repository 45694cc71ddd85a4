package websocket

import (
	"log"
	"sync"

	"github.com/bkirwa/engagehub/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Post)

// RunHub fans new feed posts out to every connected client.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Feed client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Feed client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case post := <-Broadcast:
			clientsMu.RLock()
			stale := make([]uuid.UUID, 0)
			for userID, conn := range clients {
				if userID == post.AuthorID {
					continue
				}
				if err := conn.WriteJSON(post); err != nil {
					log.Printf("Error sending post to client %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}
