// internal/server/hub.go
package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local dev server only; no origin check needed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks connected live-reload clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	log.Println("Live-reload client connected.")
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		log.Println("Live-reload client disconnected.")
	}
}

// broadcastMessage sends a message to every connected client, dropping
// clients whose connection has gone away.
func (h *Hub) broadcastMessage(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error writing to client: %v", err)
			client.Close()
			delete(h.clients, client)
		}
	}
}

// serveWs upgrades the connection and parks it until the browser
// disconnects. Clients never send meaningful messages; reading only
// detects the close.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	hub.register(conn)
	defer hub.unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
