package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades HTTP requests and registers viewers with the hub.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ws upgrade: %v", err)
			return
		}

		c := NewConnection(conn)
		id := hub.Add(c)

		go c.WritePump()
		c.ReadPump(func() {
			hub.Remove(id)
		})
	}
}

// ListenAndServe runs the live-feed listener on its own address.
func ListenAndServe(addr string, hub *Hub) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/feed", Handler(hub))
	return http.ListenAndServe(addr, mux)
}
