package ws

import (
	"log"
	"sync"

	"kaijuverse/internal/domain/rampage"
)

type turnMessage struct {
	Type     string           `json:"type"`
	MatchID  string           `json:"match_id"`
	Snapshot rampage.Snapshot `json:"snapshot"`
}

// Hub fans each turn snapshot out to every connected viewer.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	conns  map[int]*Connection
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[int]*Connection),
	}
}

func (h *Hub) Add(conn *Connection) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.conns[id] = conn
	return id
}

// Remove unregisters a viewer and closes its outbound queue so the
// write pump exits instead of leaking.
func (h *Hub) Remove(id int) {
	h.mu.Lock()
	conn, ok := h.conns[id]
	delete(h.conns, id)
	h.mu.Unlock()

	if ok {
		conn.Close()
	}
}

func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// BroadcastTurn pushes one turn snapshot of a running match to all viewers.
func (h *Hub) BroadcastTurn(matchID string, snap rampage.Snapshot) {
	msg := turnMessage{
		Type:     "turn",
		MatchID:  matchID,
		Snapshot: snap,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, conn := range h.conns {
		if err := conn.SendMessage(msg); err != nil {
			log.Printf("ws broadcast to viewer %d: %v", id, err)
		}
	}
}
