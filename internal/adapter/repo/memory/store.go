package memory

import (
	"sync"

	"kaijuverse/internal/app/ports"
)

// Store backs the memory repos. mu guards the maps; txMu serializes
// transactions so RunInTx keeps the exclusivity a DB transaction has
// without blocking plain reads.
type Store struct {
	mu      sync.RWMutex
	txMu    sync.Mutex
	matches map[string]ports.MatchRecord
	events  map[string][]ports.TurnEvent
}

func NewStore() *Store {
	return &Store{
		matches: make(map[string]ports.MatchRecord),
		events:  make(map[string][]ports.TurnEvent),
	}
}

func (s *Store) SeedMatch(record ports.MatchRecord, events []ports.TurnEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[record.MatchID] = record
	s.events[record.MatchID] = append([]ports.TurnEvent(nil), events...)
}
