package memory

import (
	"context"

	"kaijuverse/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, matchID string, events []ports.TurnEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[matchID] = append(r.store.events[matchID], events...)
	return nil
}

func (r EventRepo) ListByMatchID(_ context.Context, matchID string, limit int) ([]ports.TurnEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	events, ok := r.store.events[matchID]
	if !ok || len(events) == 0 {
		return nil, ports.ErrNotFound
	}
	out := append([]ports.TurnEvent(nil), events...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
