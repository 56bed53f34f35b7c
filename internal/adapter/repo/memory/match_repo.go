package memory

import (
	"context"
	"sort"

	"kaijuverse/internal/app/ports"
)

type MatchRepo struct {
	store *Store
}

func NewMatchRepo(store *Store) MatchRepo {
	return MatchRepo{store: store}
}

func (r MatchRepo) Save(_ context.Context, record ports.MatchRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.matches[record.MatchID]; exists {
		return ports.ErrConflict
	}
	r.store.matches[record.MatchID] = record
	return nil
}

func (r MatchRepo) GetByMatchID(_ context.Context, matchID string) (ports.MatchRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.matches[matchID]
	if !ok {
		return ports.MatchRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r MatchRepo) List(_ context.Context, limit int) ([]ports.MatchRecord, error) {
	r.store.mu.RLock()
	out := make([]ports.MatchRecord, 0, len(r.store.matches))
	for _, record := range r.store.matches {
		out = append(out, record)
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
