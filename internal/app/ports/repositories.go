package ports

import (
	"context"
	"time"

	"kaijuverse/internal/domain/rampage"
)

// MatchRecord is the persisted outcome of one simulated match.
type MatchRecord struct {
	MatchID     string
	FinalScore  int
	TurnsPlayed int
	BedArrivals int
	Cats        []rampage.CatView
	CreatedAt   time.Time
}

type MatchRepository interface {
	Save(ctx context.Context, record MatchRecord) error
	GetByMatchID(ctx context.Context, matchID string) (MatchRecord, error)
	List(ctx context.Context, limit int) ([]MatchRecord, error)
}

// TurnEvent is one entry of a match's turn feed; turn 0 is the initial
// state before any movement.
type TurnEvent struct {
	Turn       int
	OccurredAt time.Time
	Snapshot   rampage.Snapshot
}

type EventRepository interface {
	Append(ctx context.Context, matchID string, events []TurnEvent) error
	ListByMatchID(ctx context.Context, matchID string, limit int) ([]TurnEvent, error)
}
