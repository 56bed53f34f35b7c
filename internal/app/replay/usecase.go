package replay

import (
	"context"
	"errors"
	"strings"
	"time"

	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/domain/rampage"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type Request struct {
	MatchID string
	Limit   int
}

type TurnView struct {
	Turn       int              `json:"turn"`
	OccurredAt time.Time        `json:"occurred_at"`
	Snapshot   rampage.Snapshot `json:"snapshot"`
}

type Response struct {
	MatchID     string            `json:"match_id"`
	FinalScore  int               `json:"final_score"`
	TurnsPlayed int               `json:"turns_played"`
	BedArrivals int               `json:"bed_arrivals"`
	CreatedAt   time.Time         `json:"created_at"`
	Turns       []TurnView        `json:"turns"`
	FinalState  []rampage.CatView `json:"final_state"`
}

type UseCase struct {
	Matches ports.MatchRepository
	Events  ports.EventRepository
}

// Execute loads a stored match and its turn feed. The final cat state
// is taken from the feed's last snapshot, so a replay reconstructs the
// same end state the match reported.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.MatchID) == "" {
		return Response{}, ErrInvalidRequest
	}

	record, err := u.Matches.GetByMatchID(ctx, req.MatchID)
	if err != nil {
		return Response{}, err
	}
	events, err := u.Events.ListByMatchID(ctx, req.MatchID, req.Limit)
	if err != nil {
		return Response{}, err
	}

	turns := make([]TurnView, 0, len(events))
	for _, evt := range events {
		turns = append(turns, TurnView{
			Turn:       evt.Turn,
			OccurredAt: evt.OccurredAt,
			Snapshot:   evt.Snapshot,
		})
	}

	finalState := record.Cats
	if len(turns) > 0 {
		finalState = turns[len(turns)-1].Snapshot.Cats
	}

	return Response{
		MatchID:     record.MatchID,
		FinalScore:  record.FinalScore,
		TurnsPlayed: record.TurnsPlayed,
		BedArrivals: record.BedArrivals,
		CreatedAt:   record.CreatedAt,
		Turns:       turns,
		FinalState:  finalState,
	}, nil
}

type MatchSummary struct {
	MatchID     string    `json:"match_id"`
	FinalScore  int       `json:"final_score"`
	TurnsPlayed int       `json:"turns_played"`
	BedArrivals int       `json:"bed_arrivals"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recent lists the most recently finished matches, newest first.
func (u UseCase) Recent(ctx context.Context, limit int) ([]MatchSummary, error) {
	records, err := u.Matches.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]MatchSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, MatchSummary{
			MatchID:     rec.MatchID,
			FinalScore:  rec.FinalScore,
			TurnsPlayed: rec.TurnsPlayed,
			BedArrivals: rec.BedArrivals,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return out, nil
}
