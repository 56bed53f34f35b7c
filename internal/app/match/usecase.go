package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/domain/rampage"
)

var ErrInvalidRequest = errors.New("invalid match request")

// Broadcaster pushes turn snapshots to live viewers. Optional.
type Broadcaster interface {
	BroadcastTurn(matchID string, snap rampage.Snapshot)
}

type UseCase struct {
	Matches   ports.MatchRepository
	Events    ports.EventRepository
	TxManager ports.TxManager
	Metrics   ports.MatchMetrics
	Feed      Broadcaster
	Now       func() time.Time

	// Server-level overrides used when a request leaves them unset.
	DefaultTurnLimit int
	DefaultBudget    int
}

// Execute builds a simulator from the request, applies every command
// placement before turn 1, runs the match to completion, and persists
// the result together with its turn feed in one transaction.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if len(req.Layout) == 0 {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	if req.TurnLimit == 0 {
		req.TurnLimit = u.DefaultTurnLimit
	}
	if req.StartingBudget == 0 {
		req.StartingBudget = u.DefaultBudget
	}

	sim, err := rampage.NewSimulator(req.Layout, rampage.Config{
		Catalog:        req.Catalog,
		StartingBudget: req.StartingBudget,
		TurnLimit:      req.TurnLimit,
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	outcomes := make([]PlacementOutcome, 0, len(req.Placements))
	for _, p := range req.Placements {
		accepted := sim.PlaceCommand(p.X, p.Y, p.Command)
		outcomes = append(outcomes, PlacementOutcome{Placement: p, Accepted: accepted})
		if u.Metrics != nil {
			if accepted {
				u.Metrics.RecordPlacementAccepted()
			} else {
				u.Metrics.RecordPlacementRejected()
			}
		}
	}

	matchID := fmt.Sprintf("match-%d", nowFn().UnixNano())

	turns := make([]rampage.Snapshot, 0, sim.TurnLimit()+1)
	score := sim.Run(func(snap rampage.Snapshot) {
		turns = append(turns, snap)
		if u.Feed != nil {
			u.Feed.BroadcastTurn(matchID, snap)
		}
	})

	final := sim.Snapshot()
	record := ports.MatchRecord{
		MatchID:     matchID,
		FinalScore:  score,
		TurnsPlayed: sim.Turn(),
		BedArrivals: final.BedArrivals,
		Cats:        final.Cats,
		CreatedAt:   nowFn(),
	}

	events := make([]ports.TurnEvent, 0, len(turns))
	for _, snap := range turns {
		events = append(events, ports.TurnEvent{
			Turn:       snap.Turn,
			OccurredAt: record.CreatedAt,
			Snapshot:   snap,
		})
	}

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Matches.Save(txCtx, record); err != nil {
			return err
		}
		return u.Events.Append(txCtx, matchID, events)
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordMatch(score, sim.Turn())
	}

	return Response{
		MatchID:         matchID,
		FinalScore:      score,
		TurnsPlayed:     sim.Turn(),
		BedArrivals:     final.BedArrivals,
		BudgetRemaining: sim.BudgetRemaining(),
		Placements:      outcomes,
		Cats:            final.Cats,
		Turns:           turns,
	}, nil
}
