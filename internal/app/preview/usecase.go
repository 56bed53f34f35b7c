package preview

import (
	"context"
	"errors"

	"kaijuverse/internal/domain/rampage"
)

var ErrInvalidRequest = errors.New("invalid preview request")

type Placement struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Command string `json:"command"`
}

type Request struct {
	Layout         [][]string      `json:"layout"`
	Placements     []Placement     `json:"placements,omitempty"`
	Catalog        rampage.Catalog `json:"catalog,omitempty"`
	StartingBudget int             `json:"starting_budget,omitempty"`
}

type PlacementOutcome struct {
	Placement
	Accepted bool `json:"accepted"`
}

type Response struct {
	Initial         rampage.Snapshot   `json:"initial"`
	BudgetRemaining int                `json:"budget_remaining"`
	Placements      []PlacementOutcome `json:"placements"`
}

// UseCase parses a layout and applies placements without running a
// single turn, so operators can inspect the board and the budget they
// would start from.
type UseCase struct{}

func (UseCase) Execute(_ context.Context, req Request) (Response, error) {
	if len(req.Layout) == 0 {
		return Response{}, ErrInvalidRequest
	}

	sim, err := rampage.NewSimulator(req.Layout, rampage.Config{
		Catalog:        req.Catalog,
		StartingBudget: req.StartingBudget,
	})
	if err != nil {
		return Response{}, err
	}

	outcomes := make([]PlacementOutcome, 0, len(req.Placements))
	for _, p := range req.Placements {
		accepted := sim.PlaceCommand(p.X, p.Y, p.Command)
		outcomes = append(outcomes, PlacementOutcome{Placement: p, Accepted: accepted})
	}

	return Response{
		Initial:         sim.Snapshot(),
		BudgetRemaining: sim.BudgetRemaining(),
		Placements:      outcomes,
	}, nil
}
