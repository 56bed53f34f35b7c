package match

import "kaijuverse/internal/domain/rampage"

// Placement is one operator command placement, applied before turn 1.
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
	TurnLimit      int             `json:"turn_limit,omitempty"`
}

type PlacementOutcome struct {
	Placement
	Accepted bool `json:"accepted"`
}

type Response struct {
	MatchID         string             `json:"match_id"`
	FinalScore      int                `json:"final_score"`
	TurnsPlayed     int                `json:"turns_played"`
	BedArrivals     int                `json:"bed_arrivals"`
	BudgetRemaining int                `json:"budget_remaining"`
	Placements      []PlacementOutcome `json:"placements"`
	Cats            []rampage.CatView  `json:"cats"`
	Turns           []rampage.Snapshot `json:"turns"`
}
