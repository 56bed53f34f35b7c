package rampage

import (
	"reflect"
	"testing"
)

func mustSimulator(t *testing.T, layout [][]string, cfg Config) *Simulator {
	t.Helper()
	s, err := NewSimulator(layout, cfg)
	if err != nil {
		t.Fatalf("NewSimulator error: %v", err)
	}
	return s
}

func TestPlaceCommand_ValidTargetsOnly(t *testing.T) {
	s := mustSimulator(t, [][]string{
		{"C_R_S", "B", "E", "C_R_E"},
		{"C_G_S", "BS", "E", "C_G_E"},
	}, Config{})

	if !s.PlaceCommand(1, 0, "RIGHT") {
		t.Fatalf("placement on building should succeed")
	}
	if !s.PlaceCommand(1, 1, "DOWN") {
		t.Fatalf("placement on power plant should succeed")
	}
	if s.PlaceCommand(2, 0, "UP") {
		t.Fatalf("placement on empty tile should fail")
	}
	if s.PlaceCommand(3, 0, "UP") {
		t.Fatalf("placement on bed should fail")
	}
	if s.PlaceCommand(9, 0, "UP") {
		t.Fatalf("placement out of bounds should fail")
	}
	if s.PlaceCommand(1, 0, "SIDEWAYS") {
		t.Fatalf("placement with unknown name should fail")
	}

	// Destroy the building, then the slot closes.
	s.TileAt(1, 0).RemainingFloors = 0
	if s.PlaceCommand(1, 0, "LEFT") {
		t.Fatalf("placement on destroyed building should fail")
	}
}

func TestPlaceCommand_IsAtomic(t *testing.T) {
	s := mustSimulator(t, [][]string{{"C_R_S", "B", "E", "C_R_E"}}, Config{})

	before := s.BudgetRemaining()
	if s.PlaceCommand(2, 0, "RIGHT") {
		t.Fatalf("placement on empty tile should fail")
	}
	if s.PlaceCommand(1, 0, "NOPE") {
		t.Fatalf("unknown command should fail")
	}
	if s.BudgetRemaining() != before {
		t.Fatalf("failed placements changed budget: %d -> %d", before, s.BudgetRemaining())
	}
	if s.TileAt(1, 0).Command != nil {
		t.Fatalf("failed placement attached a command")
	}
}

func TestPlaceCommand_CaseInsensitiveNames(t *testing.T) {
	s := mustSimulator(t, [][]string{{"C_R_S", "B", "E", "C_R_E"}}, Config{})
	if !s.PlaceCommand(1, 0, "right") {
		t.Fatalf("lowercase command name should resolve")
	}
	if s.TileAt(1, 0).Command.Name != "RIGHT" {
		t.Fatalf("attached command should carry the normalized name, got %q", s.TileAt(1, 0).Command.Name)
	}
}

func TestPlaceCommand_ReplacementRefundsOldCost(t *testing.T) {
	s := mustSimulator(t, [][]string{{"C_R_S", "B", "B", "C_R_E"}}, Config{
		Catalog: Catalog{
			"CHEAP":  {Direction: []int{1, 0}, Cost: 10},
			"PRICEY": {Direction: []int{0, 1}, Cost: 30},
		},
		StartingBudget: 35,
	})

	if !s.PlaceCommand(1, 0, "PRICEY") {
		t.Fatalf("first placement should succeed")
	}
	if s.BudgetRemaining() != 5 {
		t.Fatalf("expected 5 remaining, got %d", s.BudgetRemaining())
	}

	// Replacing refunds the 30 before debiting the 10.
	if !s.PlaceCommand(1, 0, "CHEAP") {
		t.Fatalf("replacement within budget should succeed")
	}
	if s.BudgetRemaining() != 25 {
		t.Fatalf("expected 25 remaining after replacement, got %d", s.BudgetRemaining())
	}

	// 10 + 30 = 40 exceeds the 35 budget.
	if s.PlaceCommand(2, 0, "PRICEY") {
		t.Fatalf("placement exceeding budget should fail")
	}
	if s.BudgetRemaining() != 25 {
		t.Fatalf("failed placement changed budget: %d", s.BudgetRemaining())
	}
}

func TestPlaceCommand_BudgetExhaustion(t *testing.T) {
	s := mustSimulator(t, [][]string{
		{"C_R_S", "B", "B", "B", "B", "C_R_E"},
		{"B", "B", "B", "B", "B", "B"},
	}, Config{})

	spots := []Point{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
	}
	for i, p := range spots {
		if !s.PlaceCommand(p.X, p.Y, "RIGHT") {
			t.Fatalf("placement %d at %+v should succeed", i+1, p)
		}
	}
	if s.BudgetRemaining() != 0 {
		t.Fatalf("expected budget exhausted, got %d", s.BudgetRemaining())
	}
	if s.PlaceCommand(4, 1, "RIGHT") {
		t.Fatalf("ninth placement should fail on empty budget")
	}
	if s.BudgetRemaining() != 0 {
		t.Fatalf("failed placement changed budget: %d", s.BudgetRemaining())
	}
}

func TestRun_SingleRowBuildingGrant(t *testing.T) {
	s := mustSimulator(t, [][]string{{"C_R_S", "B", "E", "C_R_E"}}, Config{TurnLimit: 1})

	score := s.Run(nil)

	red := s.Cat(CatRed)
	if red.Power != 1250 {
		t.Fatalf("expected red power 1250 after one turn, got %d", red.Power)
	}
	if red.Status != StatusActive {
		t.Fatalf("red should still be active, got %s", red.Status)
	}
	if score != 1250 {
		t.Fatalf("expected score 1250, got %d", score)
	}
}

func TestRun_ImmediateBedArrival(t *testing.T) {
	s := mustSimulator(t, [][]string{
		{"C_R_S", "C_R_E", "E"},
		{"C_G_S", "E", "C_G_E"},
		{"C_B_S", "E", "C_B_E"},
	}, Config{TurnLimit: 1})

	s.Run(nil)

	red := s.Cat(CatRed)
	if red.Status != StatusFinished || red.Power != 3000 {
		t.Fatalf("red should finish with 3000, got status=%s power=%d", red.Status, red.Power)
	}
	if s.Grid().BedArrivals() != 1 {
		t.Fatalf("expected 1 bed arrival, got %d", s.Grid().BedArrivals())
	}
	if s.Cat(CatGreen).Status != StatusActive || s.Cat(CatBlue).Status != StatusActive {
		t.Fatalf("green and blue should remain active")
	}
}

func TestRun_StopsEarlyWhenAllTerminal(t *testing.T) {
	s := mustSimulator(t, [][]string{
		{"C_R_S", "C_R_E", "E"},
		{"C_G_S", "E", "C_G_E"},
		{"C_B_S", "E", "C_B_E"},
	}, Config{})

	var turns []int
	score := s.Run(func(snap Snapshot) {
		turns = append(turns, snap.Turn)
	})

	// Turn 1: red finishes (+2000). Turn 2: green (x3) then blue (x5).
	if s.Turn() != 2 {
		t.Fatalf("expected early stop after turn 2, got %d", s.Turn())
	}
	want := 3000 + GreenInitialPower*SecondArrivalMultiplier + BlueInitialPower*ThirdArrivalMultiplier
	if score != want {
		t.Fatalf("expected score %d, got %d", want, score)
	}
	if !reflect.DeepEqual(turns, []int{0, 1, 2}) {
		t.Fatalf("expected snapshots for turns [0 1 2], got %v", turns)
	}
}

func TestRun_HonorsTurnLimit(t *testing.T) {
	// Red bounces between the two boulders forever.
	s := mustSimulator(t, [][]string{{"R", "C_R_S", "E", "R"}}, Config{TurnLimit: 4})

	calls := 0
	s.Run(func(Snapshot) { calls++ })

	if s.Turn() != 4 {
		t.Fatalf("expected exactly 4 turns, got %d", s.Turn())
	}
	if calls != 5 {
		t.Fatalf("expected initial + 4 turn snapshots, got %d", calls)
	}
	if s.Cat(CatRed).Status != StatusActive {
		t.Fatalf("red should still be active at the limit")
	}
}

func TestRun_CommandRedirectsCat(t *testing.T) {
	s := mustSimulator(t, [][]string{
		{"C_R_S", "B", "E"},
		{"E", "E", "E"},
	}, Config{TurnLimit: 2})

	if !s.PlaceCommand(1, 0, "DOWN") {
		t.Fatalf("placement should succeed")
	}
	s.Run(nil)

	red := s.Cat(CatRed)
	if red.Position != (Point{X: 1, Y: 1}) {
		t.Fatalf("expected red redirected to (1,1), got %+v", red.Position)
	}
	if red.Power != 1250 {
		t.Fatalf("expected building value applied before redirect, got %d", red.Power)
	}
}

func TestRun_IsDeterministic(t *testing.T) {
	layout := [][]string{
		{"C_B_S", "BU", "B", "E", "B", "BS", "OUT"},
		{"OUT", "BU", "E", "R", "B", "C_R_E", "E"},
		{"C_R_S", "B", "BU", "R", "S1", "BU", "UI_G"},
		{"OUT", "BU", "BS", "E", "S2", "E", "UI_B"},
		{"C_G_S", "B", "B", "E", "B", "B", "OUT"},
	}

	run := func() (int, []Snapshot) {
		s := mustSimulator(t, layout, Config{})
		s.PlaceCommand(1, 0, "DOWN")
		s.PlaceCommand(2, 4, "UP")
		var feed []Snapshot
		score := s.Run(func(snap Snapshot) { feed = append(feed, snap) })
		return score, feed
	}

	score1, feed1 := run()
	score2, feed2 := run()
	if score1 != score2 {
		t.Fatalf("scores diverged: %d vs %d", score1, score2)
	}
	if !reflect.DeepEqual(feed1, feed2) {
		t.Fatalf("snapshot feeds diverged")
	}
}
