package rampage

import "testing"

func TestTile_Passable(t *testing.T) {
	cases := []struct {
		tile *Tile
		want bool
	}{
		{NewEmptyTile(), true},
		{NewBuildingTile(TileLowBuilding, LowBuildingPowerPerFloor, 1), true},
		{NewPowerPlantTile(), true},
		{NewMudTile(), true},
		{NewSpikeTrapTile(), true},
		{NewCatBedTile(CatRed), true},
		{NewBoulderTile(), false},
		{NewOutOfBoundsTile(), false},
	}
	for _, tc := range cases {
		if got := tc.tile.Passable(); got != tc.want {
			t.Fatalf("Passable() for %s = %v, want %v", tc.tile.Kind, got, tc.want)
		}
	}
}

func TestTile_SpikeTrapHalvesPowerTowardZero(t *testing.T) {
	spike := NewSpikeTrapTile()

	cat := NewCat(CatRed, Point{})
	cat.Power = 1001
	spike.ApplyEffects(cat)
	if cat.Power != 500 {
		t.Fatalf("expected 1001 to halve to 500, got %d", cat.Power)
	}

	cat.Power = -5
	spike.ApplyEffects(cat)
	if cat.Power != -2 {
		t.Fatalf("expected -5 to halve to -2 (truncation toward zero), got %d", cat.Power)
	}
}

func TestTile_MudSticksCat(t *testing.T) {
	cat := NewCat(CatGreen, Point{})
	NewMudTile().ApplyEffects(cat)
	if cat.Status != StatusStuckInMud {
		t.Fatalf("expected stuck_in_mud, got %s", cat.Status)
	}
}

func TestTile_BuildingGrantsEachFloorOnce(t *testing.T) {
	building := NewBuildingTile(TileLowBuilding, LowBuildingPowerPerFloor, 2)
	cat := NewCat(CatRed, Point{})

	building.ApplyEffects(cat)
	if cat.Power != 1250 {
		t.Fatalf("first floor: expected power 1250, got %d", cat.Power)
	}
	if building.Destroyed() {
		t.Fatalf("building should not be destroyed with a floor left")
	}

	building.ApplyEffects(cat)
	if cat.Power != 1500 {
		t.Fatalf("second floor: expected power 1500, got %d", cat.Power)
	}
	if !building.Destroyed() || building.RemainingFloors != 0 {
		t.Fatalf("building should be destroyed after both floors, remaining=%d", building.RemainingFloors)
	}

	building.ApplyEffects(cat)
	if cat.Power != 1500 {
		t.Fatalf("destroyed building granted power again: %d", cat.Power)
	}
}

func TestTile_PowerPlantDoublesOnce(t *testing.T) {
	plant := NewPowerPlantTile()

	first := NewCat(CatRed, Point{})
	plant.ApplyEffects(first)
	if first.Power != 2000 {
		t.Fatalf("expected first visitor doubled to 2000, got %d", first.Power)
	}
	if !plant.Destroyed() {
		t.Fatalf("plant should be spent after first trigger")
	}

	second := NewCat(CatGreen, Point{})
	plant.ApplyEffects(second)
	if second.Power != GreenInitialPower {
		t.Fatalf("spent plant changed power: %d", second.Power)
	}
}

func TestTile_CommandOverridesDirectionAfterEffects(t *testing.T) {
	building := NewBuildingTile(TileHighBuilding, HighBuildingPowerPerFloor, 1)
	down := Command{Name: "DOWN", Direction: Point{X: 0, Y: 1}, Cost: DefaultCommandCost}
	building.Command = &down

	cat := NewCat(CatRed, Point{})
	building.ApplyEffects(cat)

	if cat.Power != 1500 {
		t.Fatalf("expected floor value applied, got power %d", cat.Power)
	}
	if cat.Direction != (Point{X: 0, Y: 1}) {
		t.Fatalf("expected direction overridden to down, got %+v", cat.Direction)
	}
}

func TestTile_CanHoldCommand(t *testing.T) {
	building := NewBuildingTile(TileLowBuilding, LowBuildingPowerPerFloor, 1)
	if !building.CanHoldCommand() {
		t.Fatalf("intact building should hold commands")
	}
	building.RemainingFloors = 0
	if building.CanHoldCommand() {
		t.Fatalf("destroyed building should not hold commands")
	}
	if NewEmptyTile().CanHoldCommand() {
		t.Fatalf("empty tile should not hold commands")
	}
	if NewCatBedTile(CatBlue).CanHoldCommand() {
		t.Fatalf("bed should not hold commands")
	}
}
