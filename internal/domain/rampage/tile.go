package rampage

type TileKind string

const (
	TileEmpty        TileKind = "empty"
	TileLowBuilding  TileKind = "low_value_building"
	TileHighBuilding TileKind = "high_value_building"
	TilePowerPlant   TileKind = "power_plant"
	TileMud          TileKind = "mud"
	TileSpikeTrap    TileKind = "spike_trap"
	TileBoulder      TileKind = "boulder"
	TileCatBed       TileKind = "cat_bed"
	TileOutOfBounds  TileKind = "out_of_bounds"
)

// Tile is a closed tagged variant: Kind selects which of the optional
// fields are meaningful. The variant set is fixed by the game rules.
type Tile struct {
	Kind TileKind

	// Buildings only.
	PowerPerFloor   int
	TotalFloors     int
	RemainingFloors int

	// Power plants only.
	plantSpent bool

	// Beds only.
	BedOwner CatID

	// Buildings and power plants only.
	Command *Command
}

func NewEmptyTile() *Tile       { return &Tile{Kind: TileEmpty} }
func NewMudTile() *Tile         { return &Tile{Kind: TileMud} }
func NewSpikeTrapTile() *Tile   { return &Tile{Kind: TileSpikeTrap} }
func NewBoulderTile() *Tile     { return &Tile{Kind: TileBoulder} }
func NewOutOfBoundsTile() *Tile { return &Tile{Kind: TileOutOfBounds} }
func NewPowerPlantTile() *Tile  { return &Tile{Kind: TilePowerPlant} }

func NewBuildingTile(kind TileKind, powerPerFloor, floors int) *Tile {
	return &Tile{
		Kind:            kind,
		PowerPerFloor:   powerPerFloor,
		TotalFloors:     floors,
		RemainingFloors: floors,
	}
}

func NewCatBedTile(owner CatID) *Tile {
	return &Tile{Kind: TileCatBed, BedOwner: owner}
}

func (t *Tile) Passable() bool {
	return t.Kind != TileBoulder && t.Kind != TileOutOfBounds
}

func (t *Tile) IsBuilding() bool {
	return t.Kind == TileLowBuilding || t.Kind == TileHighBuilding
}

// Destroyed is only meaningful for buildings and power plants.
func (t *Tile) Destroyed() bool {
	switch t.Kind {
	case TileLowBuilding, TileHighBuilding:
		return t.RemainingFloors == 0
	case TilePowerPlant:
		return t.plantSpent
	default:
		return false
	}
}

// CanHoldCommand gates command placement: intact buildings and power
// plants only.
func (t *Tile) CanHoldCommand() bool {
	return (t.IsBuilding() || t.Kind == TilePowerPlant) && !t.Destroyed()
}

// ApplyEffects mutates the cat per tile kind, then applies the attached
// command's direction override. Movement and bed arrival stay with the
// engine.
func (t *Tile) ApplyEffects(cat *Cat) {
	switch t.Kind {
	case TileMud:
		cat.Status = StatusStuckInMud
	case TileSpikeTrap:
		// Integer division truncates toward zero, matching the halving rule.
		cat.Power = cat.Power / 2
	case TileLowBuilding, TileHighBuilding:
		if t.RemainingFloors > 0 {
			cat.Power += t.PowerPerFloor
			t.RemainingFloors--
		}
	case TilePowerPlant:
		if !t.plantSpent {
			cat.Power *= 2
			t.plantSpent = true
		}
	}

	if t.Command != nil {
		cat.Direction = t.Command.Direction
	}
}
