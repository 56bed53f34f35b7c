package rampage

type CatID string

const (
	CatRed   CatID = "red"
	CatGreen CatID = "green"
	CatBlue  CatID = "blue"
)

// CatIDs is the closed roster in tie-break order: lower priority tier first.
var CatIDs = []CatID{CatRed, CatGreen, CatBlue}

type CatStatus string

const (
	StatusActive     CatStatus = "active"
	StatusStuckInMud CatStatus = "stuck_in_mud"
	StatusFinished   CatStatus = "finished"
	StatusDefeated   CatStatus = "defeated"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Negate() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// DirRight is the direction every cat faces at its start marker.
var DirRight = Point{X: 1, Y: 0}

type CatConfig struct {
	InitialPower int
	PriorityTier int
}

var catConfigs = map[CatID]CatConfig{
	CatRed:   {InitialPower: RedInitialPower, PriorityTier: RedPriorityTier},
	CatGreen: {InitialPower: GreenInitialPower, PriorityTier: GreenPriorityTier},
	CatBlue:  {InitialPower: BlueInitialPower, PriorityTier: BluePriorityTier},
}

type Cat struct {
	ID           CatID
	PriorityTier int
	InitialPower int
	Power        int
	Position     Point
	Direction    Point
	Status       CatStatus
}

func NewCat(id CatID, pos Point) *Cat {
	cfg := catConfigs[id]
	return &Cat{
		ID:           id,
		PriorityTier: cfg.PriorityTier,
		InitialPower: cfg.InitialPower,
		Power:        cfg.InitialPower,
		Position:     pos,
		Direction:    DirRight,
		Status:       StatusActive,
	}
}

// Terminal reports whether the cat is done for the rest of the match.
func (c *Cat) Terminal() bool {
	return c.Status == StatusFinished || c.Status == StatusDefeated
}
