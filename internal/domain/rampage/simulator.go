package rampage

import "strings"

type Config struct {
	Catalog        Catalog
	StartingBudget int
	TurnLimit      int
}

// Simulator owns the grid, the command budget ledger, and the turn
// counter. It is single-threaded by contract: PlaceCommand must only be
// called between turns.
type Simulator struct {
	grid    *Grid
	catalog map[string]Command
	engine  TurnEngine

	startingBudget int
	totalSpend     int
	turn           int
	turnLimit      int
}

// NewSimulator builds a simulator from a rectangular layout. Zero
// config fields fall back to the defaults. A malformed catalog or
// layout aborts construction.
func NewSimulator(layout [][]string, cfg Config) (*Simulator, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog()
	}
	if cfg.StartingBudget == 0 {
		cfg.StartingBudget = DefaultStartingBudget
	}
	if cfg.TurnLimit <= 0 {
		cfg.TurnLimit = DefaultTurnLimit
	}

	catalog, err := normalizeCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	grid, err := newGrid(layout)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		grid:           grid,
		catalog:        catalog,
		startingBudget: cfg.StartingBudget,
		turnLimit:      cfg.TurnLimit,
	}, nil
}

func (s *Simulator) Grid() *Grid    { return s.grid }
func (s *Simulator) Turn() int      { return s.turn }
func (s *Simulator) TurnLimit() int { return s.turnLimit }

func (s *Simulator) TileAt(x, y int) *Tile {
	return s.grid.TileAt(x, y)
}

func (s *Simulator) Cat(id CatID) *Cat {
	return s.grid.Cat(id)
}

// PlaceCommand attaches a catalog command to the building or power
// plant at (x, y). It is all-or-nothing: a false return leaves the
// budget and the tile untouched. Replacing a command refunds the old
// cost before debiting the new one.
func (s *Simulator) PlaceCommand(x, y int, name string) bool {
	tile := s.grid.TileAt(x, y)
	if tile == nil || !tile.CanHoldCommand() {
		return false
	}

	cmd, ok := s.catalog[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return false
	}

	existing := 0
	if tile.Command != nil {
		existing = tile.Command.Cost
	}
	newTotal := s.totalSpend - existing + cmd.Cost
	if newTotal > s.startingBudget {
		return false
	}

	tile.Command = &cmd
	s.totalSpend = newTotal
	return true
}

func (s *Simulator) BudgetRemaining() int {
	return s.startingBudget - s.totalSpend
}

// SimulateTurn resolves exactly one turn.
func (s *Simulator) SimulateTurn() {
	s.turn++
	s.engine.Resolve(s.grid)
}

// Done reports whether every cat has reached a terminal status.
func (s *Simulator) Done() bool {
	for _, cat := range s.grid.Cats() {
		if !cat.Terminal() {
			return false
		}
	}
	return true
}

// FinalScore is the sum of every cat's current power, regardless of
// status.
func (s *Simulator) FinalScore() int {
	total := 0
	for _, cat := range s.grid.Cats() {
		total += cat.Power
	}
	return total
}

// Run plays turns up to the limit, stopping early once every cat is
// terminal. onSnapshot, when non-nil, observes the initial state and
// the state after every turn; it must not mutate anything.
func (s *Simulator) Run(onSnapshot func(Snapshot)) int {
	emit := func() {
		if onSnapshot != nil {
			onSnapshot(s.Snapshot())
		}
	}

	emit()
	for s.turn < s.turnLimit {
		s.SimulateTurn()
		emit()
		if s.Done() {
			break
		}
	}
	return s.FinalScore()
}
