package rampage

// Snapshot is a pure-read projection of the full game state, consumed
// by reporting collaborators (HTTP responses, the live feed, the event
// store). Building one never mutates the simulation.
type Snapshot struct {
	Turn        int          `json:"turn"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Cats        []CatView    `json:"cats"`
	Tiles       [][]TileView `json:"tiles"`
	BedArrivals int          `json:"bed_arrivals"`
	Score       int          `json:"score"`
}

type CatView struct {
	ID           CatID     `json:"id"`
	Power        int       `json:"power"`
	PriorityTier int       `json:"priority_tier"`
	Position     Point     `json:"position"`
	Direction    Point     `json:"direction"`
	Status       CatStatus `json:"status"`
}

type TileView struct {
	Kind            TileKind `json:"kind"`
	RemainingFloors int      `json:"remaining_floors,omitempty"`
	Destroyed       bool     `json:"destroyed,omitempty"`
	Command         string   `json:"command,omitempty"`
	BedOwner        CatID    `json:"bed_owner,omitempty"`
}

func (s *Simulator) Snapshot() Snapshot {
	g := s.grid

	cats := make([]CatView, 0, len(g.cats))
	for _, cat := range g.Cats() {
		cats = append(cats, CatView{
			ID:           cat.ID,
			Power:        cat.Power,
			PriorityTier: cat.PriorityTier,
			Position:     cat.Position,
			Direction:    cat.Direction,
			Status:       cat.Status,
		})
	}

	tiles := make([][]TileView, g.height)
	for y := 0; y < g.height; y++ {
		tiles[y] = make([]TileView, g.width)
		for x := 0; x < g.width; x++ {
			t := g.tiles[y][x]
			view := TileView{
				Kind:            t.Kind,
				RemainingFloors: t.RemainingFloors,
				Destroyed:       t.Destroyed(),
				BedOwner:        t.BedOwner,
			}
			if t.Command != nil {
				view.Command = t.Command.Name
			}
			tiles[y][x] = view
		}
	}

	return Snapshot{
		Turn:        s.turn,
		Width:       g.width,
		Height:      g.height,
		Cats:        cats,
		Tiles:       tiles,
		BedArrivals: g.bedArrivals,
		Score:       s.FinalScore(),
	}
}
