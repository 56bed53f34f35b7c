package rampage

import "sort"

// TurnEngine resolves one turn against a grid. A turn is atomic: the
// three phases run back to back with no external mutation in between.
type TurnEngine struct{}

type pendingMove struct {
	cat    *Cat
	target Point
}

// Resolve executes the three-phase turn algorithm.
//
// Phase 1 plans a move for every active cat and wakes cats stuck in mud
// (they lose exactly this turn of movement). Phase 2 resolves moves in
// ascending power order, applies tile effects and bed arrivals, and
// tracks end positions. Phase 3 settles fights on shared positions.
func (TurnEngine) Resolve(g *Grid) {
	moves := planMoves(g)

	// Lower power resolves first; equal power falls back to priority
	// tier so the order is a documented total order, not map luck.
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i].cat, moves[j].cat
		if a.Power != b.Power {
			return a.Power < b.Power
		}
		return a.PriorityTier < b.PriorityTier
	})

	occupants := make(map[Point][]*Cat)
	order := make([]Point, 0, len(moves))
	track := func(pos Point, c *Cat) {
		if _, seen := occupants[pos]; !seen {
			order = append(order, pos)
		}
		occupants[pos] = append(occupants[pos], c)
	}

	for _, mv := range moves {
		cat := mv.cat
		target := g.TileAt(mv.target.X, mv.target.Y)

		if target == nil || !target.Passable() {
			// Rebound: reverse direction, stay put, no effects.
			cat.Direction = cat.Direction.Negate()
			track(cat.Position, cat)
			continue
		}

		cat.Position = mv.target
		target.ApplyEffects(cat)

		if target.Kind == TileCatBed && target.BedOwner == cat.ID {
			g.finishAtBed(cat)
		}

		track(cat.Position, cat)
	}

	for _, pos := range order {
		resolveFight(occupants[pos])
	}
}

func planMoves(g *Grid) []pendingMove {
	moves := make([]pendingMove, 0, len(g.cats))
	for _, cat := range g.Cats() {
		switch cat.Status {
		case StatusActive:
			moves = append(moves, pendingMove{cat: cat, target: cat.Position.Add(cat.Direction)})
		case StatusStuckInMud:
			cat.Status = StatusActive
		}
	}
	return moves
}

// finishAtBed marks the cat finished and grants the arrival bonus keyed
// strictly to global arrival order. Arrivals past the third get nothing.
func (g *Grid) finishAtBed(cat *Cat) {
	cat.Status = StatusFinished
	g.bedArrivals++

	if g.bedArrivals > BedArrivalsWithBonus {
		return
	}
	switch g.bedArrivals {
	case 1:
		cat.Power += FirstArrivalBonus
	case 2:
		cat.Power *= SecondArrivalMultiplier
	case 3:
		cat.Power *= ThirdArrivalMultiplier
	}
}

// resolveFight defeats everyone but the strongest cat on a shared
// position. Power ties go to the lowest priority tier. Cats that ended
// the turn in a terminal status do not fight.
func resolveFight(cats []*Cat) {
	fighters := cats[:0:0]
	for _, c := range cats {
		if !c.Terminal() {
			fighters = append(fighters, c)
		}
	}
	if len(fighters) < 2 {
		return
	}

	winner := fighters[0]
	for _, c := range fighters[1:] {
		if c.Power > winner.Power || (c.Power == winner.Power && c.PriorityTier < winner.PriorityTier) {
			winner = c
		}
	}
	for _, c := range fighters {
		if c != winner {
			c.Status = StatusDefeated
		}
	}
}
