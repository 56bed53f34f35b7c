package rampage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyLayout  = errors.New("layout has no rows")
	ErrRaggedLayout = errors.New("layout rows have unequal length")
)

// tileRules is the declarative code -> constructor table for plain board
// features. Start and bed markers are matched separately; anything that
// matches no rule degrades to Empty (explicit policy, covered by tests).
var tileRules = map[string]func() *Tile{
	"E":   NewEmptyTile,
	"B":   func() *Tile { return NewBuildingTile(TileLowBuilding, LowBuildingPowerPerFloor, 1) },
	"B2":  func() *Tile { return NewBuildingTile(TileLowBuilding, LowBuildingPowerPerFloor, 2) },
	"BU":  func() *Tile { return NewBuildingTile(TileHighBuilding, HighBuildingPowerPerFloor, 1) },
	"BU2": func() *Tile { return NewBuildingTile(TileHighBuilding, HighBuildingPowerPerFloor, 2) },
	"BS":  NewPowerPlantTile,
	"R":   NewBoulderTile,
	"S1":  NewSpikeTrapTile,
	"S2":  NewMudTile,
	"M":   NewMudTile,
	"OUT": NewOutOfBoundsTile,
}

var catLetters = map[string]CatID{
	"R": CatRed,
	"G": CatGreen,
	"B": CatBlue,
}

var bedAliases = map[string]CatID{
	"UI_R": CatRed,
	"UI_G": CatGreen,
	"UI_B": CatBlue,
}

// Grid owns the tile array, the cat roster, the bed registry, and the
// shared bed arrival counter.
type Grid struct {
	width  int
	height int
	tiles  [][]*Tile
	cats   map[CatID]*Cat
	beds   map[CatID]Point

	bedArrivals int
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// TileAt returns nil when (x, y) is outside the grid.
func (g *Grid) TileAt(x, y int) *Tile {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.tiles[y][x]
}

func (g *Grid) Cat(id CatID) *Cat {
	return g.cats[id]
}

// Cats returns the roster in fixed identity order (red, green, blue).
func (g *Grid) Cats() []*Cat {
	out := make([]*Cat, 0, len(g.cats))
	for _, id := range CatIDs {
		if c, ok := g.cats[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (g *Grid) BedFor(id CatID) (Point, bool) {
	p, ok := g.beds[id]
	return p, ok
}

func (g *Grid) BedArrivals() int {
	return g.bedArrivals
}

func newGrid(layout [][]string) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	width := len(layout[0])
	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, y, len(row), width)
		}
	}

	g := &Grid{
		width:  width,
		height: len(layout),
		tiles:  make([][]*Tile, len(layout)),
		cats:   make(map[CatID]*Cat),
		beds:   make(map[CatID]Point),
	}

	for y, row := range layout {
		g.tiles[y] = make([]*Tile, width)
		for x, code := range row {
			tile, err := g.parseCell(code, Point{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			g.tiles[y][x] = tile
		}
	}
	return g, nil
}

// parseCell applies the layout grammar in priority order: start marker,
// bed marker, bed alias, tile rule, fallback Empty.
func (g *Grid) parseCell(code string, pos Point) (*Tile, error) {
	if id, ok := startMarker(code); ok {
		if _, exists := g.cats[id]; exists {
			return nil, fmt.Errorf("duplicate start marker for cat %s at (%d,%d)", id, pos.X, pos.Y)
		}
		g.cats[id] = NewCat(id, pos)
		return NewEmptyTile(), nil
	}

	if id, ok := bedMarker(code); ok {
		if _, exists := g.beds[id]; exists {
			return nil, fmt.Errorf("duplicate bed for cat %s at (%d,%d)", id, pos.X, pos.Y)
		}
		g.beds[id] = pos
		return NewCatBedTile(id), nil
	}

	if rule, ok := tileRules[code]; ok {
		return rule(), nil
	}
	return NewEmptyTile(), nil
}

// startMarker matches "C_<L>_S" where <L> names a cat identity.
func startMarker(code string) (CatID, bool) {
	return catMarker(code, "S")
}

// bedMarker matches "C_<L>_E" and the "UI_<L>" aliases.
func bedMarker(code string) (CatID, bool) {
	if id, ok := bedAliases[code]; ok {
		return id, true
	}
	return catMarker(code, "E")
}

func catMarker(code, suffix string) (CatID, bool) {
	parts := strings.Split(code, "_")
	if len(parts) != 3 || parts[0] != "C" || parts[2] != suffix {
		return "", false
	}
	id, ok := catLetters[parts[1]]
	return id, ok
}
