package rampage

import (
	"errors"
	"fmt"
	"strings"
)

// Command is an immutable directional modifier owned by the tile it is
// attached to.
type Command struct {
	Name      string `json:"name"`
	Direction Point  `json:"direction"`
	Cost      int    `json:"cost"`
}

// CommandSpec is one raw catalog entry as supplied by the operator.
// Direction must have exactly two components (dx, dy).
type CommandSpec struct {
	Direction []int `json:"direction"`
	Cost      int   `json:"cost"`
}

// Catalog maps command names to their specs. Names are case-insensitive.
type Catalog map[string]CommandSpec

func DefaultCatalog() Catalog {
	return Catalog{
		"UP":    {Direction: []int{0, -1}, Cost: DefaultCommandCost},
		"DOWN":  {Direction: []int{0, 1}, Cost: DefaultCommandCost},
		"LEFT":  {Direction: []int{-1, 0}, Cost: DefaultCommandCost},
		"RIGHT": {Direction: []int{1, 0}, Cost: DefaultCommandCost},
	}
}

var ErrMalformedCatalog = errors.New("malformed command catalog")

// normalizeCatalog upper-cases names and validates every entry. A
// malformed catalog is a configuration error and aborts construction.
func normalizeCatalog(in Catalog) (map[string]Command, error) {
	out := make(map[string]Command, len(in))
	for name, spec := range in {
		key := strings.ToUpper(strings.TrimSpace(name))
		if key == "" {
			return nil, fmt.Errorf("%w: empty command name", ErrMalformedCatalog)
		}
		if len(spec.Direction) != 2 {
			return nil, fmt.Errorf("%w: command %q direction must have 2 components, got %d", ErrMalformedCatalog, name, len(spec.Direction))
		}
		if spec.Cost < 0 {
			return nil, fmt.Errorf("%w: command %q cost must be non-negative, got %d", ErrMalformedCatalog, name, spec.Cost)
		}
		out[key] = Command{
			Name:      key,
			Direction: Point{X: spec.Direction[0], Y: spec.Direction[1]},
			Cost:      spec.Cost,
		}
	}
	return out, nil
}
