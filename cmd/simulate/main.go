// Command simulate runs a match offline from a layout file and prints
// each turn snapshot as a JSON line, followed by the final score.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"kaijuverse/internal/adapter/layout"
	"kaijuverse/internal/domain/rampage"
)

type placementFlags []string

func (p *placementFlags) String() string { return strings.Join(*p, ";") }

func (p *placementFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	layoutPath := flag.String("layout", "", "path to a JSON layout file")
	turnLimit := flag.Int("turn-limit", 0, "turn limit override (0 = default)")
	budget := flag.Int("budget", 0, "starting budget override (0 = default)")
	var placements placementFlags
	flag.Var(&placements, "place", "command placement as x,y,NAME (repeatable)")
	flag.Parse()

	if *layoutPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	rows, err := layout.LoadFile(*layoutPath)
	if err != nil {
		log.Fatalf("load layout: %v", err)
	}

	sim, err := rampage.NewSimulator(rows, rampage.Config{
		StartingBudget: *budget,
		TurnLimit:      *turnLimit,
	})
	if err != nil {
		log.Fatalf("build simulator: %v", err)
	}

	for _, raw := range placements {
		x, y, name, err := parsePlacement(raw)
		if err != nil {
			log.Fatalf("placement %q: %v", raw, err)
		}
		if !sim.PlaceCommand(x, y, name) {
			log.Printf("placement %q rejected", raw)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	score := sim.Run(func(snap rampage.Snapshot) {
		if err := enc.Encode(snap); err != nil {
			log.Fatalf("encode snapshot: %v", err)
		}
	})

	fmt.Printf("final score: %d after %d turns\n", score, sim.Turn())
}

func parsePlacement(raw string) (x, y int, name string, err error) {
	parts := strings.SplitN(raw, ",", 3)
	if len(parts) != 3 {
		return 0, 0, "", fmt.Errorf("want x,y,NAME")
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad x: %w", err)
	}
	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad y: %w", err)
	}
	name = strings.TrimSpace(parts[2])
	if name == "" {
		return 0, 0, "", fmt.Errorf("empty command name")
	}
	return x, y, name, nil
}
