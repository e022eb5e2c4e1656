// Package main provides world generation for hungrymonkey benchmarks.
// Generates deterministic, solvable worlds with configurable parameters.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

// maxAttempts bounds the re-rolls when a layout traps a banana.
const maxAttempts = 100

// WorldParams defines parameters for world generation.
type WorldParams struct {
	Seed      int64
	Width     int
	Height    int
	Goals     int
	BlockFrac float64 // fraction of cells that are blocked
}

// generateWorld rolls layouts until every banana is reachable from the
// start cell. Generation is deterministic for a given parameter set.
func generateWorld(params WorldParams) (*world.Instance, error) {
	rng := rand.New(rand.NewSource(params.Seed))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var blocked []world.Position
		var free []world.Position
		for r := 0; r < params.Height; r++ {
			for c := 0; c < params.Width; c++ {
				p := world.Position{Row: r, Col: c}
				if rng.Float64() < params.BlockFrac {
					blocked = append(blocked, p)
				} else {
					free = append(free, p)
				}
			}
		}
		if len(free) < params.Goals+1 {
			continue
		}

		rng.Shuffle(len(free), func(i, j int) {
			free[i], free[j] = free[j], free[i]
		})
		start := free[0]
		goals := free[1 : params.Goals+1]

		g, err := world.New(params.Width, params.Height, blocked, goals)
		if err != nil {
			return nil, err
		}
		inst, err := world.NewInstance(g, start)
		if err != nil {
			return nil, err
		}

		if allReachable(g, start, goals) {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("no solvable %dx%d layout with %d goals after %d attempts",
		params.Width, params.Height, params.Goals, maxAttempts)
}

// allReachable floods the grid from start and checks every banana cell.
func allReachable(g *world.Grid, start world.Position, goals []world.Position) bool {
	seen := map[world.Position]bool{start: true}
	queue := []world.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, a := range world.Actions() {
			dr, dc := a.Delta()
			n := world.Position{Row: p.Row + dr, Col: p.Col + dc}
			if !g.InBounds(n) || g.Blocked(n) || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	for _, goal := range goals {
		if !seen[goal] {
			return false
		}
	}
	return true
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	width := flag.Int("width", 16, "Grid width")
	height := flag.Int("height", 6, "Grid height")
	goals := flag.Int("goals", 2, "Number of bananas")
	blockFrac := flag.Float64("blocked", 0.2, "Fraction of cells that are blocked (0-1)")
	count := flag.Int("count", 1, "Number of worlds to generate (seed increments per world)")
	format := flag.String("format", "json", "Output format (json or txt)")
	outputDir := flag.String("output", "testdata", "Output directory")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		params := WorldParams{
			Seed:      *seed + int64(i),
			Width:     *width,
			Height:    *height,
			Goals:     *goals,
			BlockFrac: *blockFrac,
		}

		inst, err := generateWorld(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating world (seed %d): %v\n", params.Seed, err)
			os.Exit(1)
		}

		name := fmt.Sprintf("monkey_%dx%d_g%d_%d", params.Width, params.Height, params.Goals, params.Seed)
		var filename string
		switch *format {
		case "json":
			filename = filepath.Join(*outputDir, name+".json")
			wf := world.NewWorldFile(name, inst)
			wf.Seed = params.Seed
			wf.Generated = time.Now().UTC().Format(time.RFC3339)
			if err := wf.Save(filename); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing world %s: %v\n", filename, err)
				os.Exit(1)
			}
		case "txt":
			filename = filepath.Join(*outputDir, name+".txt")
			if err := os.WriteFile(filename, []byte(inst.String()), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing world %s: %v\n", filename, err)
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown format %q (want json or txt)\n", *format)
			os.Exit(1)
		}

		fmt.Printf("Generated: %s (%dx%d, %d goals, seed %d)\n",
			filename, params.Width, params.Height, params.Goals, params.Seed)
	}
}
