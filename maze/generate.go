package maze

import (
	"fmt"
	"math/rand"
)

// defaultGenerateSeed is used when GenerateConfig.Seed is 0, so the
// zero config is still reproducible.
const defaultGenerateSeed int64 = 1

// GenerateConfig parameterises Generate.
type GenerateConfig struct {
	// Height and Width are the grid dimensions; H×W must be at least 2.
	Height, Width int
	// WallDensity is the probability in [0,1) that a free cell becomes a wall.
	WallDensity float64
	// Seed selects the random stream; 0 means defaultGenerateSeed.
	Seed int64
	// EnsurePath carves a random monotone corridor from start to goal
	// before walls are placed, so the goal is always reachable.
	EnsurePath bool
}

// DefaultGenerateConfig returns a 10×10 solvable maze with 30% walls.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Height:      10,
		Width:       10,
		WallDensity: 0.3,
		EnsurePath:  true,
	}
}

// Generate builds a random maze with the start in the top-left corner and
// the goal in the bottom-right corner. Equal configs yield equal mazes.
// Complexity: O(H×W).
func Generate(cfg GenerateConfig) (*Maze, error) {
	if cfg.Height <= 0 || cfg.Width <= 0 || cfg.Height > MaxDimension || cfg.Width > MaxDimension ||
		cfg.Height*cfg.Width < 2 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, cfg.Height, cfg.Width)
	}
	if cfg.WallDensity < 0 || cfg.WallDensity >= 1 {
		return nil, fmt.Errorf("%w: wall density %v outside [0,1)", ErrInvalidConfig, cfg.WallDensity)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultGenerateSeed
	}
	rng := rand.New(rand.NewSource(seed))

	start := Position{Row: 0, Col: 0}
	goal := Position{Row: cfg.Height - 1, Col: cfg.Width - 1}

	keep := make(map[Position]bool)
	if cfg.EnsurePath {
		for p := start; p != goal; {
			keep[p] = true
			switch {
			case p.Row == goal.Row:
				p.Col++
			case p.Col == goal.Col:
				p.Row++
			case rng.Intn(2) == 0:
				p.Col++
			default:
				p.Row++
			}
		}
	}

	grid := make([][]Cell, cfg.Height)
	for r := range grid {
		grid[r] = make([]Cell, cfg.Width)
		for c := range grid[r] {
			p := Position{Row: r, Col: c}
			// one draw per cell keeps the stream aligned with the grid
			wall := rng.Float64() < cfg.WallDensity
			switch {
			case p == start:
				grid[r][c] = CellStart
			case p == goal:
				grid[r][c] = CellGoal
			case wall && !keep[p]:
				grid[r][c] = CellWall
			default:
				grid[r][c] = CellOpen
			}
		}
	}

	return New(grid)
}
