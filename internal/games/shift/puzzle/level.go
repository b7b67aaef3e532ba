package puzzle

import (
	"fmt"

	"github.com/vovakirdan/shift-shift/internal/config"
)

// LevelConfig describes one level's board.
type LevelConfig struct {
	Rows          int
	Cols          int
	ScrambleSteps int
	Density       float64 // Probability each target cell is occupied
}

// LevelGenerator maps level numbers to board parameters.
type LevelGenerator struct {
	params config.LevelParams
}

// NewLevelGenerator validates the parameters. A malformed board size is a
// configuration error, never something to recover from mid-game.
func NewLevelGenerator(params config.LevelParams) (*LevelGenerator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle: level generator: %w", err)
	}
	return &LevelGenerator{params: params}, nil
}

// Config returns the board for a level (1-indexed). Size grows by one every
// three levels up to MaxSize; every output is non-decreasing in level.
func (lg *LevelGenerator) Config(level int) LevelConfig {
	if level < 1 {
		panic(fmt.Sprintf("puzzle: level %d is not 1-indexed", level))
	}
	p := lg.params
	size := min(p.MaxSize, p.BaseSize+(level-1)/3)
	return LevelConfig{
		Rows:          size,
		Cols:          size,
		ScrambleSteps: p.BaseSteps + (level-1)*p.StepsGrowth,
		Density:       min(p.MaxDensity, p.BaseDensity+float64(level)*p.DensityGrowth),
	}
}
