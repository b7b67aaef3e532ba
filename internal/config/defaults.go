package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shift.yaml
var defaultShiftYAML []byte

// DefaultShiftConfig returns the default shift configuration.
func DefaultShiftConfig() ShiftConfig {
	return ShiftConfig{
		Levels: LevelParams{
			BaseSize:      4,
			MaxSize:       7,
			BaseSteps:     5,
			StepsGrowth:   2,
			BaseDensity:   0.4,
			DensityGrowth: 0.02,
			MaxDensity:    0.6,
		},
		Timing: TimingConfig{
			Memorize:      3 * time.Second,
			LevelComplete: 3 * time.Second,
			Banner:        3 * time.Second,
		},
		Drag: DragConfig{
			Threshold: 0.5,
			Damping:   0.2,
			Settle:    180 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			Base:             1000,
			MovePenalty:      50,
			SecondPenalty:    5,
			TutorialMinMoves: 2,
		},
		Tutorial: TutorialConfig{
			Rows:      4,
			Cols:      5,
			Density:   0.5,
			Row:       1,
			Column:    3,
			Watch:     3 * time.Second,
			Animation: 1500 * time.Millisecond,
			Pause:     500 * time.Millisecond,
			FixDelay:  time.Second,
		},
	}
}
