// Package config provides YAML-based configuration loading and difficulty
// presets for the shift puzzle.
package config

import "time"

// ShiftConfig contains every tunable of the puzzle engine.
type ShiftConfig struct {
	Levels   LevelParams    `yaml:"levels"`
	Timing   TimingConfig   `yaml:"timing"`
	Drag     DragConfig     `yaml:"drag"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Tutorial TutorialConfig `yaml:"tutorial"`
}

// LevelParams defines how board size, scramble depth and density grow
// with the level number.
type LevelParams struct {
	BaseSize      int     `yaml:"base_size"`
	MaxSize       int     `yaml:"max_size"`
	BaseSteps     int     `yaml:"base_steps"`
	StepsGrowth   int     `yaml:"steps_growth"`
	BaseDensity   float64 `yaml:"base_density"`
	DensityGrowth float64 `yaml:"density_growth"`
	MaxDensity    float64 `yaml:"max_density"`

	// AvoidIdentityScramble re-rolls scrambles that cancel out to the
	// solved board.
	AvoidIdentityScramble bool `yaml:"avoid_identity_scramble"`
}

// TimingConfig defines phase durations.
type TimingConfig struct {
	Memorize      time.Duration `yaml:"memorize"`       // Preview before the scramble
	LevelComplete time.Duration `yaml:"level_complete"` // Pause before the next level
	Banner        time.Duration `yaml:"banner"`         // "Oh Shift!" banner after scrambling
}

// DragConfig defines gesture recognition and snapping.
type DragConfig struct {
	Threshold float64       `yaml:"threshold"` // Displacement (in pointer units) a press must exceed to capture
	Damping   float64       `yaml:"damping"`   // Velocity factor applied to the release prediction
	Settle    time.Duration `yaml:"settle"`    // Snap animation length
}

// ScoringConfig defines the per-level score formula.
type ScoringConfig struct {
	Base             int `yaml:"base"`
	MovePenalty      int `yaml:"move_penalty"`       // Per move beyond the minimum
	SecondPenalty    int `yaml:"second_penalty"`     // Per second spent playing
	TutorialMinMoves int `yaml:"tutorial_min_moves"` // Minimum moves assumed for the tutorial board
}

// TutorialConfig defines the scripted onboarding board.
type TutorialConfig struct {
	Rows      int           `yaml:"rows"`
	Cols      int           `yaml:"cols"`
	Density   float64       `yaml:"density"`
	Row       int           `yaml:"row"`       // Row shifted right by the script
	Column    int           `yaml:"column"`    // Column shifted down by the script
	Watch     time.Duration `yaml:"watch"`     // Solved board preview
	Animation time.Duration `yaml:"animation"` // Length of each scripted shift
	Pause     time.Duration `yaml:"pause"`     // Gap between the two scripted shifts
	FixDelay  time.Duration `yaml:"fix_delay"` // Gap before the first instruction
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
