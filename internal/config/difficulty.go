package config

import "fmt"

// ParseDifficulty converts a flag value to a preset. The empty string
// means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyShiftPreset modifies the level parameters based on a difficulty preset.
func ApplyShiftPreset(cfg *ShiftConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Levels.StepsGrowth = 0
		cfg.Levels.DensityGrowth = 0
		cfg.Levels.MaxSize = cfg.Levels.BaseSize
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Levels.BaseSteps = max(1, cfg.Levels.BaseSteps-2)
		cfg.Levels.StepsGrowth = max(1, cfg.Levels.StepsGrowth-1)
	case DifficultyHard:
		cfg.Levels.BaseSize = min(cfg.Levels.BaseSize+1, cfg.Levels.MaxSize)
		cfg.Levels.BaseSteps += 3
		cfg.Levels.StepsGrowth++
	}
}
