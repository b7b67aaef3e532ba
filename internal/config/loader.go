package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShift loads the shift configuration.
// Search order: customPath -> ~/.shift/configs/shift.yaml -> ./configs/shift.yaml -> embedded default
//
// Files only override the keys they set; everything else keeps its default.
func LoadShift(customPath string) (ShiftConfig, error) {
	cfg := DefaultShiftConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shift.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := cfg
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shift.yaml")); err == nil {
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	embedded := cfg
	if err := yaml.Unmarshal(defaultShiftYAML, &embedded); err != nil {
		return DefaultShiftConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shift", "configs", filename)
}

// Validate reports the first malformed value. A non-nil result is fatal:
// the engine refuses to start with it.
func (c ShiftConfig) Validate() error {
	if err := c.Levels.Validate(); err != nil {
		return err
	}

	t := c.Timing
	if t.Memorize <= 0 || t.LevelComplete <= 0 || t.Banner <= 0 {
		return fmt.Errorf("config: timing durations must be positive (memorize=%s, level_complete=%s, banner=%s)",
			t.Memorize, t.LevelComplete, t.Banner)
	}

	d := c.Drag
	if d.Threshold < 0 {
		return fmt.Errorf("config: drag threshold must not be negative, got %v", d.Threshold)
	}
	if d.Damping < 0 {
		return fmt.Errorf("config: drag damping must not be negative, got %v", d.Damping)
	}
	if d.Settle <= 0 {
		return fmt.Errorf("config: drag settle must be positive, got %s", d.Settle)
	}

	s := c.Scoring
	if s.Base <= 0 || s.MovePenalty < 0 || s.SecondPenalty < 0 || s.TutorialMinMoves < 0 {
		return fmt.Errorf("config: invalid scoring %+v", s)
	}

	tu := c.Tutorial
	if tu.Rows < 3 || tu.Cols < 3 {
		return fmt.Errorf("config: tutorial board must be at least 3x3, got %dx%d", tu.Rows, tu.Cols)
	}
	if tu.Density < 0 || tu.Density > 1 {
		return fmt.Errorf("config: tutorial density must be in [0,1], got %v", tu.Density)
	}
	if tu.Row < 0 || tu.Row >= tu.Rows {
		return fmt.Errorf("config: tutorial row %d outside a %d-row board", tu.Row, tu.Rows)
	}
	if tu.Column < 0 || tu.Column >= tu.Cols {
		return fmt.Errorf("config: tutorial column %d outside a %d-column board", tu.Column, tu.Cols)
	}
	if tu.Watch <= 0 || tu.Animation <= 0 || tu.Pause <= 0 || tu.FixDelay <= 0 {
		return fmt.Errorf("config: tutorial durations must be positive")
	}
	return nil
}

// Validate checks the level generator parameters.
func (p LevelParams) Validate() error {
	if p.BaseSize < 3 {
		return fmt.Errorf("config: base size must be at least 3, got %d", p.BaseSize)
	}
	if p.MaxSize < p.BaseSize {
		return fmt.Errorf("config: max size %d is smaller than base size %d", p.MaxSize, p.BaseSize)
	}
	if p.BaseSteps < 0 || p.StepsGrowth < 0 {
		return fmt.Errorf("config: scramble steps must not be negative (base=%d, growth=%d)", p.BaseSteps, p.StepsGrowth)
	}
	if p.BaseDensity < 0 || p.BaseDensity > 1 || p.MaxDensity < 0 || p.MaxDensity > 1 {
		return fmt.Errorf("config: densities must be in [0,1] (base=%v, max=%v)", p.BaseDensity, p.MaxDensity)
	}
	if p.DensityGrowth < 0 {
		return fmt.Errorf("config: density growth must not be negative, got %v", p.DensityGrowth)
	}
	return nil
}
