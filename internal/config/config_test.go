package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultShiftConfig()
	if err := yaml.Unmarshal(defaultShiftYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultShiftConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultShiftConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultShiftConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadShiftCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shift.yaml")
	data := "levels:\n  base_size: 5\ntiming:\n  memorize: 1500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShift(path)
	if err != nil {
		t.Fatalf("LoadShift() error = %v", err)
	}
	if cfg.Levels.BaseSize != 5 {
		t.Errorf("BaseSize = %d, want 5", cfg.Levels.BaseSize)
	}
	if cfg.Timing.Memorize != 1500*time.Millisecond {
		t.Errorf("Memorize = %s, want 1.5s", cfg.Timing.Memorize)
	}
	// Untouched keys keep their defaults
	if cfg.Levels.MaxSize != 7 {
		t.Errorf("MaxSize = %d, want 7", cfg.Levels.MaxSize)
	}
}

func TestLoadShiftErrors(t *testing.T) {
	if _, err := LoadShift(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadShift(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("levels: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShift(path); err == nil {
		t.Error("LoadShift(malformed) should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShiftConfig)
		errSub string
	}{
		{"zero board", func(c *ShiftConfig) { c.Levels.BaseSize = 0 }, "base size"},
		{"negative board", func(c *ShiftConfig) { c.Levels.BaseSize = -4 }, "base size"},
		{"max below base", func(c *ShiftConfig) { c.Levels.MaxSize = 3 }, "max size"},
		{"negative steps", func(c *ShiftConfig) { c.Levels.BaseSteps = -1 }, "scramble steps"},
		{"density above one", func(c *ShiftConfig) { c.Levels.MaxDensity = 1.5 }, "densities"},
		{"zero memorize", func(c *ShiftConfig) { c.Timing.Memorize = 0 }, "timing"},
		{"negative damping", func(c *ShiftConfig) { c.Drag.Damping = -0.1 }, "damping"},
		{"tutorial row outside", func(c *ShiftConfig) { c.Tutorial.Row = 4 }, "tutorial row"},
		{"tutorial column outside", func(c *ShiftConfig) { c.Tutorial.Column = 5 }, "tutorial column"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShiftConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tc.errSub)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyShiftPreset(t *testing.T) {
	easy := DefaultShiftConfig()
	ApplyShiftPreset(&easy, DifficultyEasy)
	if easy.Levels.BaseSteps != 3 || easy.Levels.StepsGrowth != 1 {
		t.Errorf("easy steps = %d/+%d, want 3/+1", easy.Levels.BaseSteps, easy.Levels.StepsGrowth)
	}

	hard := DefaultShiftConfig()
	ApplyShiftPreset(&hard, DifficultyHard)
	if hard.Levels.BaseSize != 5 || hard.Levels.BaseSteps != 8 || hard.Levels.StepsGrowth != 3 {
		t.Errorf("hard levels = %+v", hard.Levels)
	}

	fixed := DefaultShiftConfig()
	ApplyShiftPreset(&fixed, DifficultyFixed)
	if fixed.Levels.StepsGrowth != 0 || fixed.Levels.DensityGrowth != 0 || fixed.Levels.MaxSize != fixed.Levels.BaseSize {
		t.Errorf("fixed levels = %+v", fixed.Levels)
	}

	normal := DefaultShiftConfig()
	ApplyShiftPreset(&normal, DifficultyNormal)
	if normal != DefaultShiftConfig() {
		t.Error("normal preset should not change the config")
	}

	for _, c := range []ShiftConfig{easy, hard, fixed} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}
