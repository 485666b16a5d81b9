package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBoatRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultBoatRunnerConfig() drifted apart:\n%+v\n%+v", cfg, DefaultBoatRunnerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(DefaultBoatRunnerConfig()); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoatRunnerConfig)
		want   string
	}{
		{"inverted boat bounds", func(c *BoatRunnerConfig) { c.Boat.MinX, c.Boat.MaxX = 2, -2 }, "boat.min_x"},
		{"zero tick rate", func(c *BoatRunnerConfig) { c.TickRate = 0 }, "tick_rate"},
		{"zero base speed", func(c *BoatRunnerConfig) { c.Track.BaseSpeed = 0 }, "base_speed"},
		{"no lane slots", func(c *BoatRunnerConfig) { c.Track.LaneSlots = nil }, "lane_slots"},
		{"fewer slots than lanes", func(c *BoatRunnerConfig) { c.Track.LaneSlots = []float64{0, 1} }, "at least one slot"},
		{"duplicate lane slots", func(c *BoatRunnerConfig) { c.Track.LaneSlots = []float64{0, 0, 0} }, "unique"},
		{"no rock lanes", func(c *BoatRunnerConfig) { c.Rocks.Lanes = nil }, "rocks.lanes"},
		{"spawn inside threshold", func(c *BoatRunnerConfig) { c.Rocks.Lanes[0].SpawnFar = -20 }, "spawn_far"},
		{"negative ramp ceiling", func(c *BoatRunnerConfig) { c.Difficulty.Ceiling = -1 }, "ceiling"},
		{"zero cos floor", func(c *BoatRunnerConfig) { c.Collision.MinCosFactor = 0 }, "min_cos_factor"},
		{"bad near/far", func(c *BoatRunnerConfig) { c.Camera.Far = c.Camera.Near }, "near/far"},
		{"degenerate sea", func(c *BoatRunnerConfig) { c.Sea.TileLength = 0 }, "tile_length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBoatRunnerConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultBoatRunnerConfig()
	cfg.TickRate = -1
	cfg.Sea.TileLength = -1

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "tick_rate") || !strings.Contains(err.Error(), "tile_length") {
		t.Errorf("both problems should be reported, got %v", err)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("track:\n  base_speed: 0.5\ndifficulty:\n  ceiling: 1.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Track.BaseSpeed != 0.5 {
		t.Errorf("BaseSpeed = %g, expected 0.5", cfg.Track.BaseSpeed)
	}
	if cfg.Difficulty.Ceiling != 1.0 {
		t.Errorf("Ceiling = %g, expected 1.0", cfg.Difficulty.Ceiling)
	}
	// Untouched fields keep defaults
	if cfg.Boat.Step != DefaultBoatRunnerConfig().Boat.Step {
		t.Errorf("Boat.Step = %g, expected default", cfg.Boat.Step)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("tick_rate = 30\n\n[track]\nlane_slots = [-2.0, 0.0, 2.0]\n\n[boat]\nmin_x = -2.5\nmax_x = 2.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if !reflect.DeepEqual(cfg.Track.LaneSlots, []float64{-2, 0, 2}) {
		t.Errorf("LaneSlots = %v", cfg.Track.LaneSlots)
	}
	if cfg.Boat.MinX != -2.5 || cfg.Boat.MaxX != 2.5 {
		t.Errorf("boat bounds = [%g, %g]", cfg.Boat.MinX, cfg.Boat.MaxX)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing custom path should fail")
	}
}

func TestLoadCustomMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("track: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should reject malformed YAML")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBoatRunnerConfig()
	cfg.Difficulty.Rate = 0.002

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Errorf("snapshot did not survive a round trip")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":       FormatTOML,
		"a.TOML":       FormatTOML,
		"a.yaml":       FormatYAML,
		"a.yml":        FormatYAML,
		"no-extension": FormatYAML,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %s, expected %s", path, got, want)
		}
	}
}

func TestPresets(t *testing.T) {
	base := DefaultBoatRunnerConfig()

	tests := []struct {
		preset      DifficultyPreset
		wantRate    float64
		wantCeiling float64
	}{
		{"", base.Difficulty.Rate, base.Difficulty.Ceiling},
		{DifficultyNormal, base.Difficulty.Rate, base.Difficulty.Ceiling},
		{DifficultyEasy, base.Difficulty.Rate * 0.5, base.Difficulty.Ceiling * 0.6},
		{DifficultyHard, base.Difficulty.Rate * 2.0, base.Difficulty.Ceiling * 1.5},
		{DifficultyFixed, 0, base.Difficulty.Ceiling},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBoatRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Rate != tc.wantRate {
				t.Errorf("Rate = %g, expected %g", cfg.Difficulty.Rate, tc.wantRate)
			}
			if cfg.Difficulty.Ceiling != tc.wantCeiling {
				t.Errorf("Ceiling = %g, expected %g", cfg.Difficulty.Ceiling, tc.wantCeiling)
			}
			if err := Validate(cfg); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " hard ", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("BOATRUNNER_FPS", "30")
	t.Setenv("BOATRUNNER_SEED", "99")
	t.Setenv("BOATRUNNER_DIFFICULTY", "hard")
	t.Setenv("BOATRUNNER_LOG_LEVEL", "debug")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.FPS != 30 || e.Seed != 99 || e.Difficulty != "hard" || e.LogLevel != "debug" {
		t.Errorf("ParseEnv() = %+v", e)
	}
}

func TestParseEnvRejectsBadNumber(t *testing.T) {
	t.Setenv("BOATRUNNER_FPS", "fast")
	if _, err := ParseEnv(); err == nil {
		t.Error("ParseEnv() should reject a non-numeric fps")
	}
}
