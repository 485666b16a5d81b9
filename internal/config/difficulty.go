package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a CLI/env value to a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyFixed:
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the ramp based on a difficulty preset.
// Normal and the empty preset leave the loaded values untouched.
func ApplyPreset(cfg *BoatRunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Rate *= 0.5
		cfg.Difficulty.Ceiling *= 0.6
	case DifficultyHard:
		cfg.Difficulty.Rate *= 2.0
		cfg.Difficulty.Ceiling *= 1.5
		cfg.Track.BaseSpeed *= 1.2
	case DifficultyFixed:
		cfg.Difficulty.Rate = 0
	}
}
