package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

const (
	minTimeScale = 0.25
	maxTimeScale = 4.0
)

// ParseDifficulty converts a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// TimeScaleForPreset returns the stage time multiplier for a preset.
// Difficulty only changes how long each stage lasts.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// ApplyPairsPreset sets the difficulty and drops any explicit time scale so
// the preset takes effect.
func ApplyPairsPreset(cfg *PairsConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	cfg.Timing.TimeScale = 0
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
