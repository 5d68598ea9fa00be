package config

import (
	_ "embed"
)

//go:embed defaults/pairs.yaml
var defaultPairsYAML []byte

// DefaultPairsConfig returns the default Pairs configuration.
func DefaultPairsConfig() PairsConfig {
	return PairsConfig{
		Mode:       "catalog",
		Difficulty: DifficultyNormal,
		Rules: RulesConfig{
			StartHints:        3,
			StartShuffles:     3,
			ResourceCap:       3,
			ReshuffleAttempts: 20,
		},
		Timing: TimingConfig{
			TickRate:        30,
			MatchBonusMS:    1000,
			MatchDelayMS:    500,
			MismatchDelayMS: 400,
		},
	}
}
