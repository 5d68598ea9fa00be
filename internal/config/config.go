// Package config provides YAML-based game configuration loading and
// difficulty presets for Pairs.
package config

import (
	"time"

	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
)

// PairsConfig contains all configuration for the Pairs game.
type PairsConfig struct {
	Mode       string           `yaml:"mode"` // "catalog" or "dynamic"
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Stages     StagesConfig     `yaml:"stages"`
}

// RulesConfig defines resource and matching rules.
type RulesConfig struct {
	StartHints              int  `yaml:"start_hints"`
	StartShuffles           int  `yaml:"start_shuffles"`
	ResourceCap             int  `yaml:"resource_cap"`
	ReshuffleAttempts       int  `yaml:"reshuffle_attempts"`
	BlockInputDuringRemoval bool `yaml:"block_input_during_removal"`
}

// TimingConfig defines delays and clock parameters.
type TimingConfig struct {
	TickRate        int     `yaml:"tick_rate"`
	MatchBonusMS    int     `yaml:"match_bonus_ms"`
	MatchDelayMS    int     `yaml:"match_delay_ms"`
	MismatchDelayMS int     `yaml:"mismatch_delay_ms"`
	TimeScale       float64 `yaml:"time_scale"` // overrides the difficulty preset when > 0
}

// StagesConfig points at stage files on disk.
type StagesConfig struct {
	Dir string `yaml:"dir"` // empty means the built-in stages
}

// SessionRules converts the rule and timing sections into session rules.
func (c PairsConfig) SessionRules() session.Rules {
	return session.Rules{
		StartHints:              c.Rules.StartHints,
		StartShuffles:           c.Rules.StartShuffles,
		ResourceCap:             c.Rules.ResourceCap,
		ReshuffleAttempts:       c.Rules.ReshuffleAttempts,
		MatchBonus:              time.Duration(c.Timing.MatchBonusMS) * time.Millisecond,
		MatchDelay:              time.Duration(c.Timing.MatchDelayMS) * time.Millisecond,
		MismatchDelay:           time.Duration(c.Timing.MismatchDelayMS) * time.Millisecond,
		BlockInputDuringRemoval: c.Rules.BlockInputDuringRemoval,
	}
}

// TimeScale returns the multiplier applied to stage time limits.
func (c PairsConfig) TimeScale() float64 {
	if c.Timing.TimeScale > 0 {
		return clampF(c.Timing.TimeScale, minTimeScale, maxTimeScale)
	}
	return TimeScaleForPreset(c.Difficulty)
}

// SessionMode returns the configured stage lifecycle.
func (c PairsConfig) SessionMode() (session.Mode, error) {
	return session.ParseMode(c.Mode)
}

// Normalize fills zero or negative values with defaults so a partial file
// still yields a playable configuration. Starting hints and shuffles never
// exceed the resource cap.
func (c *PairsConfig) Normalize() {
	def := DefaultPairsConfig()

	if c.Difficulty == "" {
		c.Difficulty = def.Difficulty
	}
	if c.Rules.StartHints < 0 {
		c.Rules.StartHints = def.Rules.StartHints
	}
	if c.Rules.StartShuffles < 0 {
		c.Rules.StartShuffles = def.Rules.StartShuffles
	}
	if c.Rules.ResourceCap <= 0 {
		c.Rules.ResourceCap = def.Rules.ResourceCap
	}
	c.Rules.StartHints = min(c.Rules.StartHints, c.Rules.ResourceCap)
	c.Rules.StartShuffles = min(c.Rules.StartShuffles, c.Rules.ResourceCap)
	if c.Rules.ReshuffleAttempts <= 0 {
		c.Rules.ReshuffleAttempts = def.Rules.ReshuffleAttempts
	}
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.MatchBonusMS < 0 {
		c.Timing.MatchBonusMS = def.Timing.MatchBonusMS
	}
	if c.Timing.MatchDelayMS <= 0 {
		c.Timing.MatchDelayMS = def.Timing.MatchDelayMS
	}
	if c.Timing.MismatchDelayMS <= 0 {
		c.Timing.MismatchDelayMS = def.Timing.MismatchDelayMS
	}
}
