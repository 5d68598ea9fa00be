package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pairsFile = "pairs.yaml"

// LoadPairs loads Pairs configuration.
// Search order: customPath -> ~/.pairs/configs/pairs.yaml -> ./configs/pairs.yaml -> embedded default
// Missing fields fall back to defaults.
func LoadPairs(customPath string) (PairsConfig, error) {
	cfg := DefaultPairsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(pairsFile); userCfgPath != "" {
		if parsed, ok := readOptional(userCfgPath, cfg); ok {
			return finish(parsed)
		}
	}

	// Try local configs directory
	if parsed, ok := readOptional(filepath.Join("configs", pairsFile), cfg); ok {
		return finish(parsed)
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPairsYAML, &cfg); err != nil {
		return DefaultPairsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

// readOptional parses path over base. Unreadable or invalid files are skipped.
func readOptional(path string, base PairsConfig) (PairsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// finish normalizes cfg and rejects values that cannot be defaulted.
func finish(cfg PairsConfig) (PairsConfig, error) {
	cfg.Normalize()
	if _, err := ParseDifficulty(string(cfg.Difficulty)); err != nil {
		return cfg, err
	}
	if _, err := cfg.SessionMode(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pairs", "configs", filename)
}
