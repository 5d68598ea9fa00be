package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "pairs.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadPairsEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPairs("")
	if err != nil {
		t.Fatalf("LoadPairs() failed: %v", err)
	}

	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("difficulty = %q, want normal", cfg.Difficulty)
	}
	if got, want := cfg.SessionRules(), session.DefaultRules(); got != want {
		t.Errorf("SessionRules() = %+v, want %+v", got, want)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.Timing.TickRate)
	}
}

func TestLoadPairsUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pairs", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "difficulty: hard\nmode: dynamic\n")

	cfg, err := LoadPairs("")
	if err != nil {
		t.Fatalf("LoadPairs() failed: %v", err)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("difficulty = %q, want hard", cfg.Difficulty)
	}
	mode, err := cfg.SessionMode()
	if err != nil || mode != session.ModeDynamic {
		t.Errorf("SessionMode() = %v, %v", mode, err)
	}
}

func TestLoadPairsCustomPathPartial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
rules:
  start_hints: 5
  block_input_during_removal: true
timing:
  match_delay_ms: 250
  tick_rate: -3
stages:
  dir: ./levels
`)

	cfg, err := LoadPairs(path)
	if err != nil {
		t.Fatalf("LoadPairs() failed: %v", err)
	}

	rules := cfg.SessionRules()
	if rules.StartHints != 5 {
		t.Errorf("StartHints = %d, want 5", rules.StartHints)
	}
	if rules.StartShuffles != 3 {
		t.Errorf("StartShuffles = %d, want default 3", rules.StartShuffles)
	}
	if !rules.BlockInputDuringRemoval {
		t.Error("BlockInputDuringRemoval not applied")
	}
	if rules.MatchDelay != 250*time.Millisecond {
		t.Errorf("MatchDelay = %v, want 250ms", rules.MatchDelay)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("negative tick rate should fall back to 30, got %d", cfg.Timing.TickRate)
	}
	if cfg.Stages.Dir != "./levels" {
		t.Errorf("Stages.Dir = %q", cfg.Stages.Dir)
	}
}

func TestLoadPairsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "rules: [unclosed"},
		{"bad difficulty", "difficulty: nightmare\n"},
		{"bad mode", "mode: endless\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			if _, err := LoadPairs(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadPairs(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestTimeScale(t *testing.T) {
	tests := []struct {
		name       string
		difficulty DifficultyPreset
		override   float64
		want       float64
	}{
		{"easy", DifficultyEasy, 0, 1.5},
		{"normal", DifficultyNormal, 0, 1.0},
		{"hard", DifficultyHard, 0, 0.75},
		{"override", DifficultyHard, 2, 2},
		{"override clamped high", DifficultyNormal, 10, 4},
		{"override clamped low", DifficultyNormal, 0.1, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPairsConfig()
			cfg.Difficulty = tt.difficulty
			cfg.Timing.TimeScale = tt.override
			if got := cfg.TimeScale(); got != tt.want {
				t.Errorf("TimeScale() = %v, want %v", got, tt.want)
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
		{"Easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPairsPreset(t *testing.T) {
	cfg := DefaultPairsConfig()
	cfg.Timing.TimeScale = 3
	ApplyPairsPreset(&cfg, DifficultyEasy)
	if cfg.TimeScale() != 1.5 {
		t.Errorf("preset should replace the override, got %v", cfg.TimeScale())
	}
}

func TestNormalizeClampsStartResources(t *testing.T) {
	tests := []struct {
		name         string
		hints        int
		shuffles     int
		resourceCap  int
		wantHints    int
		wantShuffles int
	}{
		{"above cap", 5, 9, 3, 3, 3},
		{"below cap", 1, 2, 3, 1, 2},
		{"zero kept", 0, 0, 3, 0, 0},
		{"default cap", 7, 4, 0, 3, 3},
		{"negative uses default", -1, -1, 2, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPairsConfig()
			cfg.Rules.StartHints = tt.hints
			cfg.Rules.StartShuffles = tt.shuffles
			cfg.Rules.ResourceCap = tt.resourceCap
			cfg.Normalize()
			if cfg.Rules.StartHints != tt.wantHints {
				t.Errorf("StartHints = %d, want %d", cfg.Rules.StartHints, tt.wantHints)
			}
			if cfg.Rules.StartShuffles != tt.wantShuffles {
				t.Errorf("StartShuffles = %d, want %d", cfg.Rules.StartShuffles, tt.wantShuffles)
			}
		})
	}
}

func TestLoadPairsClampsStartResources(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "rules:\n  start_hints: 5\n  start_shuffles: 4\n  resource_cap: 3\n")
	cfg, err := LoadPairs(path)
	if err != nil {
		t.Fatalf("LoadPairs failed: %v", err)
	}
	rules := cfg.SessionRules()
	if rules.StartHints != 3 || rules.StartShuffles != 3 {
		t.Errorf("expected 3/3, got %d/%d", rules.StartHints, rules.StartShuffles)
	}
}
