// Package theme holds the dark/light color preference and its persistence.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a color scheme for the board and HUD.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// PreferenceKey is the key the theme is stored under.
const PreferenceKey = "theme"

// Preferences is the key/value store a theme is saved to.
// *storage.Store satisfies it.
type Preferences interface {
	Preference(key string) (string, bool, error)
	SetPreference(key, value string) error
}

// Parse converts a name into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("theme: unknown theme %q (want dark or light)", s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}

// Detect picks a theme from the terminal background.
func Detect() Theme {
	return FromBackground(lipgloss.HasDarkBackground())
}

// FromBackground maps a background darkness check to a theme.
func FromBackground(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// Load returns the saved theme, or fallback when nothing valid is stored.
// A nil store always yields fallback.
func Load(p Preferences, fallback Theme) (Theme, error) {
	if p == nil {
		return fallback, nil
	}
	value, ok, err := p.Preference(PreferenceKey)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	t, err := Parse(value)
	if err != nil {
		return fallback, nil
	}
	return t, nil
}

// Save stores t. A nil store is a no-op.
func Save(p Preferences, t Theme) error {
	if p == nil {
		return nil
	}
	return p.SetPreference(PreferenceKey, t.String())
}
