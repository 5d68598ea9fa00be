package theme

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pairs/internal/core"
)

type memPrefs struct {
	values map[string]string
	err    error
}

func (m *memPrefs) Preference(key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memPrefs) SetPreference(key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"dark", Dark, false},
		{"Light", Light, false},
		{" DARK ", Dark, false},
		{"solarized", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	if Dark.Toggle() != Light {
		t.Error("Dark.Toggle() should be Light")
	}
	if Light.Toggle() != Dark {
		t.Error("Light.Toggle() should be Dark")
	}
}

func TestLoadFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		prefs    Preferences
		fallback Theme
		want     Theme
		wantErr  bool
	}{
		{"nil store", nil, Light, Light, false},
		{"nothing saved", &memPrefs{}, Dark, Dark, false},
		{"saved light", &memPrefs{values: map[string]string{PreferenceKey: "light"}}, Dark, Light, false},
		{"garbage saved", &memPrefs{values: map[string]string{PreferenceKey: "neon"}}, Dark, Dark, false},
		{"store error", &memPrefs{err: errors.New("disk")}, Light, Light, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.prefs, tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	prefs := &memPrefs{}
	if err := Save(prefs, Light); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := Load(prefs, Dark)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != Light {
		t.Errorf("Load() = %q, want light", got)
	}

	if err := Save(nil, Dark); err != nil {
		t.Errorf("Save(nil) should be a no-op, got %v", err)
	}
}

func TestFromBackground(t *testing.T) {
	if FromBackground(true) != Dark || FromBackground(false) != Light {
		t.Error("FromBackground mapping is wrong")
	}
}

func TestPaletteCoversColors(t *testing.T) {
	light := Light.Palette()
	for _, c := range core.SymbolColors {
		if _, ok := light.Foreground[c]; !ok {
			t.Errorf("light palette missing color %d", c)
		}
	}
	if Dark.Palette().Background != "" {
		t.Error("dark palette should keep the terminal background")
	}
}
