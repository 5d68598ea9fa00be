package pairs

import (
	"context"
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
	"github.com/vovakirdan/tui-pairs/internal/pairs/stages"
)

// Settings are the process-wide knobs shared by every game instance.
// They are set once at startup from the config file and CLI flags.
type Settings struct {
	Stages    fs.FS // stage files; nil means the built-in set
	Rules     session.Rules
	TimeScale float64
	Logger    *log.Logger
}

// DefaultSettings returns settings for the built-in stages and standard rules.
func DefaultSettings() Settings {
	return Settings{
		Rules:     session.DefaultRules(),
		TimeScale: 1,
	}
}

var (
	settingsMu sync.RWMutex
	current    = DefaultSettings()
)

// Configure replaces the settings used by games created afterwards.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	current = s
}

// CurrentSettings returns the settings new games are created with.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return current
}

// stageFS returns the configured stage files or the built-in ones.
func (s Settings) stageFS() fs.FS {
	if s.Stages != nil {
		return s.Stages
	}
	return stages.Builtin()
}

func (s Settings) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

// StageCatalog loads the stages catalog mode plays with the current settings.
func StageCatalog(ctx context.Context) (*stages.Catalog, error) {
	return stages.LoadCatalog(ctx, CurrentSettings().stageFS())
}
