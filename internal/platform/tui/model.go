package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/registry"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

// resizer is implemented by games that can adapt to a new screen size
// without losing their state.
type resizer interface {
	Resize(w, h int)
}

var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	prefs      theme.Preferences
	theme      theme.Theme
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	embedded   bool // hosted by SessionModel; never sends tea.Quit on back
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// allowBack enables the back-to-menu binding.
func NewModel(game registry.Game, prefs theme.Preferences, t theme.Theme, cfg core.RuntimeConfig, allowBack bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	keys.Skip.SetEnabled(cfg.Debug)
	keys.Back.SetEnabled(allowBack)

	m := Model{
		game:       game,
		prefs:      prefs,
		theme:      t,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.boardHeight(cfg.ScreenH)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// footerHeight is the number of rows the help bar takes.
func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return 4
	}
	return 1
}

func (m Model) boardHeight(termH int) int {
	return max(termH-m.footerHeight(), 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.SetClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		termH := m.config.ScreenH + m.footerHeight()
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.config.ScreenW, termH)
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case core.ActionTheme:
		m.theme = m.theme.Toggle()
		//nolint:errcheck // Best-effort save, the toggle still applies
		theme.Save(m.prefs, m.theme)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// resize adapts the screen to a new terminal size.
// Games that cannot resize in place are reset unless they are over.
func (m *Model) resize(termW, termH int) {
	m.config.ScreenW = termW
	m.config.ScreenH = m.boardHeight(termH)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".pairs", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme.Palette()) + "\n" + m.help.View(m.keys)
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// It reports whether the player asked to return to the menu and the theme
// in effect when the program ended.
func Run(game registry.Game, prefs theme.Preferences, t theme.Theme, cfg core.RuntimeConfig, allowBack bool) (bool, theme.Theme, error) {
	model := NewModel(game, prefs, t, cfg, allowBack)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks select tokens
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, t, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, t, nil
	}
	return m.BackToMenu(), m.Theme(), nil
}
