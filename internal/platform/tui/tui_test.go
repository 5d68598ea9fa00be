package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

type fakeGame struct {
	frames  []core.InputFrame
	resets  int
	resizes [][2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "PAIRS")
}
func (g *fakeGame) State() core.GameState { return core.GameState{} }
func (g *fakeGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{}
}

type memPrefs map[string]string

func (m memPrefs) Preference(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memPrefs) SetPreference(key, value string) error {
	m[key] = value
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runes("j"), core.ActionDown},
		{"wasd left", runes("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"hint", runes("?"), core.ActionHint},
		{"shuffle", runes("x"), core.ActionShuffle},
		{"next", runes("n"), core.ActionNext},
		{"restart", runes("r"), core.ActionRestart},
		{"theme", runes("t"), core.ActionTheme},
		{"quit", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"skip disabled", tea.KeyMsg{Type: tea.KeyF9}, core.ActionNone},
		{"back disabled", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}

	keys.Skip.SetEnabled(true)
	keys.Back.SetEnabled(true)
	if got := keys.Action(tea.KeyMsg{Type: tea.KeyF9}); got != core.ActionDebugSkip {
		t.Errorf("enabled skip = %v", got)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionBack {
		t.Errorf("enabled back = %v", got)
	}
}

func TestModelForwardsActionsOnTick(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, theme.Dark, testConfig(), false)

	next, _ := m.Update(runes("x"))
	next, _ = next.Update(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(game.frames) != 1 {
		t.Fatalf("expected 1 step, got %d", len(game.frames))
	}
	frame := game.frames[0]
	if !frame.Has(core.ActionShuffle) {
		t.Error("shuffle not forwarded")
	}
	if p, ok := frame.Click(); !ok || p != (core.Point{X: 12, Y: 5}) {
		t.Errorf("click = %v, %v", p, ok)
	}

	// Input is cleared between frames
	next.Update(TickMsg{})
	if !game.frames[1].Empty() {
		t.Error("second frame should be empty")
	}
}

func TestModelThemeToggleSaves(t *testing.T) {
	prefs := memPrefs{}
	m := NewModel(&fakeGame{}, prefs, theme.Dark, testConfig(), false)

	next, _ := m.Update(runes("t"))
	if got := next.(Model).Theme(); got != theme.Light {
		t.Errorf("theme = %v, want light", got)
	}
	if prefs[theme.PreferenceKey] != "light" {
		t.Errorf("saved theme = %q", prefs[theme.PreferenceKey])
	}
}

func TestModelBack(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, theme.Dark, testConfig(), true)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("esc should request the menu")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program on back")
	}

	embedded := NewModel(&fakeGame{}, nil, theme.Dark, testConfig(), true)
	embedded.embedded = true
	next, cmd = embedded.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || cmd != nil {
		t.Error("embedded model should flag back without quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, theme.Dark, testConfig(), false)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 0 {
		t.Errorf("resizable game was reset %d times", game.resets)
	}
	if len(game.resizes) != 1 || game.resizes[0] != [2]int{100, 29} {
		t.Errorf("resizes = %v, want [[100 29]]", game.resizes)
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, theme.Dark, testConfig(), false)
	view := m.View()
	if !strings.Contains(view, "PAIRS") {
		t.Error("view missing game output")
	}
	if !strings.Contains(view, "shuffle") {
		t.Error("view missing help bar")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "pairs")

	out := RenderScreen(s, theme.Dark.Palette())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "hello") || !strings.Contains(lines[1], "pairs") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMenuItems(t *testing.T) {
	items, err := MenuItems(context.Background())
	if err != nil {
		t.Fatalf("MenuItems() failed: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 5 stages plus loader, got %d", len(items))
	}

	first := items[0]
	if first.StartAt != 1 || first.Size != "4x6" || first.Time != "1:30" {
		t.Errorf("first item = %+v", first)
	}
	if last := items[len(items)-1]; last.GameID != "pairs_dynamic" {
		t.Errorf("last item should be the stage loader, got %+v", last)
	}
}

func TestMenuSelect(t *testing.T) {
	items, err := MenuItems(context.Background())
	if err != nil {
		t.Fatalf("MenuItems() failed: %v", err)
	}
	m := NewMenuModel(items, nil, theme.Dark, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selection should end the menu program")
	}

	sel := next.(MenuModel).Selected()
	if sel == nil || sel.StartAt != 2 {
		t.Fatalf("selected = %+v, want stage 2", sel)
	}
}

func TestSessionModelMenuGameMenu(t *testing.T) {
	items, err := MenuItems(context.Background())
	if err != nil {
		t.Fatalf("MenuItems() failed: %v", err)
	}
	s := NewSessionModel(items, memPrefs{}, theme.Dark, testConfig(), "tester")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("selecting a stage should start a game")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.gameModel != nil {
		t.Error("back should return to the menu")
	}
	if s.quitting {
		t.Error("back must not end the session")
	}
}
