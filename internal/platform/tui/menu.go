package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
	"github.com/vovakirdan/tui-pairs/internal/pairs/stages"
	"github.com/vovakirdan/tui-pairs/internal/registry"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

// MenuItem is one playable entry in the stage picker.
type MenuItem struct {
	GameID  string
	StartAt int // stage to begin on; 0 means the first
	Name    string
	Size    string
	Time    string
}

// MenuItems lists one entry per catalog stage followed by the stage loader.
func MenuItems(ctx context.Context) ([]MenuItem, error) {
	cat, err := pairs.StageCatalog(ctx)
	if err != nil {
		return nil, err
	}

	defs := cat.All()
	items := make([]MenuItem, 0, len(defs)+1)
	for i, def := range defs {
		items = append(items, catalogItem(i+1, def))
	}

	if registry.Exists(pairs.IDDynamic) {
		items = append(items, MenuItem{
			GameID: pairs.IDDynamic,
			Name:   "Stage loader (all files)",
			Size:   "-",
			Time:   "-",
		})
	}
	return items, nil
}

func catalogItem(n int, def stages.Definition) MenuItem {
	return MenuItem{
		GameID:  pairs.IDCatalog,
		StartAt: n,
		Name:    def.Title(),
		Size:    fmt.Sprintf("%dx%d", def.Rows, def.Cols),
		Time:    formatLimit(def.TimeLimit),
	}
}

func formatLimit(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// MenuModel is the Bubble Tea model for the stage picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	prefs    theme.Preferences
	theme    theme.Theme
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []MenuItem, prefs theme.Preferences, t theme.Theme, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  items,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		prefs:  prefs,
		theme:  t,
		config: cfg,
	}
	m.help.Width = cfg.ScreenW
	m.table = m.createTable()
	return m
}

// createTable builds the stage table sized to the terminal.
func (m MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Stage", Width: 26},
		{Title: "Size", Width: 6},
		{Title: "Time", Width: 6},
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		num := "-"
		if it.StartAt > 0 {
			num = fmt.Sprintf("%d", it.StartAt)
		}
		rows[i] = table.Row{num, it.Name, it.Size, it.Time}
	}

	// Leave room for title, help and margins
	height := min(len(rows)+1, max(m.config.ScreenH-8, 3))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(m.accent()).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	return t
}

func (m MenuModel) accent() lipgloss.Color {
	if m.theme == theme.Light {
		return lipgloss.Color("230")
	}
	return lipgloss.Color("229")
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			m.theme = m.theme.Toggle()
			//nolint:errcheck // Best-effort save, the toggle still applies
			theme.Save(m.prefs, m.theme)
			cursor := m.table.Cursor()
			m.table = m.createTable()
			m.table.SetCursor(cursor)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.accent())

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  P A I R S  ", m.config.ScreenW)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a stage  ·  theme: "+m.theme.String(), m.config.ScreenW))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	box := tableStyle.Render(m.table.View())
	b.WriteString(lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, box))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Theme returns the theme chosen in the menu.
func (m MenuModel) Theme() theme.Theme {
	return m.theme
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item   MenuItem
	Theme  theme.Theme
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(items []MenuItem, prefs theme.Preferences, t theme.Theme, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(items, prefs, t, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Theme: t}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Theme: t, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Theme:  m.Theme(),
	}
	if m.Selected() == nil {
		result.Quit = true
		return result, nil
	}
	result.Item = *m.Selected()
	return result, nil
}
