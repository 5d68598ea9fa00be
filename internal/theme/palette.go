package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pairs/internal/core"
)

// Palette maps screen colors to terminal colors for one theme.
type Palette struct {
	Foreground map[core.Color]lipgloss.Color
	Background lipgloss.Color
}

var darkPalette = Palette{
	Foreground: map[core.Color]lipgloss.Color{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	},
}

// Light backgrounds wash out the bright and yellow tones, so they map to
// darker 256-color shades.
var lightPalette = Palette{
	Foreground: map[core.Color]lipgloss.Color{
		core.ColorDefault:       "235",
		core.ColorRed:           "124",
		core.ColorGreen:         "28",
		core.ColorYellow:        "136",
		core.ColorBlue:          "25",
		core.ColorMagenta:       "90",
		core.ColorCyan:          "30",
		core.ColorWhite:         "240",
		core.ColorBrightRed:     "160",
		core.ColorBrightGreen:   "34",
		core.ColorBrightYellow:  "130",
		core.ColorBrightBlue:    "26",
		core.ColorBrightMagenta: "127",
		core.ColorBrightCyan:    "31",
		core.ColorBrightWhite:   "232",
		core.ColorOrange:        "166",
		core.ColorGray:          "244",
	},
	Background: "255",
}

// Palette returns the color table for t.
func (t Theme) Palette() Palette {
	if t == Light {
		return lightPalette
	}
	return darkPalette
}

// Style builds the lipgloss style for a cell color and attribute set.
func (p Palette) Style(c core.Color, a core.Attr) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := p.Foreground[c]; ok {
		style = style.Foreground(fg)
	}
	if p.Background != "" {
		style = style.Background(p.Background)
	}
	if a.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if a.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if a.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if a.Has(core.AttrFaint) {
		style = style.Faint(true)
	}
	return style
}
