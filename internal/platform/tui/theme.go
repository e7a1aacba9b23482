package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ErrUnknownTheme is returned by ParseTheme for names it does not know.
var ErrUnknownTheme = errors.New("tui: unknown theme")

// Theme names a color scheme for the board, menus and scoreboard.
type Theme string

const (
	ThemeDark     Theme = "dark"
	ThemeLight    Theme = "light"
	ThemeContrast Theme = "contrast" // High contrast, everything bold
)

// Themes lists the selectable themes in display order.
var Themes = []Theme{ThemeDark, ThemeLight, ThemeContrast}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// UIColors are the chrome colors outside the board.
type UIColors struct {
	Title     lipgloss.Color
	Active    lipgloss.Color
	Dim       lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color // Background of the selected tab or row
}

// themeSpec is the full color plan of one theme.
type themeSpec struct {
	tiles map[core.Color]string // Overrides of ansiCodes
	bold  bool
	ui    UIColors
}

func (t Theme) spec() themeSpec {
	switch t {
	case ThemeLight:
		// Bright yellows and whites vanish on a light background.
		return themeSpec{
			tiles: map[core.Color]string{
				core.ColorYellow:       "136",
				core.ColorBrightYellow: "130",
				core.ColorWhite:        "240",
				core.ColorBrightWhite:  "232",
				core.ColorCyan:         "31",
				core.ColorBrightCyan:   "30",
				core.ColorBrightGreen:  "28",
				core.ColorGray:         "242",
			},
			ui: UIColors{Title: "130", Active: "25", Dim: "244", Border: "246", Highlight: "153"},
		}
	case ThemeContrast:
		return themeSpec{
			tiles: map[core.Color]string{
				core.ColorRed:     "9",
				core.ColorGreen:   "10",
				core.ColorYellow:  "11",
				core.ColorBlue:    "12",
				core.ColorMagenta: "13",
				core.ColorCyan:    "14",
				core.ColorWhite:   "15",
				core.ColorOrange:  "214",
				core.ColorGray:    "252",
			},
			bold: true,
			ui:   UIColors{Title: "11", Active: "15", Dim: "250", Border: "15", Highlight: "21"},
		}
	default:
		return themeSpec{
			ui: UIColors{Title: "214", Active: "229", Dim: "241", Border: "240", Highlight: "57"},
		}
	}
}
