package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes. Empty means default.
var ansiCodes = map[core.Color]string{
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
}

// Palette holds the lipgloss styles for each screen color under one theme.
// SSH sessions build their own palette so colors follow the client's
// terminal profile.
type Palette struct {
	renderer *lipgloss.Renderer
	theme    Theme
	ui       UIColors
	styles   map[core.Color]lipgloss.Style
	plain    lipgloss.Style
}

// NewPalette builds dark theme styles on the given renderer. A nil renderer
// uses the process's default (local terminal).
func NewPalette(r *lipgloss.Renderer) *Palette {
	return NewThemedPalette(r, ThemeDark)
}

// NewThemedPalette builds styles for theme on the given renderer.
func NewThemedPalette(r *lipgloss.Renderer, theme Theme) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	spec := theme.spec()
	p := &Palette{
		renderer: r,
		theme:    theme,
		ui:       spec.ui,
		styles:   make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		plain:    r.NewStyle(),
	}
	for c, code := range ansiCodes {
		if override, ok := spec.tiles[c]; ok {
			code = override
		}
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code)).Bold(spec.bold)
	}
	// Large tiles stand out.
	for _, c := range []core.Color{core.ColorBrightMagenta, core.ColorBrightBlue, core.ColorMagenta} {
		p.styles[c] = p.styles[c].Bold(true)
	}
	return p
}

// WithTheme returns a palette for theme on the same renderer.
func (p *Palette) WithTheme(theme Theme) *Palette {
	if p.theme == theme {
		return p
	}
	return NewThemedPalette(p.renderer, theme)
}

// Theme returns the palette's theme.
func (p *Palette) Theme() Theme {
	return p.theme
}

// UI returns the menu and scoreboard colors.
func (p *Palette) UI() UIColors {
	return p.ui
}

// NewStyle returns a blank style bound to the palette's renderer.
func (p *Palette) NewStyle() lipgloss.Style {
	return p.renderer.NewStyle()
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
