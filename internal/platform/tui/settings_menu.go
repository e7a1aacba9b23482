package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Preferences are the display options a player can change.
type Preferences struct {
	Animation t2048.AnimationMode
	Theme     Theme
}

// animationLabels describe each mode in the options screen.
var animationLabels = map[t2048.AnimationMode]string{
	t2048.AnimationNormal: "Normal",
	t2048.AnimationFast:   "Fast",
	t2048.AnimationOff:    "Off (instant moves)",
}

var themeLabels = map[Theme]string{
	ThemeDark:     "Dark",
	ThemeLight:    "Light",
	ThemeContrast: "High contrast",
}

// settingRow is one selectable line; exactly one of its fields is set.
type settingRow struct {
	animation t2048.AnimationMode
	theme     Theme
}

func (r settingRow) apply(p Preferences) Preferences {
	if r.animation != "" {
		p.Animation = r.animation
	} else {
		p.Theme = r.theme
	}
	return p
}

func (r settingRow) active(p Preferences) bool {
	if r.animation != "" {
		return r.animation == p.Animation
	}
	return r.theme == p.Theme
}

func (r settingRow) label() string {
	if r.animation != "" {
		return animationLabels[r.animation]
	}
	return themeLabels[r.theme]
}

func settingRows() []settingRow {
	rows := make([]settingRow, 0, len(t2048.AnimationModes)+len(Themes))
	for _, mode := range t2048.AnimationModes {
		rows = append(rows, settingRow{animation: mode})
	}
	for _, theme := range Themes {
		rows = append(rows, settingRow{theme: theme})
	}
	return rows
}

// SettingsModel lets the player pick tile animations and the color theme.
type SettingsModel struct {
	rows     []settingRow
	cursor   int
	current  Preferences
	width    int
	height   int
	keys     MenuKeyMap
	chosen   *Preferences
	quitting bool
	back     bool
}

// NewSettingsModel creates the options screen with the cursor on the
// current animation mode.
func NewSettingsModel(current Preferences, width, height int) SettingsModel {
	m := SettingsModel{
		rows:    settingRows(),
		current: current,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
	}
	for i, r := range m.rows {
		if r.animation != "" && r.active(current) {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := m.rows[m.cursor].apply(m.current)
		m.chosen = &p
		return m, tea.Quit
	case MenuActionBack, MenuActionSettings:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the options screen.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("O P T I O N S", m.width))
	b.WriteString("\n")

	for i, r := range m.rows {
		switch i {
		case 0:
			b.WriteString("\n" + centerText("Tile animations:", m.width) + "\n\n")
		case len(t2048.AnimationModes):
			b.WriteString("\n" + centerText("Theme:", m.width) + "\n\n")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := " "
		if r.active(m.current) {
			mark = "*"
		}
		line := fmt.Sprintf("%s[%s] %-20s", cursor, mark, r.label())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Chosen returns the preferences after a selection, or nil if none was made.
func (m SettingsModel) Chosen() *Preferences {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SettingsModel) WantsBack() bool {
	return m.back
}
