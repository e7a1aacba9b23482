package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	Variant t2048.Variant
	Best    int
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	palette        *Palette
	keys           MenuKeyMap
	help           help.Model
	animation      t2048.AnimationMode
	quitting       bool
	selected       *MenuItem // Set when user selects a variant
	openScoreboard bool
	openSettings   bool
}

// NewMenuModel creates a new menu model. Best scores come from keeper.
func NewMenuModel(keeper *ScoreKeeper, palette *Palette, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(t2048.Variants))
	for _, v := range t2048.Variants {
		items = append(items, MenuItem{Variant: v, Best: keeper.Best(v)})
	}
	if palette == nil {
		palette = NewPalette(nil)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:   items,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		palette: palette,
		keys:    DefaultMenuKeyMap(),
		help:    h,

		animation: t2048.CurrentSettings().Animation,
	}
}

// WithAnimation sets the animation mode shown in the footer.
func (m MenuModel) WithAnimation(mode t2048.AnimationMode) MenuModel {
	m.animation = mode
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSettings:
		m.openSettings = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	ui := m.palette.UI()
	titleStyle := m.palette.NewStyle().Bold(true).Foreground(ui.Title)
	activeStyle := m.palette.NewStyle().Bold(true).Foreground(ui.Active)
	dimStyle := m.palette.NewStyle().Foreground(ui.Dim)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  2 0 4 8  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-18s best %6d", item.Variant.Name, item.Best)
		if i == m.cursor {
			line = activeStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	anim := fmt.Sprintf("Animations: %s  Theme: %s", m.animation, m.palette.Theme())
	b.WriteString(centerText(dimStyle.Render(anim), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

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

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// WantsSettings returns true if user requested the options screen.
func (m MenuModel) WantsSettings() bool {
	return m.openSettings
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
