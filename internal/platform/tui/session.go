package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
	viewSettings
)

// SessionModel manages the full flow: menu -> game/scores/options -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	id        string
	keeper    *ScoreKeeper
	palette   *Palette
	logger    *log.Logger
	config    core.RuntimeConfig
	animation t2048.AnimationMode
	persist   bool // Write option changes to storage and process settings

	view       sessionView
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	settings   SettingsModel
	variantID  string // Last played variant, preselected on the scoreboard
	quitting   bool
}

// NewSessionModel creates a session starting at the menu. Option changes
// stay local to the session.
func NewSessionModel(keeper *ScoreKeeper, palette *Palette, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if palette == nil {
		palette = NewPalette(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()

	m := SessionModel{
		id:        id,
		keeper:    keeper,
		palette:   palette,
		logger:    logger.With("session", id),
		config:    cfg,
		animation: t2048.CurrentSettings().Animation,
		variantID: t2048.ClassicID,
	}
	m.toMenu()
	return m
}

// ID returns the session identifier.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update dispatches messages to the active view. Sub-models quit their own
// program when done; the session swallows that and switches views instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	case viewSettings:
		return m.updateSettings(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m *SessionModel) toMenu() {
	m.menu = NewMenuModel(m.keeper, m.palette, m.config).WithAnimation(m.animation)
	m.view = viewMenu
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.Selected() != nil:
		v := m.menu.Selected().Variant
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()

		m.game = NewModel(t2048.New(v), m.keeper, m.palette, cfg)
		m.game.Game().SetAnimationMode(m.animation)
		m.variantID = v.ID
		m.view = viewGame
		m.logger.Info("game started", "variant", v.ID)
		return m, m.game.Init()

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.keeper.Store(), m.palette, m.variantID, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.scoreboard.Init()

	case m.menu.WantsSettings():
		m.settings = NewSettingsModel(m.preferences(), m.config.ScreenW, m.config.ScreenH)
		m.view = viewSettings
		return m, m.settings.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.logEnd()
		return m.quit()
	case m.game.BackToMenu():
		m.logEnd()
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) logEnd() {
	st := m.game.gameState
	m.logger.Info("game ended",
		"variant", m.variantID,
		"score", st.Score,
		"moves", st.Moves,
		"won", st.Won,
	)
}

// updateScoreboard handles updates when showing high scores.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateSettings handles updates on the options screen.
func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.settings.Update(msg)
	if sm, ok := next.(SettingsModel); ok {
		m.settings = sm
	}

	switch {
	case m.settings.IsQuitting():
		return m.quit()
	case m.settings.Chosen() != nil:
		m.setPreferences(*m.settings.Chosen())
		m.toMenu()
		return m, m.menu.Init()
	case m.settings.WantsBack():
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) preferences() Preferences {
	return Preferences{Animation: m.animation, Theme: m.palette.Theme()}
}

// setPreferences applies options to this session and, when persisting,
// to the process and the store.
func (m *SessionModel) setPreferences(p Preferences) {
	m.animation = p.Animation
	m.palette = m.palette.WithTheme(p.Theme)
	if !m.persist {
		return
	}
	s := t2048.CurrentSettings()
	s.Animation = p.Animation
	t2048.Configure(s)
	m.keeper.SaveAnimation(p.Animation)
	m.keeper.SaveTheme(p.Theme)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.scoreboard.View()
	case viewSettings:
		return m.settings.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven flow in the local terminal with the given
// theme. Option changes are saved through keeper.
func RunSession(keeper *ScoreKeeper, theme Theme, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(keeper, NewThemedPalette(nil, theme), cfg, logger)
	model.persist = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
