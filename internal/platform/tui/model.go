package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Model is the Bubble Tea model for playing a 2048 variant.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	keeper     *ScoreKeeper
	palette    *Palette
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game and starts a fresh run.
// The last screen row is reserved for the key help.
func NewModel(game *t2048.Game, keeper *ScoreKeeper, palette *Palette, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if palette == nil {
		palette = NewPalette(nil)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		keeper:     keeper,
		palette:    palette,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}

	w, gh := m.gameArea()
	m.screen = core.NewScreen(w, gh)
	reset := cfg
	reset.ScreenH = gh
	game.Reset(reset)
	keeper.Load(game)
	m.gameState = game.State()
	return m
}

// gameArea returns the screen size left for the board after the help bar.
func (m Model) gameArea() (w, h int) {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	return m.config.ScreenW, max(m.config.ScreenH-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.finish()
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// finish records the in-progress run before leaving the game.
func (m Model) finish() {
	m.game.Finish()
	m.keeper.Sync(m.game)
}

// handleResize keeps the current run and only relayouts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

func (m *Model) layout() {
	w, h := m.gameArea()
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
	m.gameState = m.game.State()
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.keeper.Sync(m.game)

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot saves the current screen and a board snapshot.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	m.game.Render(m.screen)

	dir := filepath.Join(home, ".t2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600)

	// The snapshot next to it holds the exact board for bug reports.
	if data, err := json.MarshalIndent(m.game.Snapshot(), "", "  "); err == nil {
		//nolint:errcheck // Best-effort save
		os.WriteFile(base+".json", data, 0o600)
	}
}

// View renders the board and the help bar.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.palette.RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Game returns the game being played.
func (m Model) Game() *t2048.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in theme until the player quits or goes back.
// It reports whether the player asked for the menu.
func Run(game *t2048.Game, keeper *ScoreKeeper, theme Theme, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, keeper, NewThemedPalette(nil, theme), cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
