package t2048

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Settings are the tunables shared by every game created from the registry.
type Settings struct {
	Spawn4Prob   float64
	HistoryLimit int
	Animation    AnimationMode
}

// DefaultSettings returns the classic tunables.
func DefaultSettings() Settings {
	return Settings{
		Spawn4Prob:   engine.DefaultSpawn4Prob,
		HistoryLimit: DefaultHistoryLimit,
		Animation:    AnimationNormal,
	}
}

// settings holds the tunables games pick up on Reset. Headless runs such
// as Replay take theirs as an argument instead.
var settings = DefaultSettings()

// Configure sets the tunables used by games reset after this call.
func Configure(s Settings) {
	settings = s
}

// CurrentSettings returns the active tunables.
func CurrentSettings() Settings {
	return settings
}

// RunResult summarizes a finished run for score keeping.
type RunResult struct {
	GameID  string
	Score   int
	MaxTile int
	Moves   int
	Merges  int
}

// Game adapts a Session to the arcade game loop.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64
	session *Session
	anim    animator

	// Screen dimensions
	screenW int
	screenH int

	paused      bool
	tooSmall    bool
	banner      int // Ticks left on the win banner
	undone      bool
	runRecorded bool
	results     []RunResult
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// newRand returns the game RNG for a seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32))
}

func newEngine(v Variant, spawn4 float64, rng engine.Rand, ids engine.IDSource) *engine.Engine {
	return engine.New(engine.Config{
		Size:       v.Size,
		WinTarget:  v.Target,
		Spawn4Prob: spawn4,
	}, rng, ids)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Name
}

// Variant returns the variant this game plays.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	best := 0
	if g.session != nil {
		best = g.session.Best()
	}

	g.rng = newRand(cfg.Seed)
	eng := newEngine(g.variant, settings.Spawn4Prob, g.rng, engine.UUIDs{})

	g.session = NewSession(eng, settings.HistoryLimit)
	g.session.SetBest(best)

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.banner = 0
	g.undone = false
	g.runRecorded = false
	g.anim = animator{mode: settings.Animation}

	g.checkScreenSize()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// SetBestScore seeds the best score from storage.
func (g *Game) SetBestScore(best int) {
	g.session.SetBest(best)
}

// BestScore returns the best score known to the game.
func (g *Game) BestScore() int {
	return g.session.Best()
}

// SetAnimationMode switches animation speed for subsequent moves.
func (g *Game) SetAnimationMode(m AnimationMode) {
	g.anim.mode = m
	g.anim.clear()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardDimensions(g.variant.Size)
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.banner > 0 {
		g.banner--
	}

	if in.Has(core.ActionRestart) {
		g.recordRun()
		g.session.Restart()
		g.anim.clear()
		g.banner = 0
		g.undone = false
		g.runRecorded = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		if g.session.Undo() {
			g.anim.clear()
			g.undone = true
			g.runRecorded = false
		}
		return core.StepResult{State: g.State()}
	}

	// Moves are ignored while the previous one is still animating.
	if g.anim.update() {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps input actions to a move direction.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir engine.Direction) {
	prev := g.session.Board()

	out, err := g.session.ApplyMove(dir)
	if err != nil || !out.Applied {
		return
	}

	g.undone = false
	g.anim.start(prev, out.Result.Board)

	if out.JustWon {
		g.banner = winBannerTicks
	}
	if g.session.GameOver() {
		g.recordRun()
	}
}

// recordRun queues the current run for score keeping, once per run.
func (g *Game) recordRun() {
	if g.runRecorded || g.session.Score() == 0 {
		return
	}
	stats := g.session.Stats()
	g.results = append(g.results, RunResult{
		GameID:  g.variant.ID,
		Score:   g.session.Score(),
		MaxTile: stats.MaxTile,
		Moves:   stats.Moves,
		Merges:  stats.Merges,
	})
	g.runRecorded = true
}

// Finish queues the in-progress run, used when the player quits.
func (g *Game) Finish() {
	g.recordRun()
}

// DrainResults returns and clears finished runs.
func (g *Game) DrainResults() []RunResult {
	out := g.results
	g.results = nil
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Moves:    g.session.Stats().Moves,
		Won:      g.session.Won(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
