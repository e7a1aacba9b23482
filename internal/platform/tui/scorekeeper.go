package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Settings rows holding the player's display preferences.
const (
	animationSettingKey = "animationMode"
	themeSettingKey     = "theme"
)

// ScoreKeeper moves finished runs and best scores between games and the store.
// A nil store turns every call into a no-op, so the games stay playable
// when the database cannot be opened.
type ScoreKeeper struct {
	store   *storage.Store
	bestKey string
	logger  *log.Logger

	mu   sync.Mutex
	best map[string]int // Last best score written per variant
}

// NewScoreKeeper creates a keeper. bestKey is the base settings key for best scores.
func NewScoreKeeper(store *storage.Store, bestKey string, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &ScoreKeeper{
		store:   store,
		bestKey: bestKey,
		logger:  logger,
		best:    make(map[string]int),
	}
}

// Store returns the underlying store, possibly nil.
func (k *ScoreKeeper) Store() *storage.Store {
	if k == nil {
		return nil
	}
	return k.store
}

// Best returns the stored best score for a variant.
func (k *ScoreKeeper) Best(v t2048.Variant) int {
	if k == nil || k.store == nil {
		return 0
	}
	best, err := k.store.BestScore(v.BestScoreKey(k.bestKey))
	if err != nil {
		k.logger.Warn("could not read best score", "variant", v.ID, "error", err)
		return 0
	}
	return best
}

// Load seeds the game's best score from storage.
func (k *ScoreKeeper) Load(g *t2048.Game) {
	best := k.Best(g.Variant())
	if best == 0 {
		return
	}
	g.SetBestScore(best)
	if k != nil {
		k.mu.Lock()
		k.best[g.ID()] = best
		k.mu.Unlock()
	}
}

// Sync stores finished runs and a raised best score.
func (k *ScoreKeeper) Sync(g *t2048.Game) {
	results := g.DrainResults()
	if k == nil || k.store == nil {
		return
	}

	for _, r := range results {
		_, err := k.store.SaveScore(storage.ScoreEntry{
			GameID:  r.GameID,
			Score:   r.Score,
			MaxTile: r.MaxTile,
			Moves:   r.Moves,
			Merges:  r.Merges,
		})
		if err != nil {
			k.logger.Warn("could not save score", "game", r.GameID, "error", err)
		}
	}

	best := g.BestScore()
	k.mu.Lock()
	defer k.mu.Unlock()
	if best <= k.best[g.ID()] {
		return
	}
	if err := k.store.SetBestScore(g.Variant().BestScoreKey(k.bestKey), best); err != nil {
		k.logger.Warn("could not save best score", "game", g.ID(), "error", err)
		return
	}
	k.best[g.ID()] = best
}

// LoadAnimation returns the saved animation mode, or fallback when unset.
func (k *ScoreKeeper) LoadAnimation(fallback t2048.AnimationMode) t2048.AnimationMode {
	if k == nil || k.store == nil {
		return fallback
	}
	v, ok, err := k.store.Setting(animationSettingKey)
	if err != nil {
		k.logger.Warn("could not read animation setting", "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	mode, err := t2048.ParseAnimationMode(v)
	if err != nil {
		k.logger.Warn("ignoring stored animation setting", "value", v, "error", err)
		return fallback
	}
	return mode
}

// SaveAnimation persists the animation mode.
func (k *ScoreKeeper) SaveAnimation(mode t2048.AnimationMode) {
	if k == nil || k.store == nil {
		return
	}
	if err := k.store.SetSetting(animationSettingKey, string(mode)); err != nil {
		k.logger.Warn("could not save animation setting", "error", err)
	}
}

// LoadTheme returns the saved theme, or fallback when unset or unknown.
func (k *ScoreKeeper) LoadTheme(fallback Theme) Theme {
	if k == nil || k.store == nil {
		return fallback
	}
	v, ok, err := k.store.Setting(themeSettingKey)
	if err != nil {
		k.logger.Warn("could not read theme setting", "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	theme, err := ParseTheme(v)
	if err != nil {
		k.logger.Warn("ignoring stored theme", "value", v, "error", err)
		return fallback
	}
	return theme
}

// SaveTheme persists the theme.
func (k *ScoreKeeper) SaveTheme(theme Theme) {
	if k == nil || k.store == nil {
		return
	}
	if err := k.store.SetSetting(themeSettingKey, string(theme)); err != nil {
		k.logger.Warn("could not save theme setting", "error", err)
	}
}
