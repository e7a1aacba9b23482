// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

// T2048Config contains all configuration for the 2048 games.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Session SessionConfig `yaml:"session"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the board rules.
type BoardConfig struct {
	Variant    string  `yaml:"variant" env:"T2048_VARIANT"`         // Variant played when none is given
	Spawn4Prob float64 `yaml:"spawn4_prob" env:"T2048_SPAWN4_PROB"` // Chance a spawned tile is a 4
}

// SessionConfig defines per-game session limits.
type SessionConfig struct {
	HistoryLimit int `yaml:"history_limit" env:"T2048_HISTORY_LIMIT"`
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	Animation string `yaml:"animation" env:"T2048_ANIMATION"` // "normal", "fast" or "off"
	Theme     string `yaml:"theme" env:"T2048_THEME"`         // "dark", "light" or "contrast"
	FPS       int    `yaml:"fps" env:"T2048_FPS"`
}

// StorageConfig defines where scores and settings are persisted.
type StorageConfig struct {
	DBPath       string `yaml:"db_path" env:"T2048_DB"`
	BestScoreKey string `yaml:"best_score_key" env:"T2048_BEST_SCORE_KEY"`
}

var (
	animationModes = []string{"normal", "fast", "off"}
	themes         = []string{"dark", "light", "contrast"}
)

// Validate checks value ranges.
func (c T2048Config) Validate() error {
	switch {
	case c.Board.Spawn4Prob < 0 || c.Board.Spawn4Prob > 1:
		return fmt.Errorf("%w: spawn4_prob %v not in [0,1]", ErrInvalidConfig, c.Board.Spawn4Prob)
	case c.Session.HistoryLimit < 0:
		return fmt.Errorf("%w: history_limit %d is negative", ErrInvalidConfig, c.Session.HistoryLimit)
	case !slices.Contains(animationModes, c.Display.Animation):
		return fmt.Errorf("%w: animation %q", ErrInvalidConfig, c.Display.Animation)
	case !slices.Contains(themes, c.Display.Theme):
		return fmt.Errorf("%w: theme %q", ErrInvalidConfig, c.Display.Theme)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.Display.FPS)
	case c.Storage.BestScoreKey == "":
		return fmt.Errorf("%w: best_score_key is empty", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string is normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: difficulty %q", ErrInvalidConfig, s)
}

// Spawn4ProbForPreset returns the 4-tile spawn chance for a difficulty preset.
func Spawn4ProbForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.1
	}
}
