package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Variant:    "2048",
			Spawn4Prob: 0.1,
		},
		Session: SessionConfig{
			HistoryLimit: 10,
		},
		Display: DisplayConfig{
			Animation: "normal",
			Theme:     "dark",
			FPS:       60,
		},
		Storage: StorageConfig{
			DBPath:       "~/.t2048/scores.db",
			BestScoreKey: "bestScore",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultT2048YAML
}
