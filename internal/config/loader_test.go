package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadT2048Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadT2048CustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  spawn4_prob: 0.5\ndisplay:\n  animation: fast\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Board.Spawn4Prob != 0.5 || cfg.Display.Animation != "fast" {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Session.HistoryLimit != 10 || cfg.Storage.BestScoreKey != "bestScore" {
		t.Errorf("unset values should keep defaults: %+v", cfg)
	}
}

func TestLoadT2048MissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := LoadT2048(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestLoadT2048LocalDir(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("configs/t2048.yaml", []byte("session:\n  history_limit: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Session.HistoryLimit != 4 {
		t.Errorf("history_limit = %d, want 4 from ./configs", cfg.Session.HistoryLimit)
	}
}

func TestLoadT2048EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_ANIMATION", "off")
	t.Setenv("T2048_HISTORY_LIMIT", "25")
	t.Setenv("T2048_DB", "/tmp/x.db")
	t.Setenv("T2048_THEME", "contrast")

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Display.Animation != "off" || cfg.Session.HistoryLimit != 25 || cfg.Storage.DBPath != "/tmp/x.db" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Display.Theme != "contrast" {
		t.Errorf("theme = %q, want contrast from env", cfg.Display.Theme)
	}
	if cfg.Board.Spawn4Prob != 0.1 {
		t.Errorf("unset env must keep file value, spawn4_prob = %v", cfg.Board.Spawn4Prob)
	}
}

func TestLoadT2048BadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_HISTORY_LIMIT", "many")

	if _, err := LoadT2048(""); err == nil {
		t.Error("unparsable env value should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
	}{
		{"spawn4 above one", func(c *T2048Config) { c.Board.Spawn4Prob = 1.5 }},
		{"negative history", func(c *T2048Config) { c.Session.HistoryLimit = -1 }},
		{"unknown animation", func(c *T2048Config) { c.Display.Animation = "slow" }},
		{"unknown theme", func(c *T2048Config) { c.Display.Theme = "solarized" }},
		{"zero fps", func(c *T2048Config) { c.Display.FPS = 0 }},
		{"empty best key", func(c *T2048Config) { c.Storage.BestScoreKey = "" }},
	}

	if err := DefaultT2048Config().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyT2048Preset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		spawn4  float64
		history int
	}{
		{DifficultyEasy, 0.05, 20},
		{DifficultyNormal, 0.1, 10},
		{DifficultyHard, 0.25, 3},
	}

	for _, tt := range tests {
		cfg := DefaultT2048Config()
		ApplyT2048Preset(&cfg, tt.preset)
		if cfg.Board.Spawn4Prob != tt.spawn4 || cfg.Session.HistoryLimit != tt.history {
			t.Errorf("%s: spawn4=%v history=%d, want %v/%d",
				tt.preset, cfg.Board.Spawn4Prob, cfg.Session.HistoryLimit, tt.spawn4, tt.history)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf(`ParseDifficulty("") = %q, %v`, p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf(`ParseDifficulty("hard") = %q, %v`, p, err)
	}
	if _, err := ParseDifficulty("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown difficulty error = %v", err)
	}
}
