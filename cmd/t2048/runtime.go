package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if appConfig.Display.FPS > 0 {
		cfg.TickRate = appConfig.Display.FPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openKeeper opens the scores database. Without it the games still run;
// scores just are not kept. The saved animation choice overrides config.
func openKeeper() (*tui.ScoreKeeper, func()) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", appConfig.Storage.DBPath, "error", err)
		store = nil
	}

	keeper := tui.NewScoreKeeper(store, appConfig.Storage.BestScoreKey, logger)

	s := t2048.CurrentSettings()
	s.Animation = keeper.LoadAnimation(s.Animation)
	t2048.Configure(s)

	return keeper, func() {
		if store != nil {
			store.Close()
		}
	}
}

// preferredTheme is the stored theme, falling back to the configured one.
func preferredTheme(keeper *tui.ScoreKeeper) tui.Theme {
	theme, err := tui.ParseTheme(appConfig.Display.Theme)
	if err != nil {
		theme = tui.ThemeDark
	}
	return keeper.LoadTheme(theme)
}
