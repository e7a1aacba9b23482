package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board, or the configured default.

Controls:
  Arrows/WASD - Slide tiles
  U           - Undo last move
  R           - New game
  P           - Pause
  Esc         - Open the menu
  Q/Ctrl+C    - Quit
  ?           - Toggle full help

Difficulty options:
  easy   - Fewer 4s spawn, longer undo history
  normal - Classic 10% chance of a 4
  hard   - More 4s spawn, short undo history

Examples:
  t2048 play
  t2048 play 2048_3x3
  t2048 play 2048_endless --difficulty easy
  t2048 play --seed 42 --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variantID := appConfig.Board.Variant
	if len(args) > 0 {
		variantID = args[0]
	}

	game, err := registry.Create(variantID)
	if err != nil {
		logger.Fatal("cannot start game", "error", err, "hint", "run 't2048 list' to see available boards")
	}
	g, ok := game.(*t2048.Game)
	if !ok {
		logger.Fatal("not a 2048 board", "id", variantID)
	}

	keeper, closeStore := openKeeper()
	defer closeStore()

	theme := preferredTheme(keeper)
	backToMenu, err := tui.Run(g, keeper, theme, runtimeConfig())
	if err != nil {
		logger.Error("game failed", "error", err)
		return
	}
	if !backToMenu {
		return
	}

	if err := tui.RunSession(keeper, preferredTheme(keeper), runtimeConfig(), logger); err != nil {
		logger.Error("menu failed", "error", err)
	}
}
