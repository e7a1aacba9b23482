package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresClear       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a board",
	Long: `Display the top high scores for the given board, or the configured default.

Examples:
  t2048 scores
  t2048 scores 2048_5x5 --limit 20
  t2048 scores 2048_3x3 --interactive
  t2048 scores 2048 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the board")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in the scoreboard screen")
}

func runScores(_ *cobra.Command, args []string) {
	variantID := appConfig.Board.Variant
	if len(args) > 0 {
		variantID = args[0]
	}

	v, err := t2048.LookupVariant(variantID)
	if err != nil {
		logger.Fatal("cannot show scores", "error", err, "hint", "run 't2048 list' to see available boards")
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(v.ID); err != nil {
			logger.Error("cannot clear scores", "error", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", v.Name)
		return
	}

	if flagScoresInteractive {
		cfg := runtimeConfig()
		theme := preferredTheme(tui.NewScoreKeeper(store, appConfig.Storage.BestScoreKey, logger))
		if _, err := tui.RunScoreboard(store, theme, v.ID, cfg.ScreenW, cfg.ScreenH); err != nil {
			logger.Error("scoreboard failed", "error", err)
		}
		return
	}

	scores, err := store.TopScores(v.ID, flagScoresLimit)
	if err != nil {
		logger.Error("cannot read scores", "error", err)
		return
	}

	fmt.Printf("High Scores - %s\n", v.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", v.ID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-8d  %-6d  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(v.BestScoreKey(appConfig.Storage.BestScoreKey)); err == nil && best > 0 {
		fmt.Printf("Best: %d\n", best)
	}
}
