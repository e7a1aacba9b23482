package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals for every board played",
	Long: `Display games played, best and average score, best tile and
move/merge totals for each board with recorded runs.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		logger.Error("cannot read stats", "error", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Printf("  %-16s  %5s  %7s  %7s  %5s  %7s  %7s  %s\n",
		"Board", "Games", "High", "Avg", "Tile", "Moves", "Merges", "Last played")
	for _, v := range t2048.Variants {
		gs, ok := all[v.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %5d  %7d  %7.0f  %5d  %7d  %7d  %s\n",
			v.Name, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.BestTile,
			gs.TotalMoves, gs.TotalMerges, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
