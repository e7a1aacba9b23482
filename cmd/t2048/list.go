package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every registered board with its size and target tile.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Size", "Target", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, g := range games {
		v := t2048.VariantByID(g.ID)
		if v == nil {
			continue
		}
		target := "-"
		if v.Target > 0 {
			target = fmt.Sprint(v.Target)
		}
		size := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, g.ID, size, target, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}
