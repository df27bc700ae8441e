package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every board variant with its size and winning tile.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range game.Variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-14s  %-5s  %s\n", maxIDLen, "ID", "Title", "Board", "Goal")
	fmt.Printf("  %-*s  %-14s  %-5s  %s\n", maxIDLen, "--", "-----", "-----", "----")

	for _, v := range game.Variants {
		goal := "-"
		if v.WinValue > 0 {
			goal = fmt.Sprintf("%d", v.WinValue)
		}
		board := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-*s  %-14s  %-5s  %s\n", maxIDLen, v.ID, v.Name, board, goal)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a variant.")
}
