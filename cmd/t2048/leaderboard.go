package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

var (
	flagBoardSkip  int
	flagBoardLimit int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the online leaderboard",
	Long: `Fetch one page of the online leaderboard.

Examples:
  t2048 leaderboard
  t2048 leaderboard --skip 10 --limit 10
  t2048 leaderboard --leaderboard-url http://scores.example.com:8000`,
	Run: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVar(&flagBoardSkip, "skip", 0, "Entries to skip")
	leaderboardCmd.Flags().IntVar(&flagBoardLimit, "limit", 0, "Entries to show (0 = page size from config)")
}

func runLeaderboard(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fatalf("%v", err)
	}
	client := newClient(settings)
	if client == nil {
		fatalf("no leaderboard URL configured")
	}

	limit := flagBoardLimit
	if limit <= 0 {
		limit = max(settings.Leaderboard.PageSize, 1)
	}

	ctx := context.Background()
	entries, err := client.Leaderboard(ctx, flagBoardSkip, limit)
	if err != nil {
		if errors.Is(err, leaderboard.ErrUnavailable) {
			fmt.Fprintf(os.Stderr, "Leaderboard at %s is unavailable.\n", settings.Leaderboard.URL)
			os.Exit(1)
		}
		fatalf("fetching leaderboard: %v", err)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores submitted yet.")
		return
	}

	fmt.Printf("  %-4s  %-15s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-15s  %-10s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-15s  %-10d  %s\n", flagBoardSkip+i+1, e.Name, e.Score, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if best, err := client.BestScore(ctx); err == nil {
		fmt.Println()
		fmt.Printf("Top score: %d\n", best)
	}
}
