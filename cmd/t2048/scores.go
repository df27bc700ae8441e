package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show local score history",
	Long: `Display the best finished games recorded on this machine.

Examples:
  t2048 scores
  t2048 scores mini --limit 20
  t2048 scores --stats
  t2048 scores mini --stats
  t2048 scores mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-variant statistics instead")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded games of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fatalf("%v", err)
	}

	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresStats && len(args) == 0 {
		printStats(store)
		return
	}

	variantID := settings.Board.Variant
	if len(args) == 1 {
		variantID = args[0]
	}
	v, ok := game.GetVariant(variantID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available variants.")
		os.Exit(1)
	}

	switch {
	case flagScoresClear:
		if err := store.ClearScores(v.ID); err != nil {
			fatalf("clearing scores: %v", err)
		}
		fmt.Printf("Cleared score history for %s.\n", v.Name)
		return
	case flagScoresStats:
		st, err := store.GetGameStats(v.ID)
		if err != nil {
			fatalf("retrieving stats: %v", err)
		}
		printStatsHeader()
		printStatsRow(v.ID, st)
		return
	}

	scores, err := store.TopScores(v.ID, flagScoresLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", v.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", v.ID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Max tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(v.ID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fatalf("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	printStatsHeader()
	for _, v := range game.Variants {
		if st, ok := stats[v.ID]; ok {
			printStatsRow(v.ID, st)
		}
	}
}

func printStatsHeader() {
	fmt.Printf("  %-8s  %-6s  %-10s  %-10s  %-8s  %s\n", "Variant", "Games", "Best", "Average", "Max tile", "Last played")
	fmt.Printf("  %-8s  %-6s  %-10s  %-10s  %-8s  %s\n", "-------", "-----", "----", "-------", "--------", "-----------")
}

func printStatsRow(id string, st *storage.GameStats) {
	last := "-"
	if !st.LastPlayed.IsZero() {
		last = st.LastPlayed.Local().Format("2006-01-02 15:04")
	}
	fmt.Printf("  %-8s  %-6d  %-10d  %-10.1f  %-8d  %s\n", id, st.GamesCount, st.HighScore, st.AvgScore, st.BestTile, last)
}
