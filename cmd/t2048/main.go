// t2048 is the 2048 sliding tile game for the terminal.
//
// Usage:
//
//	t2048 play [variant]         - Play in this terminal
//	t2048 list                   - List board variants
//	t2048 scores [variant]       - Show local score history
//	t2048 leaderboard            - Show the online leaderboard
//	t2048 serve                  - Start SSH server for remote play
//	t2048 leaderboard-server     - Run the online leaderboard service
//	t2048 replay --moves LLUR    - Replay moves headless and print the board
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Use a custom config YAML
//	--db <path>           - Set score history database
//	--best-file <path>    - Set best score file
//	--leaderboard-url     - Set online leaderboard address
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Where interactive commands log
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS            int
	flagSeed           int64
	flagConfig         string
	flagDBPath         string
	flagBestFile       string
	flagLeaderboardURL string
	flagDifficulty     string
	flagLogFile        string
	flagDebug          bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding tile game for the terminal.

Slide the board with the arrow keys. Equal tiles that collide merge into
their sum. Reach the goal tile to win, keep going as long as you can.

Available commands:
  play                - Play in this terminal
  list                - Show all board variants
  scores              - View local score history
  leaderboard         - View the online leaderboard
  serve               - Start SSH server for remote play
  leaderboard-server  - Run the online leaderboard service
  replay              - Replay a move sequence headless

Examples:
  t2048 play
  t2048 play big --difficulty hard
  t2048 scores classic
  t2048 serve --ssh :2222
  t2048 replay --seed 7 --moves LLURDD`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to score history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagBestFile, "best-file", "", "Path to best score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboardURL, "leaderboard-url", "", "Online leaderboard URL (default from config, \"off\" disables)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.t2048/t2048.log", "Log file for interactive commands")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardServerCmd)
	rootCmd.AddCommand(replayCmd)
}
