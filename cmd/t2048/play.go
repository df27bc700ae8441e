package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play 2048",
	Long: `Start the game in this terminal. The start screen preselects the
given variant (default from config, usually classic).

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - Restart
  C                - Continue after winning
  Enter            - Submit score (win and game over screens)
  Tab              - Leaderboard (start screen)
  Esc              - Back to start screen
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer 4s, slowly growing
  normal - Default spawn rate, growing with score
  hard   - Many 4s from the start
  fixed  - No progression, spawn rate from config

Examples:
  t2048 play
  t2048 play mini
  t2048 play classic --difficulty hard
  t2048 play --config ./my-2048.yaml --leaderboard-url off`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: game.VariantIDs(),
	Run:       runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fatalf("%v", err)
	}

	variant := settings.Board.Variant
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available variants.")
		os.Exit(1)
	}

	logger, logFile, err := newFileLogger(flagLogFile)
	if err != nil {
		fatalf("%v", err)
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	history := openHistory(settings, logger)
	if history != nil {
		defer history.Close()
	}

	cfg := tui.AppConfig{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: settings.Animation.TickRate,
			Seed:     flagSeed,
		},
		Settings:    settings,
		Variant:     variant,
		Difficulty:  difficultyFor(settings),
		Best:        openBest(settings, logger),
		History:     history,
		Leaderboard: newClient(settings),
		Logger:      logger,
	}

	logger.Info("starting", "variant", variant, "size", fmt.Sprintf("%dx%d", width, height),
		"leaderboard", strings.TrimSpace(settings.Leaderboard.URL))

	if err := tui.RunApp(cfg); err != nil {
		fatalf("running game: %v", err)
	}
}
