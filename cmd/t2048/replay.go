package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagReplayMoves   string
	flagReplayVariant string
	flagReplayScreen  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a move sequence headless",
	Long: `Run a game without a terminal UI: seed the board, apply every move,
let each slide finish and print the final board. The same seed and moves
always give the same board.

Moves are a string of L, R, U and D (case-insensitive, spaces ignored).
Winning keeps playing; the replay stops early on game over.

Examples:
  t2048 replay --seed 7 --moves LLURDD
  t2048 replay --seed 7 --moves "L L U R" --variant mini --screen`,
	Run: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayMoves, "moves", "", "Moves to apply (L, R, U, D)")
	replayCmd.Flags().StringVar(&flagReplayVariant, "variant", "", "Board variant (default from config)")
	replayCmd.Flags().BoolVar(&flagReplayScreen, "screen", false, "Print the rendered screen instead of a plain grid")
}

func runReplay(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fatalf("%v", err)
	}
	variant := settings.Board.Variant
	if flagReplayVariant != "" {
		variant = flagReplayVariant
	}

	moves, err := parseMoves(flagReplayMoves)
	if err != nil {
		fatalf("%v", err)
	}

	logger := newStderrLogger("replay")
	if !flagDebug {
		logger.SetLevel(log.WarnLevel)
	}

	g, err := replay(variant, flagSeed, moves, settings, logger)
	if err != nil {
		fatalf("%v", err)
	}
	printReplay(os.Stdout, g, flagReplayScreen)
}

// parseMoves turns "LRUD" into directions.
func parseMoves(s string) ([]game.Direction, error) {
	var dirs []game.Direction
	for i, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		d, ok := game.ParseDirection(string(r))
		if !ok {
			return nil, fmt.Errorf("invalid move %q at position %d (want L, R, U or D)", r, i)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// replay plays moves on a fresh seeded game, settling every turn.
func replay(variant string, seed int64, moves []game.Direction, settings config.T2048Config, logger *log.Logger) (*game.Game, error) {
	g, err := tui.NewGame(variant, tui.AppConfig{
		Settings:   settings,
		Difficulty: difficultyFor(settings),
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)

	for i, d := range moves {
		if g.IsGameOver() {
			logger.Info("game over before all moves", "played", i, "total", len(moves))
			break
		}
		if !g.ProcessMovement(d) {
			logger.Debug("move did nothing", "index", i, "dir", d)
			continue
		}
		for g.State() == game.StateAnimating {
			g.Tick()
		}
		if g.State() == game.StateWon {
			g.Continue()
		}
	}
	return g, nil
}

// printReplay writes the final board and counters.
func printReplay(w io.Writer, g *game.Game, screen bool) {
	if screen {
		s := core.NewScreen(80, 24)
		g.SetScreenSize(s.Width(), s.Height())
		g.Render(s)
		fmt.Fprintln(w, strings.TrimRight(s.String(), " \n"))
		return
	}

	snap := g.Snapshot()
	for _, row := range snap.Board {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == 0 {
				cells[i] = fmt.Sprintf("%5s", ".")
			} else {
				cells[i] = fmt.Sprintf("%5d", v)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "score: %d  moves: %d  max tile: %d  state: %s\n",
		snap.Score, snap.Moves, snap.MaxTile, snap.State)
}
