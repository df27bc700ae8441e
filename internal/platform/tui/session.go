package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// AppConfig holds everything one player session needs.
type AppConfig struct {
	// Runtime provides screen size, tick rate and seed. A zero seed is
	// replaced with the current time for every new game.
	Runtime core.RuntimeConfig

	// Settings is the loaded YAML configuration.
	Settings config.T2048Config

	// Variant is the variant preselected on the start screen.
	Variant string

	// Difficulty scales the spawn rate of 4s. Nil keeps it fixed.
	Difficulty *config.DifficultyManager

	// Best persists the best score. Nil keeps it in memory.
	Best game.BestScoreStore

	// History records finished games. Nil disables history.
	History *storage.Store

	// Leaderboard submits and fetches online scores. Nil falls back to
	// local history on the leaderboard screen.
	Leaderboard *leaderboard.Client

	Logger *log.Logger
}

func (c AppConfig) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

func (c AppConfig) requestTimeout() time.Duration {
	if c.Settings.Leaderboard.Timeout > 0 {
		return c.Settings.Leaderboard.Timeout
	}
	return leaderboard.DefaultTimeout
}

func (c AppConfig) pageSize() int {
	if c.Settings.Leaderboard.PageSize > 0 {
		return c.Settings.Leaderboard.PageSize
	}
	return 10
}

// NewGame creates the registered variant and configures it from cfg.
func NewGame(variantID string, cfg AppConfig) (*game.Game, error) {
	rg, err := registry.Create(variantID)
	if err != nil {
		return nil, err
	}
	g, ok := rg.(*game.Game)
	if !ok {
		return nil, fmt.Errorf("tui: variant %q is not a 2048 game", variantID)
	}

	g.Apply(GameOptions(cfg.Settings, cfg.Difficulty, cfg.logger())...)
	if cfg.Best != nil {
		g.Apply(game.WithBestScoreStore(cfg.Best))
	}
	return g, nil
}

// GameOptions translates configuration into game options.
func GameOptions(settings config.T2048Config, difficulty *config.DifficultyManager, logger *log.Logger) []game.Option {
	opts := []game.Option{game.WithLogger(logger)}

	if settings.Board.Spawn4 > 0 {
		opts = append(opts, game.WithSpawn4(settings.Board.Spawn4))
	}
	if settings.Board.WinValue > 0 {
		opts = append(opts, game.WithWinValue(settings.Board.WinValue))
	}
	if settings.Animation.CellSize > 0 || settings.Animation.Speed > 0 {
		opts = append(opts, game.WithAnimation(settings.Animation.CellSize, settings.Animation.Speed))
	}

	if len(settings.Palette) > 0 {
		p, err := paletteFromConfig(settings.Palette)
		if err != nil {
			logger.Warn("invalid palette in config, using default", "error", err)
		} else {
			opts = append(opts, game.WithPalette(p))
		}
	}

	if difficulty != nil && difficulty.IsEnabled() {
		base := settings.Board.Spawn4
		if base <= 0 {
			base = game.DefaultSpawn4
		}
		opts = append(opts, game.WithSpawnRate(func(score, moves int) float64 {
			return difficulty.Spawn4(base, score, moves)
		}))
	}

	return opts
}

func paletteFromConfig(entries []config.PaletteEntry) (*game.Palette, error) {
	styles := make([]game.TileStyle, len(entries))
	for i, e := range entries {
		styles[i] = game.TileStyle{
			Value: e.Value,
			Fg:    core.Color(e.Fg),
			Bg:    core.Color(e.Bg),
		}
	}
	return game.NewPalette(styles)
}
