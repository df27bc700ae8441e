package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadSettings loads the YAML config and applies command-line overrides.
func loadSettings() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyT2048Preset(&cfg, preset)
	}

	if flagFPS > 0 {
		cfg.Animation.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagBestFile != "" {
		cfg.Storage.BestFile = flagBestFile
	}
	if flagLeaderboardURL != "" {
		cfg.Leaderboard.URL = flagLeaderboardURL
	}
	if cfg.Board.Variant == "" {
		cfg.Board.Variant = game.DefaultVariant
	}
	return cfg, nil
}

// difficultyFor returns a manager when progression is enabled, nil otherwise.
func difficultyFor(cfg config.T2048Config) *config.DifficultyManager {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	if !dm.IsEnabled() {
		return nil
	}
	return dm
}

// newFileLogger opens a logger that appends to path. The TUI owns the
// terminal, so interactive commands never log to stderr.
func newFileLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	setLevel(logger)
	return logger, f, nil
}

// newStderrLogger is used by the servers.
func newStderrLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger)
	return logger
}

func setLevel(logger *log.Logger) {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
}

// openHistory opens the score database. Failures are logged and the game
// runs without history.
func openHistory(cfg config.T2048Config, logger *log.Logger) *storage.Store {
	if cfg.Storage.DBPath == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// openBest returns the best score file, or nil to keep the best in memory.
func openBest(cfg config.T2048Config, logger *log.Logger) game.BestScoreStore {
	if cfg.Storage.BestFile == "" {
		return nil
	}
	best, err := storage.NewFileBest(cfg.Storage.BestFile)
	if err != nil {
		logger.Warn("could not use best score file", "path", cfg.Storage.BestFile, "error", err)
		return nil
	}
	logger.Debug("using best score file", "path", best.Path())
	return best
}

// newClient returns the leaderboard client, or nil when it is switched off.
func newClient(cfg config.T2048Config) *leaderboard.Client {
	if cfg.Leaderboard.URL == "" || cfg.Leaderboard.URL == "off" {
		return nil
	}
	return leaderboard.NewClient(cfg.Leaderboard.URL, cfg.Leaderboard.Timeout)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
