package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

const (
	defaultLeaderboardAddr = ":8000"
	defaultLeaderboardFile = "~/.t2048/leaderboard.json"
)

var (
	flagServerAddr string
	flagServerFile string
)

var leaderboardServerCmd = &cobra.Command{
	Use:   "leaderboard-server",
	Short: "Run the online leaderboard service",
	Long: `Serve the leaderboard HTTP API. Entries are kept sorted by score and
saved to a JSON file after every submission.

Endpoints:
  POST /submit-score/             {"name": "...", "score": N}
  GET  /get-leaderboard/?skip&limit
  GET  /get-best-score/
  GET  /healthz

Settings are read from flags, then the environment (a .env file in the
working directory is loaded first):
  LEADERBOARD_ADDR   listen address (default :8000)
  LEADERBOARD_FILE   JSON file (default ~/.t2048/leaderboard.json)

Examples:
  t2048 leaderboard-server
  t2048 leaderboard-server --addr :9000 --file ./scores.json`,
	Run: runLeaderboardServer,
}

func init() {
	leaderboardServerCmd.Flags().StringVar(&flagServerAddr, "addr", "", "Listen address (default $LEADERBOARD_ADDR or :8000)")
	leaderboardServerCmd.Flags().StringVar(&flagServerFile, "file", "", "JSON file (default $LEADERBOARD_FILE or ~/.t2048/leaderboard.json)")
}

// setting returns the flag value, then the environment, then def.
func setting(flag, env, def string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func runLeaderboardServer(_ *cobra.Command, _ []string) {
	logger := newStderrLogger("leaderboard")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("could not read .env", "error", err)
	}

	addr := setting(flagServerAddr, "LEADERBOARD_ADDR", defaultLeaderboardAddr)
	file := config.ExpandHome(setting(flagServerFile, "LEADERBOARD_FILE", defaultLeaderboardFile))

	persist, err := leaderboard.NewJSONFile(file)
	if err != nil {
		fatalf("%v", err)
	}
	store, err := leaderboard.NewStore(persist)
	if err != nil {
		fatalf("loading leaderboard: %v", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           leaderboard.NewServer(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting leaderboard server", "address", addr, "file", file, "entries", store.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
