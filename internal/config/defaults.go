package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Variant:  "classic",
			WinValue: 0,
			Spawn4:   0.10,
		},
		Animation: AnimationConfig{
			CellSize: 200,
			Speed:    50,
			TickRate: 60,
		},
		Storage: StorageConfig{
			BestFile: "~/.t2048/best_score.txt",
			DBPath:   "~/.t2048/scores.db",
		},
		Leaderboard: LeaderboardConfig{
			URL:      "http://localhost:8000",
			Timeout:  5 * time.Second,
			PageSize: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				Spawn4Increase: 0.15,
			},
		},
	}
}
