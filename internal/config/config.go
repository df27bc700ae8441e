// Package config provides YAML-based game configuration loading and
// difficulty management for 2048.
package config

import (
	"time"
)

// T2048Config contains all configuration for the game and its collaborators.
type T2048Config struct {
	Board       BoardConfig       `yaml:"board"`
	Animation   AnimationConfig   `yaml:"animation"`
	Storage     StorageConfig     `yaml:"storage"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Palette     []PaletteEntry    `yaml:"palette"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// BoardConfig defines board parameters.
type BoardConfig struct {
	Variant  string  `yaml:"variant"`   // Registered variant ID
	WinValue int     `yaml:"win_value"` // 0 keeps the variant's own goal
	Spawn4   float64 `yaml:"spawn4"`    // Probability of spawning a 4
}

// AnimationConfig defines slide animation parameters.
type AnimationConfig struct {
	CellSize float64 `yaml:"cell_size"` // Pixels per cell
	Speed    float64 `yaml:"speed"`     // Pixels per tick
	TickRate int     `yaml:"tick_rate"` // Ticks per second
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	BestFile string `yaml:"best_file"` // Plain-text best score file
	DBPath   string `yaml:"db_path"`   // SQLite score history
}

// LeaderboardConfig defines the remote leaderboard client.
type LeaderboardConfig struct {
	URL      string        `yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	PageSize int           `yaml:"page_size"`
}

// PaletteEntry maps a tile value to ANSI 256 colors.
type PaletteEntry struct {
	Value int `yaml:"value"`
	Fg    int `yaml:"fg"`
	Bg    int `yaml:"bg"`
}

// DifficultyConfig defines how the spawn rate of 4s grows during a game.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	Spawn4Increase float64 `yaml:"spawn4_increase"` // Added to spawn4 at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Spawn4ForPreset returns the base spawn4 probability for a preset.
func Spawn4ForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.10
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
