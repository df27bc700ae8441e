package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadT2048CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
board:
  variant: mini
  spawn4: 0.2
leaderboard:
  timeout: 2s
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Board.Variant != "mini" || cfg.Board.Spawn4 != 0.2 {
		t.Errorf("board = %+v, want mini/0.2", cfg.Board)
	}
	if cfg.Leaderboard.Timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", cfg.Leaderboard.Timeout)
	}
	// Unset fields keep their defaults
	if cfg.Animation.Speed != 50 || cfg.Leaderboard.PageSize != 10 {
		t.Errorf("defaults not kept: animation %+v leaderboard %+v", cfg.Animation, cfg.Leaderboard)
	}
}

func TestLoadT2048MissingCustomPath(t *testing.T) {
	_, err := LoadT2048(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for a missing custom config")
	}
}

func TestLoadT2048BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadT2048(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Board.Variant != "classic" {
		t.Errorf("variant = %q, want classic", cfg.Board.Variant)
	}
	if len(cfg.Palette) != 13 || cfg.Palette[0].Value != 2 {
		t.Errorf("embedded palette not loaded: %v", cfg.Palette)
	}
	if cfg.Leaderboard.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Leaderboard.Timeout)
	}
}

func TestApplyT2048Preset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		spawn4  float64
		enabled bool
	}{
		{DifficultyEasy, 0.05, true},
		{DifficultyNormal, 0.10, true},
		{DifficultyHard, 0.25, true},
		{DifficultyFixed, 0.10, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultT2048Config()
			ApplyT2048Preset(&cfg, tt.preset)
			if cfg.Board.Spawn4 != tt.spawn4 {
				t.Errorf("spawn4 = %v, want %v", cfg.Board.Spawn4, tt.spawn4)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyManagerSpawn4(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{Spawn4Increase: 0.2},
	})

	if got := dm.Spawn4(0.1, 0, 0); got != 0.1 {
		t.Errorf("Spawn4 at start = %v, want 0.1", got)
	}
	if got := dm.Spawn4(0.1, 500, 0); got < 0.199 || got > 0.201 {
		t.Errorf("Spawn4 at half = %v, want 0.2", got)
	}
	if got := dm.Spawn4(0.1, 5000, 0); got < 0.299 || got > 0.301 {
		t.Errorf("Spawn4 past max = %v, want 0.3", got)
	}

	dm.SetEnabled(false)
	if got := dm.Spawn4(0.1, 5000, 0); got != 0.1 {
		t.Errorf("disabled Spawn4 = %v, want base", got)
	}
}

func TestDifficultyManagerMoves(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "moves", MaxAt: 100},
	})
	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, want 0.5", got)
	}
	if got := dm.Level(0, 100); got != 1.0 {
		t.Errorf("Level at max = %v, want 1.0", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y"); got != filepath.Join(home, "x/y") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("ExpandHome(/abs) = %q", got)
	}
}
