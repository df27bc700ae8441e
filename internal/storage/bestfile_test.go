package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func TestFileBestMissingFile(t *testing.T) {
	fb, err := NewFileBest(filepath.Join(t.TempDir(), "best_score.txt"))
	if err != nil {
		t.Fatalf("NewFileBest() failed: %v", err)
	}

	best, err := fb.Load()
	if err != nil || best != 0 {
		t.Errorf("Load() = %d, %v; want 0, nil", best, err)
	}
}

func TestFileBestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "best_score.txt")
	fb, _ := NewFileBest(path)

	if err := fb.Save(2048); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "2048" {
		t.Errorf("file content = %q, want digits only", data)
	}

	best, err := fb.Load()
	if err != nil || best != 2048 {
		t.Errorf("Load() = %d, %v; want 2048", best, err)
	}
}

func TestFileBestCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{name: "digits with newline", content: "512\n", want: 512},
		{name: "letters", content: "abc", wantErr: true},
		{name: "negative", content: "-5", wantErr: true},
		{name: "empty", content: "", wantErr: true},
		{name: "mixed", content: "12ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "best_score.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			fb, _ := NewFileBest(path)

			best, err := fb.Load()
			if tt.wantErr {
				if !errors.Is(err, ErrCorruptBestScore) {
					t.Errorf("Load() err = %v, want ErrCorruptBestScore", err)
				}
				if best != 0 {
					t.Errorf("Load() = %d on corrupt file, want 0", best)
				}
				return
			}
			if err != nil || best != tt.want {
				t.Errorf("Load() = %d, %v; want %d", best, err, tt.want)
			}
		})
	}
}

func TestFileBestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the rename fail
	path := filepath.Join(dir, "best_score.txt")
	if err := os.MkdirAll(filepath.Join(path, "child"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	fb, _ := NewFileBest(path)

	if err := fb.Save(10); err == nil {
		t.Error("Save() onto a non-empty directory should fail")
	}
}

func TestFileBestExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	fb, err := NewFileBest("~/.t2048/best_score.txt")
	if err != nil {
		t.Fatalf("NewFileBest() failed: %v", err)
	}
	if fb.Path() != filepath.Join(home, ".t2048", "best_score.txt") {
		t.Errorf("Path() = %q", fb.Path())
	}
}

func TestFileBestMatchesConfigExpansion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, path := range []string{"~/best.txt", "/tmp/best.txt", "relative/best.txt"} {
		fb, err := NewFileBest(path)
		if err != nil {
			t.Fatalf("NewFileBest(%q) failed: %v", path, err)
		}
		if want := config.ExpandHome(path); fb.Path() != want {
			t.Errorf("Path() = %q, want %q", fb.Path(), want)
		}
	}

	if _, err := NewFileBest(""); err == nil {
		t.Error("empty path should be rejected")
	}
}
