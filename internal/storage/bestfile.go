package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// ErrCorruptBestScore is returned when the best score file holds anything
// other than a non-negative integer.
var ErrCorruptBestScore = errors.New("storage: best score file is corrupt")

// FileBest keeps the best score as decimal digits in a text file.
type FileBest struct {
	path string
}

// NewFileBest returns a store for path, expanding a leading ~.
func NewFileBest(path string) (*FileBest, error) {
	if path == "" {
		return nil, errors.New("storage: best score path is empty")
	}
	return &FileBest{path: config.ExpandHome(path)}, nil
}

// Path returns the file location.
func (f *FileBest) Path() string {
	return f.path
}

// Load reads the best score. A missing file is 0 with no error; unreadable
// or non-numeric content is 0 with an error the caller may log.
func (f *FileBest) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" || strings.TrimLeft(text, "0123456789") != "" {
		return 0, ErrCorruptBestScore
	}
	best, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptBestScore, err)
	}
	return best, nil
}

// Save writes the best score, replacing the file atomically.
func (f *FileBest) Save(best int) error {
	if best < 0 {
		return fmt.Errorf("storage: negative best score %d", best)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".best-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(best)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}
