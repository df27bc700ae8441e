package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile persists entries as an indented JSON array in one file.
type JSONFile struct {
	path string
}

// NewJSONFile creates the parent directory of path if needed.
func NewJSONFile(path string) (*JSONFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create leaderboard directory: %w", err)
	}
	return &JSONFile{path: path}, nil
}

// Load reads all entries. A missing file is an empty table.
func (f *JSONFile) Load() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}
	return entries, nil
}

// Save replaces the file with entries.
func (f *JSONFile) Save(entries []Entry) error {
	jsonData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write leaderboard file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace leaderboard file: %w", err)
	}
	return nil
}

// Memory is an in-process Persister, used for tests and ephemeral servers.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	Err     error // Returned by Save when set
}

// Load returns a copy of the saved entries.
func (m *Memory) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

// Save stores a copy of entries unless Err is set.
func (m *Memory) Save(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.entries = append([]Entry(nil), entries...)
	return nil
}
