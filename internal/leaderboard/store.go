// Package leaderboard implements the remote high score table: a store with
// pluggable persistence, the HTTP service exposing it, and a client for the
// game's screens.
package leaderboard

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxNameLen is the longest accepted player name.
const MaxNameLen = 15

var (
	// ErrInvalidName is returned for empty, too long or non-alphanumeric names.
	ErrInvalidName = errors.New("leaderboard: name must be 1-15 letters or digits")
	// ErrInvalidScore is returned for negative scores.
	ErrInvalidScore = errors.New("leaderboard: score must not be negative")
	// ErrUnavailable is returned when the service cannot be reached.
	ErrUnavailable = errors.New("leaderboard: service unavailable")
)

// Entry is one submitted score.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Persister loads and saves the full entry list.
type Persister interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Store keeps every submitted entry sorted by score, highest first. Entries
// with equal scores stay in submission order. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	persist Persister
	now     func() time.Time
}

// NewStore loads existing entries from p. A nil persister keeps entries in memory only.
func NewStore(p Persister) (*Store, error) {
	s := &Store{persist: p, now: time.Now}
	if p == nil {
		return s, nil
	}

	entries, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: load entries: %w", err)
	}
	sortEntries(entries)
	s.entries = entries
	return s, nil
}

// ValidateName checks the player name rules.
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLen {
		return ErrInvalidName
	}
	for _, r := range name {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit {
			return ErrInvalidName
		}
	}
	return nil
}

// Submit validates and stores a score, persisting the whole table.
// The stored entry is returned. On persistence failure the table is unchanged.
func (s *Store) Submit(name string, score int) (Entry, error) {
	if err := ValidateName(name); err != nil {
		return Entry{}, err
	}
	if score < 0 {
		return Entry{}, ErrInvalidScore
	}

	e := Entry{
		ID:        uuid.NewString(),
		Name:      name,
		Score:     score,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, e)
	sortEntries(next)

	if s.persist != nil {
		if err := s.persist.Save(next); err != nil {
			return Entry{}, fmt.Errorf("leaderboard: save entries: %w", err)
		}
	}
	s.entries = next
	return e, nil
}

// Page returns up to limit entries starting at skip.
func (s *Store) Page(skip, limit int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.entries) || limit <= 0 {
		return []Entry{}
	}
	end := min(skip+limit, len(s.entries))
	return append([]Entry(nil), s.entries[skip:end]...)
}

// Best returns the highest score, 0 when empty.
func (s *Store) Best() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].Score
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
