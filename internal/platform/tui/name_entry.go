package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

// nameEntry is the state of the name-entry screen.
type nameEntry struct {
	input      textinput.Model
	submitting bool
	lastID     string // ID of the entry submitted last, highlighted on the leaderboard
}

func newNameEntry() nameEntry {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 1
	ti.Prompt = "> "
	return nameEntry{input: ti}
}

// submitResultMsg carries the outcome of a leaderboard submission.
type submitResultMsg struct {
	entry leaderboard.Entry
	err   error
}

// submitCmd posts a score in the background.
func submitCmd(c *leaderboard.Client, timeout time.Duration, name string, score int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		entry, err := c.Submit(ctx, name, score)
		return submitResultMsg{entry: entry, err: err}
	}
}

// filterName drops every rune a leaderboard name may not contain.
func filterName(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}

func (m App) openNameEntry() (tea.Model, tea.Cmd) {
	if !m.switchTo(ScreenNameEntry) {
		return m, nil
	}
	m.entry.submitting = false
	m.entry.input.Reset()
	return m, m.entry.input.Focus()
}

func (m App) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.entry.input.Blur()
		m.switchTo(ScreenStart)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitName()
	}

	var cmd tea.Cmd
	m.entry.input, cmd = m.entry.input.Update(msg)
	if v := m.entry.input.Value(); filterName(v) != v {
		m.entry.input.SetValue(filterName(v))
	}
	return m, cmd
}

func (m App) submitName() (tea.Model, tea.Cmd) {
	if m.entry.submitting {
		return m, nil
	}
	if m.cfg.Leaderboard == nil {
		m.notice = "Online leaderboard is not configured"
		return m, nil
	}

	name := m.entry.input.Value()
	if err := leaderboard.ValidateName(name); err != nil {
		m.notice = "Name must be 1-15 letters or digits"
		return m, nil
	}

	m.entry.submitting = true
	m.notice = "Submitting..."
	return m, submitCmd(m.cfg.Leaderboard, m.cfg.requestTimeout(), name, m.final)
}

func (m App) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.entry.submitting = false
	if m.screen != ScreenNameEntry {
		return m, nil
	}

	if msg.err != nil {
		m.logger.Warn("could not submit score", "error", msg.err)
		switch {
		case errors.Is(msg.err, leaderboard.ErrUnavailable):
			m.notice = "Leaderboard unavailable, press Enter to retry"
		default:
			m.notice = "Could not submit score: " + msg.err.Error()
		}
		return m, nil
	}

	m.logger.Info("score submitted", "name", msg.entry.Name, "score", msg.entry.Score, "id", msg.entry.ID)
	m.entry.lastID = msg.entry.ID
	m.entry.input.Blur()
	return m.openScores()
}
