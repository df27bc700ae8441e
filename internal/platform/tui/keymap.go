package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap defines every key binding used by the app.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Restart   key.Binding
	Continue  key.Binding
	Scores    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Continue):
		return core.ActionContinue
	}
	return core.ActionNone
}

// bindings is a flat set of bindings shown in the help bar.
type bindings []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindings) ShortHelp() []key.Binding {
	return b
}

// FullHelp returns key bindings for the full help view.
func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

// helpFor returns the bindings that apply on a screen.
func (k KeyMap) helpFor(s Screen) bindings {
	move := key.NewBinding(
		key.WithKeys("up", "down", "left", "right"),
		key.WithHelp("arrows/wasd/hjkl", "slide"),
	)
	switch s {
	case ScreenStart:
		return bindings{k.Up, k.Down, k.Confirm, k.Scores, k.Quit}
	case ScreenGame:
		return bindings{move, k.Restart, k.Back, k.Quit}
	case ScreenWon:
		submit := k.Confirm
		submit.SetHelp("enter", "submit")
		return bindings{k.Continue, k.Restart, submit, k.Back}
	case ScreenGameOver:
		submit := k.Confirm
		submit.SetHelp("enter", "submit")
		return bindings{k.Restart, submit, k.Back, k.Quit}
	case ScreenNameEntry:
		submit := k.Confirm
		submit.SetHelp("enter", "submit")
		back := k.Back
		back.SetHelp("esc", "cancel")
		return bindings{submit, back, k.ForceQuit}
	case ScreenLeaderboard:
		retry := k.Restart
		retry.SetHelp("r", "retry")
		return bindings{k.Up, k.Down, retry, k.Back, k.Quit}
	}
	return bindings{k.Quit}
}
