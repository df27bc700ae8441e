package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// View renders the current screen.
func (m App) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenGame, ScreenWon, ScreenGameOver:
		return m.gameView()
	case ScreenNameEntry:
		return m.nameEntryView()
	case ScreenLeaderboard:
		return m.scores.view() + "\n\n" + m.footer()
	}
	return m.startView()
}

// footer shows the pending notice, or the help bar when there is none.
func (m App) footer() string {
	if m.notice != "" {
		return centerText(noticeStyle.Render(m.notice), m.runtime.ScreenW)
	}
	return mutedStyle.Render(m.help.View(m.keys.helpFor(m.screen)))
}

func (m App) gameView() string {
	if m.game == nil {
		return ""
	}
	m.game.Render(m.buf)
	return RenderScreen(m.buf) + "\n" + m.footer()
}

func (m App) startView() string {
	var b strings.Builder
	w := m.runtime.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), w))
	b.WriteString("\n\n")
	b.WriteString(centerText("Join the tiles, get to the goal!", w))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		goal := "no goal"
		if v.WinValue > 0 {
			goal = fmt.Sprintf("goal %d", v.WinValue)
		}
		line := fmt.Sprintf("  %-14s %dx%d  %s", v.Name, v.Size, v.Size, goal)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	return b.String()
}

func (m App) nameEntryView() string {
	var b strings.Builder
	w := m.runtime.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SUBMIT SCORE"), w))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Final score: %d", m.final), w))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.entry.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, box))
	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render("Up to 15 letters or digits"), w))
	b.WriteString("\n\n")
	b.WriteString(m.footer())
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	tw := lipgloss.Width(text)
	if tw >= width {
		return text
	}
	return strings.Repeat(" ", (width-tw)/2) + text
}
