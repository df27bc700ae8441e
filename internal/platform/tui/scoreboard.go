package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// errNoScoreSource is shown when neither a leaderboard nor history is configured.
var errNoScoreSource = errors.New("no leaderboard or score history configured")

// scoreRow is one line of the leaderboard table.
type scoreRow struct {
	ID    string
	Name  string
	Score int
	When  time.Time
}

// scoresMsg carries a fetched page of scores.
type scoresMsg struct {
	title string
	rows  []scoreRow
	err   error
}

// scoreBoard is the state of the leaderboard screen.
type scoreBoard struct {
	table   table.Model
	title   string
	rows    []scoreRow
	loading bool
	err     error
	width   int
	height  int
}

func newScoreBoard(width, height int) scoreBoard {
	sb := scoreBoard{width: width, height: height, title: "LEADERBOARD"}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table sized for the terminal.
func (sb *scoreBoard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: leaderboard.MaxNameLen + 1},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(sb.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (sb *scoreBoard) resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// load replaces the table contents with a fetch result.
func (sb *scoreBoard) load(msg scoresMsg) {
	sb.loading = false
	sb.err = msg.err
	if msg.title != "" {
		sb.title = msg.title
	}
	if msg.err != nil {
		sb.rows = nil
	} else {
		sb.rows = msg.rows
	}
	sb.updateTableRows()
}

// highlight moves the cursor to the row with the given entry ID.
func (sb *scoreBoard) highlight(id string) {
	if id == "" {
		return
	}
	for i, r := range sb.rows {
		if r.ID == id {
			sb.table.SetCursor(i)
			return
		}
	}
}

func (sb *scoreBoard) updateTableRows() {
	rows := make([]table.Row, len(sb.rows))
	for i, r := range sb.rows {
		when := ""
		if !r.When.IsZero() {
			when = r.When.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Name,
			fmt.Sprintf("%d", r.Score),
			when,
		}
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
}

// fetchOnlineCmd loads the first page of the online leaderboard.
func fetchOnlineCmd(c *leaderboard.Client, timeout time.Duration, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		entries, err := c.Leaderboard(ctx, 0, limit)
		if err != nil {
			return scoresMsg{err: err}
		}
		rows := make([]scoreRow, len(entries))
		for i, e := range entries {
			rows[i] = scoreRow{ID: e.ID, Name: e.Name, Score: e.Score, When: e.CreatedAt}
		}
		return scoresMsg{title: "LEADERBOARD", rows: rows}
	}
}

// fetchLocalCmd loads the best games of one variant from the score history.
func fetchLocalCmd(store *storage.Store, variantID, title string, limit int) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.TopScores(variantID, limit)
		if err != nil {
			return scoresMsg{err: err}
		}
		rows := make([]scoreRow, len(entries))
		for i, e := range entries {
			rows[i] = scoreRow{
				ID:    fmt.Sprintf("local-%d", e.ID),
				Name:  fmt.Sprintf("tile %d", e.MaxTile),
				Score: e.Score,
				When:  e.CreatedAt,
			}
		}
		return scoresMsg{title: "LOCAL SCORES - " + title, rows: rows}
	}
}

// openScores shows the leaderboard screen and starts loading it.
func (m App) openScores() (tea.Model, tea.Cmd) {
	if m.screen != ScreenLeaderboard && !m.switchTo(ScreenLeaderboard) {
		return m, nil
	}
	return m, m.fetchScores()
}

func (m *App) fetchScores() tea.Cmd {
	m.scores.loading = true
	m.scores.err = nil

	switch {
	case m.cfg.Leaderboard != nil:
		return fetchOnlineCmd(m.cfg.Leaderboard, m.cfg.requestTimeout(), m.cfg.pageSize())
	case m.cfg.History != nil:
		v := m.variants[m.cursor]
		if m.game != nil {
			v = m.game.Variant()
		}
		return fetchLocalCmd(m.cfg.History, v.ID, v.Name, m.cfg.pageSize())
	}

	m.scores.load(scoresMsg{err: errNoScoreSource})
	return nil
}

func (m App) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.switchTo(ScreenStart)
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if m.scores.loading {
			return m, nil
		}
		return m, m.fetchScores()
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.scores.table, cmd = m.scores.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// view renders the leaderboard screen body.
func (sb scoreBoard) view() string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render(sb.title), sb.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	muted := mutedStyle.Italic(true).Padding(1, 4)
	switch {
	case sb.loading:
		content = muted.Render("Loading...")
	case sb.err != nil:
		content = muted.Render(fmt.Sprintf("Could not load scores:\n%v\n\nPress R to retry", sb.err))
	case len(sb.rows) == 0:
		content = muted.Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		content = sb.table.View()
	}

	box := boxStyle.Render(content)
	b.WriteString(lipgloss.PlaceHorizontal(sb.width, lipgloss.Center, box))
	return b.String()
}
