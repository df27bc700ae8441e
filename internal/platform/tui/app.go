package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// App is the top-level Bubble Tea model: start menu, game, win and
// game-over screens, name entry and leaderboard.
type App struct {
	cfg     AppConfig
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	runtime core.RuntimeConfig

	screen   Screen
	variants []game.Variant
	cursor   int

	game     *game.Game
	buf      *core.Screen
	frame    core.InputFrame
	status   core.GameState
	final    int  // Score carried into name entry
	recorded bool // Current game already written to history
	bestSeen bool // New best already announced this game

	entry  nameEntry
	scores scoreBoard

	notice   string // One-line message under the current screen
	quitting bool
}

// NewApp creates the app on its start screen.
func NewApp(cfg AppConfig) App {
	rt := cfg.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		d := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = d.ScreenW, d.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	cursor := 0
	for i, v := range game.Variants {
		if v.ID == cfg.Variant {
			cursor = i
		}
	}

	h := help.New()
	h.Width = rt.ScreenW

	return App{
		cfg:      cfg,
		logger:   cfg.logger(),
		keys:     DefaultKeyMap(),
		help:     h,
		runtime:  rt,
		screen:   ScreenStart,
		variants: game.Variants,
		cursor:   cursor,
		buf:      core.NewScreen(rt.ScreenW, gameHeight(rt.ScreenH)),
		frame:    core.NewInputFrame(),
		entry:    newNameEntry(),
		scores:   newScoreBoard(rt.ScreenW, rt.ScreenH),
	}
}

// gameHeight leaves one row under the board for help and notices.
func gameHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m App) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, tickCmd(m.runtime.TickRate)

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case scoresMsg:
		m.scores.load(msg)
		m.scores.highlight(m.entry.lastID)
		return m, nil
	}

	if m.screen == ScreenNameEntry {
		var cmd tea.Cmd
		m.entry.input, cmd = m.entry.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Screen returns the current screen.
func (m App) Screen() Screen {
	return m.screen
}

// Game returns the running game, or nil before the first game starts.
func (m App) Game() *game.Game {
	return m.game
}

func (m *App) resize(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
	m.help.Width = w
	m.buf.Resize(w, gameHeight(h))
	if m.game != nil {
		m.game.SetScreenSize(w, gameHeight(h))
	}
	m.scores.resize(w, h)
}

// switchTo moves to another screen if the transition is allowed.
func (m *App) switchTo(s Screen) bool {
	if !canSwitch(m.screen, s) {
		m.logger.Error("illegal screen transition", "from", m.screen, "to", s)
		return false
	}
	m.logger.Debug("screen", "from", m.screen, "to", s)
	m.screen = s
	m.notice = ""
	return true
}

func (m App) quit() (tea.Model, tea.Cmd) {
	m.recordGame()
	m.quitting = true
	return m, tea.Quit
}

// handleKey routes keyboard input to the current screen.
func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	switch m.screen {
	case ScreenStart:
		return m.handleStartKey(msg)
	case ScreenGame:
		return m.handleGameKey(msg)
	case ScreenWon, ScreenGameOver:
		return m.handleEndKey(msg)
	case ScreenNameEntry:
		return m.handleNameKey(msg)
	case ScreenLeaderboard:
		return m.handleScoresKey(msg)
	}
	return m, nil
}

func (m App) handleStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.startGame(m.variants[m.cursor].ID)
	case key.Matches(msg, m.keys.Scores):
		return m.openScores()
	}
	return m, nil
}

func (m App) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionBack:
		m.recordGame()
		m.switchTo(ScreenStart)
	case core.ActionRestart:
		m.restart()
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.frame.Set(action)
		m.notice = ""
	}
	return m, nil
}

// handleEndKey serves both the win and game-over screens.
func (m App) handleEndKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionContinue:
		if m.screen == ScreenWon && m.switchTo(ScreenGame) {
			m.frame.Set(core.ActionContinue)
		}
	case core.ActionRestart:
		m.recordGame()
		if m.switchTo(ScreenGame) {
			m.restart()
		}
	case core.ActionConfirm:
		m.recordGame()
		return m.openNameEntry()
	case core.ActionBack:
		m.recordGame()
		m.switchTo(ScreenStart)
	}
	return m, nil
}

// startGame creates a fresh game for the variant and shows it.
func (m *App) startGame(variantID string) {
	g, err := NewGame(variantID, m.cfg)
	if err != nil {
		m.logger.Error("could not create game", "variant", variantID, "error", err)
		m.notice = err.Error()
		return
	}

	rt := m.runtime
	rt.ScreenH = gameHeight(rt.ScreenH)
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	g.Reset(rt)

	m.game = g
	m.status = g.Status()
	m.recorded = false
	m.bestSeen = false
	m.frame.Clear()
	m.logger.Info("game started", "variant", variantID, "seed", rt.Seed)
	m.switchTo(ScreenGame)
}

// restart queues a new game on the next tick.
func (m *App) restart() {
	m.frame.Clear()
	m.frame.Set(core.ActionRestart)
	m.recorded = false
	m.bestSeen = false
	m.notice = ""
}

// handleTick runs one simulation step while the game screen is shown.
func (m *App) handleTick() {
	if m.screen != ScreenGame || m.game == nil {
		return
	}

	result := m.game.Step(m.frame)
	m.frame.Clear()
	m.status = result.State

	for _, e := range result.Events {
		m.handleEvent(e)
	}
}

// handleEvent reacts to what the game reported during a step.
func (m *App) handleEvent(e core.Event) {
	switch e := e.(type) {
	case game.EventWon:
		m.final = e.Score
		m.logger.Info("won", "score", e.Score, "tile", e.Value)
		m.switchTo(ScreenWon)

	case game.EventTurnEnded:
		if !e.GameOver {
			return
		}
		m.final = e.Score
		m.logger.Info("game over", "score", e.Score, "max_tile", e.MaxTile, "moves", e.Moves)
		m.recordGame()
		m.switchTo(ScreenGameOver)

	case game.EventBestScore:
		if !m.bestSeen {
			m.bestSeen = true
			m.notice = "New best score!"
		}
	}
}

// recordGame writes the current game to the score history once.
func (m *App) recordGame() {
	if m.recorded || m.game == nil || m.cfg.History == nil || m.game.Score() == 0 {
		return
	}
	m.recorded = true

	entry := storage.ScoreEntry{
		GameID:  m.game.ID(),
		Score:   m.game.Score(),
		MaxTile: m.game.Board().MaxValue(),
		Moves:   m.game.Moves(),
	}
	if _, err := m.cfg.History.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score history", "error", err)
	}
}

// RunApp runs the app in the current terminal until the player quits.
func RunApp(cfg AppConfig) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
