package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// DefaultSpawn4 is the probability that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4 = 0.10

// BestScoreStore is the durable slot holding the best score.
type BestScoreStore interface {
	Load() (int, error)
	Save(best int) error
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for non-fatal problems.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithBestScoreStore loads the best score from s and saves increases to it.
func WithBestScoreStore(s BestScoreStore) Option {
	return func(g *Game) {
		g.bestStore = s
		g.loadBest()
	}
}

// WithSpawn4 sets the probability of spawning a 4.
func WithSpawn4(p float64) Option {
	return func(g *Game) {
		if p >= 0 && p <= 1 {
			g.spawn4 = p
		}
	}
}

// WithSpawnRate makes the spawn4 probability depend on score and moves.
// It overrides WithSpawn4.
func WithSpawnRate(rate func(score, moves int) float64) Option {
	return func(g *Game) {
		g.spawnRate = rate
	}
}

// WithAnimation sets the cell size and per-tick speed in pixels.
func WithAnimation(cellSize, speed float64) Option {
	return func(g *Game) {
		g.anim = NewAnimator(cellSize, speed)
	}
}

// WithPalette sets the tile palette used by Render.
func WithPalette(p *Palette) Option {
	return func(g *Game) {
		if p != nil {
			g.palette = p
		}
	}
}

// WithWinValue overrides the variant's winning tile. 0 disables winning.
func WithWinValue(v int) Option {
	return func(g *Game) {
		if v >= 0 {
			g.variant.WinValue = v
		}
	}
}

// Game is the turn controller. It owns one board and runs the
// idle → animating → idle cycle, spawning tiles and detecting win and loss.
type Game struct {
	variant   Variant
	logger    *log.Logger
	bestStore BestScoreStore
	anim      *Animator
	palette   *Palette
	spawn4    float64
	spawnRate func(score, moves int) float64

	rng   *rand.Rand
	seed  int64
	tick  uint64
	board *Board
	state State

	score      int
	best       int
	moves      int
	winShown   bool // Win already reported this game
	winPending bool // Win reached during the current turn
	events     []core.Event

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game for the given variant. The board is empty until Reset.
func New(v Variant, opts ...Option) *Game {
	g := &Game{
		variant: v,
		logger:  log.New(io.Discard),
		anim:    NewAnimator(DefaultCellSize, DefaultSpeed),
		palette: DefaultPalette(),
		spawn4:  DefaultSpawn4,
		rng:     rand.New(rand.NewSource(1)),
		board:   NewBoard(v.Size),
	}
	g.Apply(opts...)
	return g
}

// Apply applies options to an existing game.
func (g *Game) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(g)
	}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Name
}

// Variant returns the board configuration in use.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset seeds the random source from cfg and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.NewGame()
}

// NewGame clears the board and score and spawns two tiles. It is valid from
// any state and keeps the random source and best score.
func (g *Game) NewGame() {
	g.board = NewBoard(g.variant.Size)
	g.score = 0
	g.moves = 0
	g.winShown = false
	g.winPending = false
	g.state = StateIdle
	g.spawnTile()
	g.spawnTile()
}

// LoadBoard replaces the board with the given values and returns to idle
// with the move counter and win latch cleared. The score and best score are
// kept, so a run of loaded positions keeps accumulating points.
func (g *Game) LoadBoard(values [][]int) {
	g.board.ClearMoving()
	g.board = NewBoardFromValues(values)
	for _, t := range g.board.Tiles() {
		g.anim.Snap(t)
	}
	g.state = StateIdle
	g.moves = 0
	g.winShown = false
	g.winPending = false
}

// spawnTile puts a 2 or a 4 into a uniformly random empty cell.
func (g *Game) spawnTile() *Tile {
	empty := g.board.EmptyPositions()
	if len(empty) == 0 {
		return nil
	}

	pos := empty[g.rng.Intn(len(empty))]
	p := g.spawn4
	if g.spawnRate != nil {
		p = g.spawnRate(g.score, g.moves)
	}
	value := 2
	if g.rng.Float64() < p {
		value = 4
	}

	t := g.board.NewTile(value, pos)
	t.Born = true
	g.anim.Snap(t)
	g.board.Place(t)
	return t
}

// Step advances the game by one tick: input first, then animation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	switch {
	case in.Has(core.ActionRestart):
		g.NewGame()
	case in.Has(core.ActionContinue):
		g.Continue()
	default:
		if dir, ok := actionDirection(in); ok {
			g.ProcessMovement(dir)
		}
	}

	g.Tick()

	return core.StepResult{State: g.Status(), Events: g.events}
}

// actionDirection picks the first directional action in the frame.
func actionDirection(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// ProcessMovement starts a turn in direction dir. It returns false and leaves
// everything untouched when the game is not idle or no tile can move.
func (g *Game) ProcessMovement(dir Direction) bool {
	if g.state != StateIdle || !dir.Valid() {
		return false
	}

	res := Resolve(g.board, dir)
	if !res.Moved {
		return false
	}

	for _, t := range g.board.Tiles() {
		t.Born = false
	}
	for _, r := range res.Relocations {
		g.anim.Launch(g.board, r.Tile, r.To)
	}
	for _, m := range res.Merges {
		g.anim.Launch(g.board, m.Consumed, m.At)
	}

	g.addScore(res.ScoreDelta)
	if g.variant.WinValue > 0 && res.MaxValue >= g.variant.WinValue && !g.winShown {
		g.winShown = true
		g.winPending = true
	}
	g.moves++

	g.transition(StateAnimating)
	return true
}

// addScore raises the score and persists a new best immediately.
func (g *Game) addScore(delta int) {
	if delta <= 0 {
		return
	}
	g.score += delta
	if g.score <= g.best {
		return
	}
	g.best = g.score
	g.emit(EventBestScore{Best: g.best})
	if g.bestStore == nil {
		return
	}
	if err := g.bestStore.Save(g.best); err != nil {
		g.logger.Warn("could not save best score", "best", g.best, "error", err)
	}
}

// Tick advances the animation by one step and finishes the turn once every
// tile has settled.
func (g *Game) Tick() {
	if g.state != StateAnimating {
		return
	}
	if g.anim.Step(g.board) {
		return
	}

	g.settle()

	if g.winPending {
		g.winPending = false
		g.transition(StateWon)
		g.emit(EventWon{Score: g.score, Value: g.board.MaxValue()})
		return
	}

	g.transition(StateIdle)
	g.endTurn()
}

// settle snaps every tile onto its cell and clears per-turn merge flags.
func (g *Game) settle() {
	g.board.ClearMoving()
	for _, t := range g.board.Tiles() {
		g.anim.Snap(t)
		t.Merging = false
	}
}

// endTurn spawns the next tile and checks for game over.
func (g *Game) endTurn() {
	if !g.IsGameOver() {
		g.spawnTile()
	}
	over := g.IsGameOver()
	if over {
		g.transition(StateGameOver)
		g.logger.Debug("game over", "score", g.score, "moves", g.moves)
	}
	g.emit(EventTurnEnded{
		Score:    g.score,
		MaxTile:  g.board.MaxValue(),
		Moves:    g.moves,
		GameOver: over,
	})
}

// Continue leaves the win state and completes the winning turn.
func (g *Game) Continue() bool {
	if g.state != StateWon {
		return false
	}
	g.transition(StateIdle)
	g.endTurn()
	return true
}

// IsGameOver reports whether the board is full with no equal neighbours.
func (g *Game) IsGameOver() bool {
	return !g.board.CanMove()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// loadBest reads the best score; any failure counts as no best score yet.
func (g *Game) loadBest() {
	if g.bestStore == nil {
		return
	}
	best, err := g.bestStore.Load()
	if err != nil {
		g.logger.Warn("could not load best score", "error", err)
		best = 0
	}
	g.best = max(best, 0)
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the turn controller state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the best score known to this session.
func (g *Game) BestScore() int {
	return g.best
}

// Moves returns the number of turns that moved at least one tile.
func (g *Game) Moves() int {
	return g.moves
}

// Status returns the platform-facing summary of the game.
func (g *Game) Status() core.GameState {
	return core.GameState{
		Score:     g.score,
		Best:      g.best,
		Animating: g.state == StateAnimating,
		Won:       g.state == StateWon,
		GameOver:  g.state == StateGameOver,
	}
}
