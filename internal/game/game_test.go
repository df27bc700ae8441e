package game

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// memStore is an in-memory BestScoreStore.
type memStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) Load() (int, error) {
	return m.best, m.loadErr
}

func (m *memStore) Save(best int) error {
	m.saves = append(m.saves, best)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = best
	return nil
}

func classic() Variant {
	v, _ := GetVariant("classic")
	return v
}

func newTestGame(opts ...Option) *Game {
	g := New(classic(), opts...)
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

// settle ticks until the current turn finishes.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; g.State() == StateAnimating; i++ {
		if i > 1000 {
			t.Fatal("turn never settled")
		}
		g.Tick()
	}
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	g := newTestGame()

	if g.Board().Len() != 2 {
		t.Errorf("Len() = %d after reset, want 2", g.Board().Len())
	}
	if g.State() != StateIdle || g.Score() != 0 {
		t.Errorf("reset state = %s score %d, want idle 0", g.State(), g.Score())
	}
	for _, tile := range g.Board().Tiles() {
		if tile.Value != 2 && tile.Value != 4 {
			t.Errorf("spawned value %d, want 2 or 4", tile.Value)
		}
		x, y := g.anim.Target(tile.Pos)
		if tile.X != x || tile.Y != y {
			t.Errorf("spawned tile not snapped to its cell")
		}
	}
}

func TestTwoTilesMergeScenario(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{2, 2, 0, 0}))

	if !g.ProcessMovement(DirLeft) {
		t.Fatal("move should be accepted")
	}
	if g.Score() != 4 {
		t.Errorf("Score() = %d, want 4", g.Score())
	}
	if got := g.Board().Get(Pos(0, 0)); got == nil || got.Value != 4 {
		t.Fatalf("expected 4 at (0,0), got %v", got)
	}
	if n := len(g.Board().EmptyPositions()); n != 15 {
		t.Errorf("%d empty cells before spawn, want 15", n)
	}

	settle(t, g)
	if n := len(g.Board().EmptyPositions()); n != 14 {
		t.Errorf("%d empty cells after spawn, want 14", n)
	}
	if g.State() != StateIdle {
		t.Errorf("State() = %s, want idle", g.State())
	}
}

func TestMovementRejectedWhileAnimating(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{2, 0, 0, 0}))

	if !g.ProcessMovement(DirRight) {
		t.Fatal("first move should be accepted")
	}
	if g.State() != StateAnimating {
		t.Fatalf("State() = %s, want animating", g.State())
	}

	values := g.Board().Values()
	if g.ProcessMovement(DirLeft) {
		t.Error("move during animation should be ignored")
	}
	if !equalValues(g.Board().Values(), values) {
		t.Error("ignored move changed the board")
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", g.Moves())
	}
}

func TestNoOpMoveDoesNotSpawn(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{2, 4, 0, 0}))

	if g.ProcessMovement(DirLeft) {
		t.Error("no-op move should be rejected")
	}
	if g.State() != StateIdle {
		t.Errorf("State() = %s, want idle", g.State())
	}
	if g.Board().Len() != 2 || g.Moves() != 0 || g.Score() != 0 {
		t.Errorf("no-op changed game: len=%d moves=%d score=%d", g.Board().Len(), g.Moves(), g.Score())
	}
}

func TestGameOverDetection(t *testing.T) {
	g := newTestGame()
	g.LoadBoard([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if !g.IsGameOver() {
		t.Error("full board without equal neighbours should be game over")
	}

	g.LoadBoard([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 4},
	})
	if g.IsGameOver() {
		t.Error("board with an equal pair is not game over")
	}

	g.LoadBoard(rowBoard([]int{2, 4, 2, 4}))
	if g.IsGameOver() {
		t.Error("board with empty cells is not game over")
	}
}

func TestTurnEndsInGameOver(t *testing.T) {
	g := newTestGame()
	// Sliding right fills the last gap; every spawn leaves a locked board.
	g.LoadBoard([][]int{
		{32, 64, 128, 0},
		{8, 16, 8, 16},
		{16, 8, 16, 8},
		{8, 16, 8, 16},
	})

	g.ProcessMovement(DirRight)
	var events []core.Event
	for g.State() == StateAnimating {
		res := g.Step(core.NewInputFrame())
		events = append(events, res.Events...)
	}

	if g.State() != StateGameOver {
		t.Fatalf("State() = %s, want game_over", g.State())
	}
	if !g.Status().GameOver {
		t.Error("Status().GameOver should be set")
	}

	var ended *EventTurnEnded
	for _, e := range events {
		if te, ok := e.(EventTurnEnded); ok {
			ended = &te
		}
	}
	if ended == nil || !ended.GameOver {
		t.Errorf("expected a game-over turn event, got %v", events)
	}
	if g.ProcessMovement(DirLeft) {
		t.Error("moves after game over should be ignored")
	}
}

func TestWinFiresOnce(t *testing.T) {
	g := newTestGame()
	g.LoadBoard([][]int{
		{1024, 1024, 0, 0},
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.ProcessMovement(DirLeft)
	var won int
	for g.State() == StateAnimating {
		res := g.Step(core.NewInputFrame())
		for _, e := range res.Events {
			if _, ok := e.(EventWon); ok {
				won++
			}
		}
	}
	if g.State() != StateWon || won != 1 {
		t.Fatalf("after first 2048: state %s, won events %d", g.State(), won)
	}
	if g.ProcessMovement(DirDown) {
		t.Error("moves in the win state should be ignored until continue")
	}

	if !g.Continue() {
		t.Fatal("Continue should leave the win state")
	}
	if g.State() != StateIdle {
		t.Fatalf("State() = %s after continue, want idle", g.State())
	}

	// The second 2048 pair merges without a new win.
	if !g.ProcessMovement(DirUp) {
		t.Fatal("up should merge the two 2048 tiles")
	}
	settle(t, g)
	if g.State() == StateWon {
		t.Error("win should not trigger twice in one game")
	}
	if g.Board().MaxValue() != 4096 {
		t.Errorf("expected the 2048 pair to merge, board %v", g.Board().Values())
	}
}

func TestEndlessNeverWins(t *testing.T) {
	v, _ := GetVariant("endless")
	g := New(v)
	g.Reset(core.DefaultConfig())
	g.LoadBoard(rowBoard([]int{1024, 1024, 0, 0}))

	g.ProcessMovement(DirLeft)
	settle(t, g)
	if g.State() == StateWon {
		t.Error("endless variant should not enter the win state")
	}
}

func TestBestScorePersistence(t *testing.T) {
	store := &memStore{best: 6}
	g := newTestGame(WithBestScoreStore(store))

	if g.BestScore() != 6 {
		t.Fatalf("BestScore() = %d, want loaded 6", g.BestScore())
	}

	g.LoadBoard(rowBoard([]int{2, 2, 0, 0}))
	g.ProcessMovement(DirLeft)
	if len(store.saves) != 0 {
		t.Errorf("score 4 should not beat best 6, saves = %v", store.saves)
	}
	settle(t, g)

	g.LoadBoard(rowBoard([]int{4, 4, 0, 0}))
	g.ProcessMovement(DirLeft)
	if g.BestScore() != 12 || store.best != 12 {
		t.Errorf("best = %d (stored %d), want 12", g.BestScore(), store.best)
	}
}

func TestBestScoreStoreFailures(t *testing.T) {
	store := &memStore{best: 99, loadErr: errors.New("corrupt"), saveErr: errors.New("disk full")}
	g := newTestGame(WithBestScoreStore(store))

	if g.BestScore() != 0 {
		t.Errorf("load failure should default best to 0, got %d", g.BestScore())
	}

	g.LoadBoard(rowBoard([]int{2, 2, 0, 0}))
	if !g.ProcessMovement(DirLeft) {
		t.Fatal("move should succeed despite save failure")
	}
	if g.BestScore() != 4 || len(store.saves) != 1 {
		t.Errorf("best = %d saves = %v, want in-memory 4 and one save attempt", g.BestScore(), store.saves)
	}
	settle(t, g)
	if g.State() != StateIdle {
		t.Errorf("State() = %s, want idle", g.State())
	}
}

func TestStepRestart(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{2, 2, 0, 0}))
	g.ProcessMovement(DirLeft)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.Score != 0 || g.Board().Len() != 2 || g.State() != StateIdle {
		t.Errorf("restart mid-animation: score %d len %d state %s", res.State.Score, g.Board().Len(), g.State())
	}
	if g.Board().MovingCount() != 0 {
		t.Error("restart should drop the moving set")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

	run := func() Snapshot {
		g := New(classic())
		cfg := core.DefaultConfig()
		cfg.Seed = 12345
		g.Reset(cfg)

		for i := range 400 {
			in := core.NewInputFrame()
			in.Set(inputs[i%len(inputs)])
			g.Step(in)
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different snapshots:\n%+v\n%+v", first, second)
	}
	if first.Moves == 0 {
		t.Error("expected some moves to be played")
	}
}

func TestSnapshotIncludesSlidingMergeTile(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{2, 0, 0, 2}))
	g.ProcessMovement(DirLeft)

	snap := g.Snapshot()
	if len(snap.Tiles) != 2 {
		t.Fatalf("snapshot tiles = %d, want survivor and sliding tile", len(snap.Tiles))
	}
	if !snap.Tiles[1].Moving || !snap.Tiles[1].Merging {
		t.Errorf("consumed tile should be moving and merging: %+v", snap.Tiles[1])
	}
	if snap.State != "animating" {
		t.Errorf("State = %q, want animating", snap.State)
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateIdle, StateAnimating, true},
		{StateAnimating, StateIdle, true},
		{StateAnimating, StateWon, true},
		{StateWon, StateIdle, true},
		{StateIdle, StateGameOver, true},
		{StateIdle, StateWon, false},
		{StateGameOver, StateIdle, false},
		{StateWon, StateAnimating, false},
	}
	for _, tt := range tests {
		if got := canTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRenderDrawsTiles(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{2048, 0, 0, 0}))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := range screen.Height() {
		if y > 2 && strings.Contains(screen.Row(y), "2048") {
			found = true
		}
	}
	if !found {
		t.Errorf("rendered board should show the 2048 tile:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(classic())
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 10, 5
	g.Reset(cfg)

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !g.TooSmall() {
		t.Error("10x5 should be too small")
	}
}

func TestLoadBoardStartsClean(t *testing.T) {
	g := newTestGame()
	g.LoadBoard(rowBoard([]int{1024, 1024, 0, 0}))
	g.ProcessMovement(DirLeft)
	settle(t, g)
	if g.State() != StateWon || g.Moves() != 1 {
		t.Fatalf("setup: state %s moves %d, want won after one move", g.State(), g.Moves())
	}

	// Load mid-animation: nothing from the old turn survives.
	g.Continue()
	g.LoadBoard(rowBoard([]int{2, 2, 0, 0}))
	g.ProcessMovement(DirLeft)
	g.LoadBoard(rowBoard([]int{1024, 1024, 0, 0}))

	if g.State() != StateIdle || g.Moves() != 0 || g.Board().MovingCount() != 0 {
		t.Fatalf("after load: state %s moves %d moving %d", g.State(), g.Moves(), g.Board().MovingCount())
	}
	if len(g.Snapshot().Tiles) != 2 {
		t.Errorf("snapshot should only hold the loaded tiles, got %d", len(g.Snapshot().Tiles))
	}

	g.ProcessMovement(DirLeft)
	settle(t, g)
	if g.State() != StateWon {
		t.Errorf("a loaded position should be able to win again, state %s", g.State())
	}
}
