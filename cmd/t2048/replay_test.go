package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
)

func TestParseMoves(t *testing.T) {
	got, err := parseMoves("L r, U d")
	if err != nil {
		t.Fatalf("parseMoves: %v", err)
	}
	want := []game.Direction{game.DirLeft, game.DirRight, game.DirUp, game.DirDown}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseMoves = %v, want %v", got, want)
	}

	if _, err := parseMoves("LX"); err == nil {
		t.Error("unknown move should fail")
	}
	if got, _ := parseMoves(""); len(got) != 0 {
		t.Errorf("empty moves = %v", got)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	settings := config.DefaultT2048Config()
	moves, _ := parseMoves("LURDLURDLLRRUUDDLURD")
	logger := log.New(io.Discard)

	a, err := replay("classic", 7, moves, settings, logger)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	b, err := replay("classic", 7, moves, settings, logger)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	if !reflect.DeepEqual(a.Board().Values(), b.Board().Values()) {
		t.Errorf("same seed and moves gave different boards:\n%v\n%v", a.Board().Values(), b.Board().Values())
	}
	if a.Score() != b.Score() || a.Moves() != b.Moves() {
		t.Errorf("score/moves differ: %d/%d vs %d/%d", a.Score(), a.Moves(), b.Score(), b.Moves())
	}
	if a.State() == game.StateAnimating {
		t.Error("replay should settle every turn")
	}
}

func TestReplayUnknownVariant(t *testing.T) {
	if _, err := replay("nope", 1, nil, config.DefaultT2048Config(), log.New(io.Discard)); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestPrintReplay(t *testing.T) {
	g, err := replay("mini", 3, nil, config.DefaultT2048Config(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	var buf bytes.Buffer
	printReplay(&buf, g, false)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 { // 3 rows, blank line, summary
		t.Errorf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "score: 0  moves: 0") {
		t.Errorf("summary missing:\n%s", out)
	}

	buf.Reset()
	printReplay(&buf, g, true)
	if !strings.Contains(buf.String(), "Mini 3x3") {
		t.Errorf("screen output should include the title:\n%s", buf.String())
	}
}
