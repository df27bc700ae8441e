package game

import (
	"math"
	"testing"
)

func TestAnimatorTarget(t *testing.T) {
	a := NewAnimator(200, 50)
	x, y := a.Target(Pos(2, 3))
	if x != 600 || y != 400 {
		t.Errorf("Target(2,3) = (%v, %v), want (600, 400)", x, y)
	}
}

func TestAnimatorDefaults(t *testing.T) {
	a := NewAnimator(0, -1)
	if a.CellSize() != DefaultCellSize || a.Speed() != DefaultSpeed {
		t.Errorf("NewAnimator(0, -1) = %v/%v, want defaults", a.CellSize(), a.Speed())
	}
}

func TestAnimatorSlideSettles(t *testing.T) {
	a := NewAnimator(200, 50)
	b := NewBoard(4)
	tile := b.NewTile(2, Pos(0, 0))
	a.Snap(tile)
	b.Place(tile)

	// Relocate to the far right and launch
	b.Remove(tile.Pos)
	tile.Pos = Pos(0, 3)
	b.Place(tile)
	a.Launch(b, tile, tile.Pos)

	if tile.VX != 50 || tile.VY != 0 {
		t.Fatalf("velocity = (%v, %v), want (50, 0)", tile.VX, tile.VY)
	}
	if !b.IsMoving(tile) {
		t.Fatal("Launch should add the tile to the moving set")
	}

	// 600 px at 50 px/tick snaps on the twelfth tick
	ticks := 0
	for a.Step(b) {
		ticks++
		if ticks > 100 {
			t.Fatal("animation never settled")
		}
	}
	ticks++

	if ticks != 12 {
		t.Errorf("settled after %d ticks, want 12", ticks)
	}
	if tile.X != 600 || tile.Y != 0 {
		t.Errorf("final position = (%v, %v), want (600, 0)", tile.X, tile.Y)
	}
	if !tile.Settled() || b.MovingCount() != 0 {
		t.Error("tile should be settled and out of the moving set")
	}
}

func TestAnimatorSnapsShortRemainder(t *testing.T) {
	a := NewAnimator(100, 30)
	b := NewBoard(4)
	tile := b.NewTile(2, Pos(1, 0))
	a.Snap(tile)
	tile.Pos = Pos(0, 0)
	a.Launch(b, tile, tile.Pos)

	// 100 px at 30 px/tick: 70, 40, 10, then the remaining 10 snaps
	var ys []float64
	for a.Step(b) {
		ys = append(ys, tile.Y)
	}
	ys = append(ys, tile.Y)

	want := []float64{70, 40, 10, 0}
	if len(ys) != len(want) {
		t.Fatalf("positions = %v, want %v", ys, want)
	}
	for i := range want {
		if math.Abs(ys[i]-want[i]) > 1e-9 {
			t.Errorf("tick %d: y = %v, want %v", i+1, ys[i], want[i])
		}
	}
}

func TestAnimatorVelocityFixedAtLaunch(t *testing.T) {
	a := NewAnimator(200, 50)
	b := NewBoard(4)
	tile := b.NewTile(2, Pos(0, 3))
	a.Snap(tile)
	tile.Pos = Pos(0, 0)
	a.Launch(b, tile, tile.Pos)

	vx := tile.VX
	a.Step(b)
	a.Step(b)
	if tile.VX != vx {
		t.Errorf("velocity changed mid-slide: %v -> %v", vx, tile.VX)
	}
}
