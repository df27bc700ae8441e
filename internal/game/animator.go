package game

import "math"

// Animation defaults: an 800 px board split into four cells, moving 50 px per tick.
const (
	DefaultCellSize = 200.0
	DefaultSpeed    = 50.0
)

// Animator moves tiles from their pixel position toward their logical cell,
// one tick at a time. Velocity is fixed when a slide is launched.
type Animator struct {
	cellSize float64
	speed    float64
}

// NewAnimator creates an animator. Non-positive arguments fall back to defaults.
func NewAnimator(cellSize, speed float64) *Animator {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Animator{cellSize: cellSize, speed: speed}
}

// CellSize returns the pixel size of one cell.
func (a *Animator) CellSize() float64 {
	return a.cellSize
}

// Speed returns the per-tick speed in pixels.
func (a *Animator) Speed() float64 {
	return a.speed
}

// Target returns the pixel coordinates of a cell's top-left corner.
func (a *Animator) Target(p Position) (x, y float64) {
	return float64(p.Col) * a.cellSize, float64(p.Row) * a.cellSize
}

// Snap places t exactly on its logical cell and stops it.
func (a *Animator) Snap(t *Tile) {
	t.X, t.Y = a.Target(t.Pos)
	t.VX, t.VY = 0, 0
}

// Launch starts sliding t toward dest and adds it to the board's moving set.
// The velocity points at dest and has magnitude equal to the animator speed.
func (a *Animator) Launch(b *Board, t *Tile, dest Position) {
	tx, ty := a.Target(dest)
	dx, dy := tx-t.X, ty-t.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		t.VX, t.VY = 0, 0
		return
	}
	t.VX = dx / dist * a.speed
	t.VY = dy / dist * a.speed
	b.AddToMoving(t)
}

// Step advances every moving tile by one tick and drops settled tiles from
// the moving set. It returns true while any tile is still moving.
func (a *Animator) Step(b *Board) bool {
	for _, t := range b.Moving() {
		tx, ty := a.Target(t.Pos)
		t.X, t.VX = advance(t.X, tx, t.VX)
		t.Y, t.VY = advance(t.Y, ty, t.VY)
		if t.Settled() {
			b.RemoveFromMoving(t)
		}
	}
	return b.MovingCount() > 0
}

// advance moves one axis by v, snapping to target once the remaining
// distance is no larger than a single step.
func advance(pos, target, v float64) (float64, float64) {
	if math.Abs(target-pos) <= math.Abs(v) {
		return target, 0
	}
	return pos + v, v
}
