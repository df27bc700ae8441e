package game

// Tile is a single numbered block on the board.
type Tile struct {
	ID    uint64   // Stable identity, assigned by the board on creation
	Value int      // Power of two, >= 2
	Pos   Position // Current logical cell

	X, Y   float64 // Rendered pixel coordinates
	VX, VY float64 // Pixels per tick

	Merging bool // Consumed into, or receiving, a merge this turn
	Moved   bool // Relocated this turn
	Born    bool // Spawned after the last turn settled
}

// Settled reports whether the tile has no remaining velocity.
func (t *Tile) Settled() bool {
	return t.VX == 0 && t.VY == 0
}
