package game

import "sort"

// Relocation records a tile sliding to a new cell without merging.
type Relocation struct {
	Tile *Tile
	From Position
	To   Position
}

// Merge records two equal tiles combining at one cell. Survivor is the tile
// that already occupied At and now holds the doubled value; Consumed slid in
// from behind and is no longer on the board.
type Merge struct {
	Survivor *Tile
	Consumed *Tile
	From     Position // Consumed tile's cell before the move
	At       Position
	Value    int // Value after the merge
}

// Result describes the outcome of resolving one move.
type Result struct {
	Moved       bool
	ScoreDelta  int
	Relocations []Relocation
	Merges      []Merge
	MaxValue    int // Largest value produced by a merge, 0 if none
}

// Resolve slides and merges every tile on b in direction dir, mutating the
// board in place. Consumed tiles are removed from the mapping; their Pos is
// set to the merge cell so the animator can slide them into it.
//
// Tiles are scanned starting from the wall they move toward, so a tile never
// passes one that has not been resolved yet. Each cell takes part in at most
// one merge per move.
func Resolve(b *Board, dir Direction) Result {
	var res Result
	if !dir.Valid() {
		return res
	}

	for _, t := range b.tiles {
		t.Merging = false
		t.Moved = false
	}

	for _, from := range scanOrder(b.size, dir) {
		t := b.Get(from)
		if t == nil {
			continue
		}

		dest, merge := farthest(b, t, dir)
		if dest == from {
			continue
		}

		b.Remove(from)
		t.Pos = dest
		t.Moved = true

		if merge {
			resident := b.Get(dest)
			resident.Merging = true
			t.Merging = true
			res.Merges = append(res.Merges, Merge{
				Survivor: resident,
				Consumed: t,
				From:     from,
				At:       dest,
			})
			continue
		}

		b.Place(t)
		res.Relocations = append(res.Relocations, Relocation{Tile: t, From: from, To: dest})
	}

	// Pending merges resolve only after the whole scan so that equality checks
	// above always see pre-merge values.
	for i := range res.Merges {
		m := &res.Merges[i]
		m.Survivor.Value += m.Consumed.Value
		m.Value = m.Survivor.Value
		res.ScoreDelta += m.Value
		res.MaxValue = max(res.MaxValue, m.Value)
	}

	res.Moved = len(res.Relocations) > 0 || len(res.Merges) > 0
	return res
}

// farthest walks from t's cell along dir and returns the last empty cell
// reached, or the cell of an equal, not-yet-merging tile to merge into.
func farthest(b *Board, t *Tile, dir Direction) (Position, bool) {
	prev := t.Pos
	for {
		next := prev.Step(dir)
		if !next.In(b.size) {
			return prev, false
		}
		other := b.Get(next)
		if other == nil {
			prev = next
			continue
		}
		if other.Value == t.Value && !other.Merging {
			return next, true
		}
		return prev, false
	}
}

// scanOrder lists every cell sorted so the cells nearest the destination wall
// come first. Ties keep row-major order.
func scanOrder(size int, dir Direction) []Position {
	cells := make([]Position, 0, size*size)
	for r := range size {
		for c := range size {
			cells = append(cells, Pos(r, c))
		}
	}

	var key func(p Position) int
	switch dir {
	case DirLeft:
		key = func(p Position) int { return p.Col }
	case DirRight:
		key = func(p Position) int { return -p.Col }
	case DirUp:
		key = func(p Position) int { return p.Row }
	default:
		key = func(p Position) int { return -p.Row }
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return key(cells[i]) < key(cells[j])
	})
	return cells
}
