package game

import (
	"fmt"
	"sort"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Board maps grid positions to tiles and tracks the tiles still in motion.
// Every tile in the mapping has Pos equal to its key.
type Board struct {
	size   int
	tiles  map[Position]*Tile
	moving map[uint64]*Tile
	nextID uint64
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	if size < 2 {
		size = DefaultSize
	}
	return &Board{
		size:   size,
		tiles:  make(map[Position]*Tile, size*size),
		moving: make(map[uint64]*Tile),
	}
}

// NewBoardFromValues builds a board from a square matrix of values, 0 meaning
// empty. Pixel coordinates are left at zero; callers snap them as needed.
func NewBoardFromValues(values [][]int) *Board {
	b := NewBoard(len(values))
	for r, row := range values {
		for c, v := range row {
			if v != 0 {
				b.Place(b.NewTile(v, Pos(r, c)))
			}
		}
	}
	return b
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// NewTile allocates a tile with a fresh ID. It is not placed on the board.
func (b *Board) NewTile(value int, pos Position) *Tile {
	b.nextID++
	return &Tile{ID: b.nextID, Value: value, Pos: pos}
}

// Get returns the tile at pos, or nil if the cell is empty.
func (b *Board) Get(pos Position) *Tile {
	return b.tiles[pos]
}

// Place inserts t at t.Pos. Placing onto an occupied cell or outside the grid
// is a caller bug and panics.
func (b *Board) Place(t *Tile) {
	if !t.Pos.In(b.size) {
		panic(fmt.Sprintf("game: place %s outside %dx%d board", t.Pos, b.size, b.size))
	}
	if other, ok := b.tiles[t.Pos]; ok && other != t {
		panic(fmt.Sprintf("game: place %s: cell already holds tile %d", t.Pos, other.ID))
	}
	b.tiles[t.Pos] = t
}

// Remove deletes the occupant of pos if present.
func (b *Board) Remove(pos Position) {
	delete(b.tiles, pos)
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return len(b.tiles) >= b.size*b.size
}

// EmptyPositions returns all unoccupied cells in row-major order.
func (b *Board) EmptyPositions() []Position {
	empty := make([]Position, 0, b.size*b.size-len(b.tiles))
	for r := range b.size {
		for c := range b.size {
			p := Pos(r, c)
			if _, ok := b.tiles[p]; !ok {
				empty = append(empty, p)
			}
		}
	}
	return empty
}

// Tiles returns all tiles on the board in row-major order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, 0, len(b.tiles))
	for r := range b.size {
		for c := range b.size {
			if t, ok := b.tiles[Pos(r, c)]; ok {
				out = append(out, t)
			}
		}
	}
	return out
}

// AddToMoving marks t as animating.
func (b *Board) AddToMoving(t *Tile) {
	b.moving[t.ID] = t
}

// IsMoving reports whether t is in the moving set.
func (b *Board) IsMoving(t *Tile) bool {
	_, ok := b.moving[t.ID]
	return ok
}

// RemoveFromMoving drops t from the moving set.
func (b *Board) RemoveFromMoving(t *Tile) {
	delete(b.moving, t.ID)
}

// Moving returns the animating tiles ordered by ID.
func (b *Board) Moving() []*Tile {
	out := make([]*Tile, 0, len(b.moving))
	for _, t := range b.moving {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MovingCount returns the number of animating tiles.
func (b *Board) MovingCount() int {
	return len(b.moving)
}

// ClearMoving empties the moving set.
func (b *Board) ClearMoving() {
	clear(b.moving)
}

// HasAdjacentEqual reports whether any two orthogonal neighbours share a value.
// Only right and down neighbours are checked; adjacency is symmetric.
func (b *Board) HasAdjacentEqual() bool {
	for p, t := range b.tiles {
		for _, n := range []Position{Pos(p.Row, p.Col+1), Pos(p.Row+1, p.Col)} {
			if o, ok := b.tiles[n]; ok && o.Value == t.Value {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any move is possible.
func (b *Board) CanMove() bool {
	return !b.Full() || b.HasAdjacentEqual()
}

// MaxValue returns the highest tile value on the board.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, t := range b.tiles {
		maxVal = max(maxVal, t.Value)
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	sum := 0
	for _, t := range b.tiles {
		sum += t.Value
	}
	return sum
}

// Values returns the board as a matrix of values, 0 for empty cells.
func (b *Board) Values() [][]int {
	out := make([][]int, b.size)
	for r := range out {
		out[r] = make([]int, b.size)
		for c := range out[r] {
			if t, ok := b.tiles[Pos(r, c)]; ok {
				out[r][c] = t.Value
			}
		}
	}
	return out
}
