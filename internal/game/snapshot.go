package game

// TileView is the render-facing view of one tile.
type TileView struct {
	ID      uint64
	Value   int
	Row     int
	Col     int
	X, Y    float64
	Merging bool
	Moved   bool
	Born    bool
	Moving  bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Score   int
	Best    int
	Moves   int
	State   string
	Board   [][]int
	MaxTile int
	Tiles   []TileView // Board tiles in row-major order, then consumed tiles still sliding
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Size:    g.board.Size(),
		Score:   g.score,
		Best:    g.best,
		Moves:   g.moves,
		State:   g.state.String(),
		Board:   g.board.Values(),
		MaxTile: g.board.MaxValue(),
		Tiles:   g.tileViews(),
	}
}

func (g *Game) tileViews() []TileView {
	var views []TileView
	for _, t := range g.board.Tiles() {
		views = append(views, g.view(t))
	}
	for _, t := range g.consumed() {
		views = append(views, g.view(t))
	}
	return views
}

func (g *Game) view(t *Tile) TileView {
	return TileView{
		ID:      t.ID,
		Value:   t.Value,
		Row:     t.Pos.Row,
		Col:     t.Pos.Col,
		X:       t.X,
		Y:       t.Y,
		Merging: t.Merging,
		Moved:   t.Moved,
		Born:    t.Born,
		Moving:  g.board.IsMoving(t),
	}
}

// consumed returns moving tiles that are no longer on the board, i.e. tiles
// sliding into a merge.
func (g *Game) consumed() []*Tile {
	var out []*Tile
	for _, t := range g.board.Moving() {
		if g.board.Get(t.Pos) != t {
			out = append(out, t)
		}
	}
	return out
}
