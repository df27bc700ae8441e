package game

// State is the turn controller state.
type State int

const (
	StateIdle State = iota
	StateAnimating
	StateWon
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateWon:
		return "won"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// transitions lists the states reachable from each state. NewGame may move
// to idle from anywhere and is not listed.
var transitions = map[State][]State{
	StateIdle:      {StateAnimating, StateGameOver},
	StateAnimating: {StateIdle, StateWon},
	StateWon:       {StateIdle},
	StateGameOver:  nil,
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// transition moves to next if the table allows it. Illegal transitions are
// logged and ignored.
func (g *Game) transition(next State) {
	if !canTransition(g.state, next) {
		g.logger.Error("illegal state transition", "from", g.state, "to", next)
		return
	}
	g.state = next
}
