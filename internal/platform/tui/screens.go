package tui

// Screen identifies one view of the app. The set is closed; moving between
// screens goes through canSwitch.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenGame
	ScreenWon
	ScreenGameOver
	ScreenNameEntry
	ScreenLeaderboard
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenGame:
		return "game"
	case ScreenWon:
		return "won"
	case ScreenGameOver:
		return "gameover"
	case ScreenNameEntry:
		return "name_entry"
	case ScreenLeaderboard:
		return "leaderboard"
	}
	return "unknown"
}

// screenTransitions lists the screens reachable from each screen.
var screenTransitions = map[Screen][]Screen{
	ScreenStart:       {ScreenGame, ScreenLeaderboard},
	ScreenGame:        {ScreenWon, ScreenGameOver, ScreenStart},
	ScreenWon:         {ScreenGame, ScreenNameEntry, ScreenStart},
	ScreenGameOver:    {ScreenGame, ScreenNameEntry, ScreenStart},
	ScreenNameEntry:   {ScreenLeaderboard, ScreenStart},
	ScreenLeaderboard: {ScreenStart},
}

// canSwitch reports whether the app may move from one screen to another.
func canSwitch(from, to Screen) bool {
	for _, s := range screenTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
