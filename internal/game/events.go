package game

// EventTurnEnded is emitted once a move has fully settled and the next tile
// has spawned. GameOver is set on the turn that left no legal move.
type EventTurnEnded struct {
	Score    int
	MaxTile  int
	Moves    int
	GameOver bool
}

func (EventTurnEnded) EventName() string { return "turn_ended" }

// EventWon is emitted the first time the winning tile appears in a game.
type EventWon struct {
	Score int
	Value int
}

func (EventWon) EventName() string { return "won" }

// EventBestScore is emitted when the best score increases.
type EventBestScore struct {
	Best int
}

func (EventBestScore) EventName() string { return "best_score" }
