package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.Status() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Best      int  // Best score across sessions
	Animating bool // A move is resolving; new moves are ignored
	Won       bool // Winning tile reached and not yet acknowledged
	GameOver  bool // No moves left
}

// Event is something that happened during a tick that the platform may react to.
// Events replace direct references between screens: the platform receives them
// from Step and routes them to whichever screen needs them.
type Event interface {
	EventName() string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
