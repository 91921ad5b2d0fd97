package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Platform ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Ticks survived in the current round
	GameOver bool     // Whether the round has ended
	Paused   bool     // Whether the game is paused
	Winner   PlayerID // Winner of a finished round, NoPlayer on draw
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
