package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Enables debug-only actions
	StartAt  int   // Stage to start on; 0 means the first
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Stage    int  // Current stage number
	GameOver bool // Whether the game has ended, won or lost
	Won      bool // Whether the final stage was cleared
	Paused   bool // Whether the countdown is halted
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
