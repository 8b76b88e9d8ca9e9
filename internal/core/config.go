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

// FrameMillis returns the elapsed milliseconds represented by one tick.
func (c RuntimeConfig) FrameMillis() int {
	if c.TickRate <= 0 {
		return 1000 / 60
	}
	return 1000 / c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int     // Current score
	Level      int     // Level reached, as shown to the player
	Accuracy   float64 // Hits per shot in [0, 1]
	GameOver   bool    // Whether the game has ended
	Paused     bool    // Whether the game is paused
	BackToMenu bool    // Game-over delay elapsed; the shell should leave the game
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for the history table.
type RunSummary struct {
	Score      int
	Level      int
	Accuracy   float64
	ShotsTaken int
	ShotsHit   int
	Seed       int64
	Practice   bool
	Ticks      uint64
}
