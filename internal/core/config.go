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

// TickClock hands out per-tick durations in whole milliseconds.
// The rounding remainder carries over, so TickRate ticks always add up
// to exactly one second.
type TickClock struct {
	rate int
	rem  int
}

// TickClock returns a clock for the configured tick rate (60 when unset).
func (c RuntimeConfig) TickClock() *TickClock {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{rate: rate}
}

// Next returns the duration of the next tick in milliseconds.
func (t *TickClock) Next() int {
	total := 1000 + t.rem
	t.rem = total % t.rate
	return total / t.rate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// LinesCleared is the number of rows removed during this tick.
	LinesCleared int
}
