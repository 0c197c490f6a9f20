package core

// RuntimeConfig contains settings the platform hands to the game at startup.
type RuntimeConfig struct {
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for pipe placement; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score    int  // Current score
	Playing  bool // Whether the round is in progress
	GameOver bool // Whether the round has ended
}
