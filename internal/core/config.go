package core

// RuntimeConfig is what the platform layer hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int // Terminal columns available to the game
	ScreenH  int // Terminal rows available to the game
	TickRate int // Steps per second
	// Seed drives tile spawning. The same seed and inputs replay the same
	// game, which is what `t2048 sim` and `--seed` rely on. 0 asks the
	// platform layer for a time-based seed.
	Seed int64
}

// DefaultConfig is a classic 80x24 terminal at 60 ticks with no fixed seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Moves    int
	Won      bool // Target tile reached; play may continue
	GameOver bool // No move can change the board
	Paused   bool // Paused by the player or by a too small screen
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
