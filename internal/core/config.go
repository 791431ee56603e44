package core

// RuntimeConfig is passed to a game when it is (re)started by a front-end.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Front-end frames per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each frame.
type GameState struct {
	Score    int
	Length   int
	GameOver bool
	Won      bool // Board filled; implies GameOver
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	Moved bool // Whether the simulation advanced during this frame
}
