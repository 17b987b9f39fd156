package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
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

// Outcome describes how a finished session ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeTimesUp  Outcome = "times_up"
	OutcomeGameOver Outcome = "game_over"
)

// GameState represents the current state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type GameState struct {
	SessionID string  // Identifier of the running session, empty outside play
	Phase     string  // Human-readable phase name
	Score     int     // Current score
	Lines     int     // Layers cleared so far
	Title     string  // Title awarded for the final score
	Finished  bool    // Whether the session has produced a final result
	Outcome   Outcome // How the session ended, set once Finished
}

// StepResult is returned by Scene.Step() after each tick.
type StepResult struct {
	State GameState

	// NextScene is set when the scene asks the host to load another scene.
	NextScene string
}
