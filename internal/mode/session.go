package mode

import "github.com/google/uuid"

// Session is the mutable state of one game, from countdown to result.
// A restart always builds a new Session; they are never reused.
type Session struct {
	ID            string
	Phase         Phase
	Countdown     int     // Number currently shown during the countdown
	Score         int     // Points obtained
	LinesCleared  int     // Layers removed from the well
	RemainingTime float64 // Seconds left on the play timer
}

// NewSession returns a fresh session positioned at the start of the countdown.
func NewSession(cfg Config) Session {
	return newSession(cfg, uuid.NewString())
}

func newSession(cfg Config, id string) Session {
	return Session{
		ID:            id,
		Phase:         PhaseCountingDown,
		Countdown:     cfg.CountdownSteps,
		RemainingTime: cfg.PlaySeconds,
	}
}
