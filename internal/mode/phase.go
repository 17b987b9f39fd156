package mode

// Phase is one state of the game-mode state machine.
type Phase int

const (
	PhaseCountingDown Phase = iota // "3", "2", "1", "Go"
	PhasePlaying                   // timer running, blocks falling
	PhaseTimesUp                   // "Time's up" banner on screen
	PhaseShowingResult             // final score after the timer ran out
	PhaseGameOver                  // final score after the board overflowed
)

var phaseNames = [...]string{
	PhaseCountingDown:  "counting_down",
	PhasePlaying:       "playing",
	PhaseTimesUp:       "times_up",
	PhaseShowingResult: "showing_result",
	PhaseGameOver:      "game_over",
}

// String returns the stable name of the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

var transitions = map[Phase][]Phase{
	PhaseCountingDown: {PhasePlaying},
	PhasePlaying:      {PhaseTimesUp, PhaseGameOver},
	PhaseTimesUp:      {PhaseShowingResult},
}

// CanTransitionTo reports whether the machine may move from p to target.
// ShowingResult and GameOver are terminal: leaving them is the host's job.
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range transitions[p] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseShowingResult || p == PhaseGameOver
}
