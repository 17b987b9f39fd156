package mode

import "fmt"

// Config holds the timings and scoring used by the Controller.
type Config struct {
	CountdownSteps int     // Number of countdown displays before play ("3", "2", "1")
	StepSeconds    float64 // Duration of one countdown display
	PlaySeconds    float64 // Length of the play timer
	TimesUpSeconds float64 // How long "Time's up" stays on screen
	GoSeconds      float64 // How long the "Go" image stays once play started
	TitleScene     string  // Scene requested on restart

	// ScoreTable[n-1] is awarded for clearing n layers with one piece.
	ScoreTable []int
}

// DefaultConfig returns the classic timings: 3 second countdown, 180 second
// game and a 2 second "Time's up" display.
func DefaultConfig() Config {
	return Config{
		CountdownSteps: 3,
		StepSeconds:    1,
		PlaySeconds:    180,
		TimesUpSeconds: 2,
		GoSeconds:      1,
		TitleScene:     "Title",
		ScoreTable:     []int{100, 300, 500, 800},
	}
}

// Validate reports impossible configurations.
func (c Config) Validate() error {
	switch {
	case c.CountdownSteps < 1:
		return fmt.Errorf("mode: countdown steps must be positive, got %d", c.CountdownSteps)
	case c.StepSeconds <= 0:
		return fmt.Errorf("mode: countdown step must be positive, got %v", c.StepSeconds)
	case c.PlaySeconds <= 0:
		return fmt.Errorf("mode: play duration must be positive, got %v", c.PlaySeconds)
	case c.TimesUpSeconds < 0:
		return fmt.Errorf("mode: times-up delay must not be negative, got %v", c.TimesUpSeconds)
	case c.TitleScene == "":
		return fmt.Errorf("mode: title scene is required")
	case len(c.ScoreTable) == 0:
		return fmt.Errorf("mode: score table is empty")
	}
	return nil
}

// Points returns the score for clearing the given number of layers at once.
// Counts above the table scale the last entry.
func (c Config) Points(layers int) int {
	if layers <= 0 || len(c.ScoreTable) == 0 {
		return 0
	}
	n := len(c.ScoreTable)
	if layers <= n {
		return c.ScoreTable[layers-1]
	}
	return c.ScoreTable[n-1] * layers / n
}
