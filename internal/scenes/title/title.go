// Package title implements the title scene shown at startup and after every
// game: the logo, the best score and the top results.
package title

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecoris/internal/config"
	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/registry"
	"github.com/vovakirdan/ecoris/internal/storage"
)

// ID is the scene identifier restart returns to.
const ID = "Title"

const topLimit = 5

var logo = []string{
	"███ ███ ███ ██  █ ███",
	"█   █   █ █ █ █ █ █  ",
	"██  █   █ █ ██  █ ███",
	"█   █   █ █ █ █ █   █",
	"███ ███ ███ █ █ █ ███",
}

func init() {
	registry.Register(ID, New)
}

// Scene is the title screen.
type Scene struct {
	cfg    config.Config
	scores registry.ScoreSource
	logger *log.Logger

	best  int
	top   []storage.Result
	next  string
	blink float64
	state core.GameState
}

// New creates the title scene.
func New(deps registry.Deps) registry.Scene {
	return &Scene{
		cfg:    deps.Config,
		scores: deps.Scores,
		logger: deps.Logger,
	}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return ID }

// Title returns the display name.
func (s *Scene) Title() string { return "Title" }

// Reset reloads the scores. Storage errors are logged and leave the lists empty.
func (s *Scene) Reset(core.RuntimeConfig) error {
	s.best = 0
	s.top = nil
	s.next = ""
	s.blink = 0
	s.state = core.GameState{Phase: "title"}

	if s.scores == nil {
		return nil
	}

	best, err := s.scores.HighScore()
	if err != nil {
		s.warn("cannot load high score", err)
	} else {
		s.best = best
	}

	top, err := s.scores.TopResults(topLimit)
	if err != nil {
		s.warn("cannot load top results", err)
	} else {
		s.top = top
	}
	return nil
}

func (s *Scene) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "err", err)
	}
}

// Step loads the play scene on confirm. The request is reported once.
func (s *Scene) Step(in core.InputFrame, dt float64) core.StepResult {
	s.blink += dt

	result := core.StepResult{State: s.state}
	if in.Has(core.ActionConfirm) && s.next == "" {
		s.next = s.cfg.Scenes.Play
		result.NextScene = s.next
	}
	return result
}

// State returns the scene state.
func (s *Scene) State() core.GameState {
	return s.state
}

// Render draws the logo, the scores and the start prompt.
func (s *Scene) Render(dst *core.Screen) {
	y := 2
	for i, line := range logo {
		dst.DrawTextCentered(y+i, line, core.PieceColors[i%len(core.PieceColors)])
	}
	y += len(logo) + 1

	dst.DrawTextCentered(y, "a falling-block game in three dimensions", core.ColorGray)
	y += 2

	dst.DrawTextCentered(y, fmt.Sprintf("BEST  %d", s.best), core.ColorBrightYellow)
	y += 2

	if len(s.top) > 0 {
		dst.DrawTextCentered(y, "TOP SCORES", core.ColorWhite)
		y++
		for i, r := range s.top {
			line := fmt.Sprintf("%d. %7d  %-22s", i+1, r.Score, r.Title)
			dst.DrawTextCentered(y+i, line, core.ColorGray)
		}
		y += len(s.top) + 1
	}

	// Prompt blinks at 1 Hz.
	if int(s.blink*2)%2 == 0 {
		dst.DrawTextCentered(y, "Press Enter to start", core.ColorBrightGreen)
	}
}
