// Package play implements the main scene: a timed game in the 3D well with
// its countdown, HUD and result screens.
package play

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecoris/internal/award"
	"github.com/vovakirdan/ecoris/internal/block"
	"github.com/vovakirdan/ecoris/internal/config"
	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/mode"
	"github.com/vovakirdan/ecoris/internal/registry"
)

// ID is the scene identifier the title screen loads.
const ID = "Main"

func init() {
	registry.Register(ID, New)
}

// Scene wires the mode controller, the block entity and the canvases.
type Scene struct {
	cfg    config.Config
	logger *log.Logger
	opts   []mode.Option

	entity *block.Entity
	ctrl   *mode.Controller
	keys   *keyAction
	camera *cameraController
	awards award.Table

	countdown countdownCanvas
	timesUp   banner
	hud       hud
	result    resultCanvas
	gameOver  resultCanvas
	scenes    sceneRequest

	state core.GameState
}

// New creates the play scene. It is not playable until Reset.
func New(deps registry.Deps) registry.Scene {
	return &Scene{
		cfg:    deps.Config,
		logger: deps.Logger,
	}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return ID }

// Title returns the display name.
func (s *Scene) Title() string { return "Ecoris" }

// Reset builds a fresh well and session.
func (s *Scene) Reset(rc core.RuntimeConfig) error {
	b := s.cfg.Board
	s.entity = block.NewEntity(block.Options{
		Width:        b.Width,
		Depth:        b.Depth,
		Height:       b.Height,
		FallInterval: b.FallInterval,
		Seed:         rc.Seed,
	})
	s.keys = newKeyAction(s.entity, b.FallInterval, b.SoftDropInterval)
	s.camera = newCameraController()
	s.awards = award.NewTable(s.cfg.Awards)

	s.countdown = countdownCanvas{}
	s.timesUp = banner{}
	s.hud = hud{}
	s.result = resultCanvas{awards: s.awards}
	s.gameOver = resultCanvas{awards: s.awards}
	s.scenes = sceneRequest{}

	opts := append([]mode.Option{mode.WithLogger(s.logger)}, s.opts...)
	ctrl, err := mode.NewController(s.cfg.Mode(), mode.Collaborators{
		Spawner:    s.entity,
		Countdown:  &s.countdown,
		TimesUp:    &s.timesUp,
		InfoViewer: &s.hud,
		Result:     &s.result,
		GameOver:   &s.gameOver,
		Scenes:     &s.scenes,
		Modules:    []mode.Module{s.entity, s.keys, s.camera},
	}, opts...)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	s.ctrl = ctrl

	s.entity.OnClear(ctrl.RecordClear)
	s.entity.OnOverflow(ctrl.SignalOverflow)

	s.state = s.snapshot()
	return nil
}

// Step runs one frame: input first, then the game clock, then gravity.
// The clock runs before gravity so nothing falls once time is up.
func (s *Scene) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionConfirm) {
		s.ctrl.Confirm()
	}

	s.camera.Apply(in)
	s.keys.Apply(in, s.camera.Yaw(), dt)
	s.ctrl.Tick(dt)
	s.entity.Update(dt)

	s.state = s.snapshot()
	return core.StepResult{
		State:     s.state,
		NextScene: s.scenes.take(),
	}
}

// State returns the state as of the last step.
func (s *Scene) State() core.GameState {
	return s.state
}

func (s *Scene) snapshot() core.GameState {
	sess := s.ctrl.Session()
	st := core.GameState{
		SessionID: sess.ID,
		Phase:     sess.Phase.String(),
		Score:     sess.Score,
		Lines:     sess.LinesCleared,
		Finished:  s.ctrl.Finished(),
	}

	switch sess.Phase {
	case mode.PhaseShowingResult:
		st.Outcome = core.OutcomeTimesUp
	case mode.PhaseGameOver:
		st.Outcome = core.OutcomeGameOver
	}
	if st.Finished {
		st.Title = s.awards.Title(sess.Score)
	}
	return st
}
