// Package mode implements the game-mode state machine: countdown, timed play,
// "Time's up" display and the result screens.
//
// The Controller is driven by the host loop through Tick and a few discrete
// signals. It owns the Session; collaborators only receive one-shot commands.
//
//	CountingDown (3, 2, 1, Go)
//	    |
//	Playing ----------------+
//	    | timer <= 0        | board overflow
//	TimesUp (2s)            |
//	    |                   |
//	ShowingResult        GameOver
//	    |                   |
//	    +---- confirm ------+--> host loads the title scene
package mode

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Controller owns the game phase and the play timer.
// It is not safe for concurrent use; the host loop is its only caller.
type Controller struct {
	cfg     Config
	collab  Collaborators
	logger  *log.Logger
	newID   func() string
	session Session

	phaseTimer       float64 // seconds spent in the current countdown step or times-up display
	goTimer          float64 // seconds left on the "Go" image, 0 when hidden
	modulesDisabled  bool
	restartRequested bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSessionIDs overrides session ID generation.
func WithSessionIDs(next func() string) Option {
	return func(c *Controller) {
		if next != nil {
			c.newID = next
		}
	}
}

// NewController validates the configuration and collaborators and starts a
// fresh session at the beginning of the countdown.
func NewController(cfg Config, collab Collaborators, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := collab.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		collab: collab,
		logger: log.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.session = newSession(cfg, c.newID())
	c.collab.Countdown.SetText(strconv.Itoa(c.session.Countdown))
	c.logger.Debug("session created", "session", c.session.ID, "phase", c.session.Phase)

	return c, nil
}

// Phase returns the active phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Finished reports whether the session reached a result screen.
func (c *Controller) Finished() bool {
	return c.session.Phase.Terminal()
}

// RestartRequested reports whether the title scene has been requested.
func (c *Controller) RestartRequested() bool {
	return c.restartRequested
}

// Tick advances the machine by delta seconds. Negative deltas count as zero.
func (c *Controller) Tick(delta float64) {
	if delta < 0 {
		delta = 0
	}

	switch c.session.Phase {
	case PhaseCountingDown:
		c.tickCountdown(delta)
	case PhasePlaying:
		c.tickPlaying(delta)
	case PhaseTimesUp:
		c.tickTimesUp(delta)
	}
}

// SignalOverflow ends the game immediately when the board overflows.
// Outside Playing the signal is ignored.
func (c *Controller) SignalOverflow() {
	if c.session.Phase != PhasePlaying {
		return
	}

	c.setPhase(PhaseGameOver)
	c.finishGame()
	c.collab.GameOver.ShowResult(c.session.Score)
}

// Confirm handles the user's confirmation on a result screen by asking the
// host for the title scene. Only the first confirmation counts.
func (c *Controller) Confirm() {
	if !c.session.Phase.Terminal() || c.restartRequested {
		return
	}

	c.restartRequested = true
	c.logger.Debug("restart requested", "session", c.session.ID, "scene", c.cfg.TitleScene)
	c.collab.Scenes.LoadScene(c.cfg.TitleScene)
}

// RecordClear credits layers cleared by a single piece. Ignored outside Playing.
func (c *Controller) RecordClear(layers int) {
	if c.session.Phase != PhasePlaying || layers <= 0 {
		return
	}

	c.session.LinesCleared += layers
	c.session.Score += c.cfg.Points(layers)
}

func (c *Controller) tickCountdown(delta float64) {
	c.phaseTimer += delta
	if c.phaseTimer < c.cfg.StepSeconds {
		return
	}

	// One display step per tick, so a long frame cannot skip a number.
	c.phaseTimer -= c.cfg.StepSeconds
	c.session.Countdown--
	if c.session.Countdown > 0 {
		c.collab.Countdown.SetText(strconv.Itoa(c.session.Countdown))
		return
	}

	c.collab.Countdown.SetText("")
	c.collab.Countdown.ShowImage(true)
	c.goTimer = c.cfg.GoSeconds
	c.startPlay()
}

func (c *Controller) startPlay() {
	c.setPhase(PhasePlaying)
	c.phaseTimer = 0
	c.session.Score = 0
	c.session.LinesCleared = 0
	c.session.RemainingTime = c.cfg.PlaySeconds

	c.collab.InfoViewer.SetEnabled(true)
	c.collab.Spawner.SpawnRandom()
}

func (c *Controller) tickPlaying(delta float64) {
	if c.goTimer > 0 {
		c.goTimer -= delta
		if c.goTimer <= 0 {
			c.hideGo()
		}
	}

	c.session.RemainingTime -= delta
	if c.session.RemainingTime > 0 {
		return
	}

	c.session.RemainingTime = 0
	c.setPhase(PhaseTimesUp)
	c.phaseTimer = 0
	c.finishGame()
	c.collab.TimesUp.Show(true)
}

func (c *Controller) tickTimesUp(delta float64) {
	c.phaseTimer += delta
	if c.phaseTimer < c.cfg.TimesUpSeconds {
		return
	}

	c.collab.TimesUp.Show(false)
	c.setPhase(PhaseShowingResult)
	c.collab.Result.ShowResult(c.session.Score)
}

// finishGame stops everything that affects gameplay. Safe to call twice.
func (c *Controller) finishGame() {
	c.collab.InfoViewer.SetEnabled(false)
	if c.goTimer > 0 {
		c.hideGo()
	}

	if c.modulesDisabled {
		return
	}
	c.modulesDisabled = true
	for _, m := range c.collab.Modules {
		m.SetEnabled(false)
		c.logger.Debug("module disabled", "session", c.session.ID, "module", m.Name())
	}
}

func (c *Controller) hideGo() {
	c.goTimer = 0
	c.collab.Countdown.ShowImage(false)
}

func (c *Controller) setPhase(next Phase) {
	prev := c.session.Phase
	if !prev.CanTransitionTo(next) {
		panic(fmt.Sprintf("mode: illegal transition %s -> %s", prev, next))
	}

	c.session.Phase = next
	c.logger.Debug("phase transition",
		"session", c.session.ID,
		"from", prev,
		"to", next,
		"score", c.session.Score,
		"lines", c.session.LinesCleared,
		"remaining", c.session.RemainingTime,
	)
}
