package mode

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// recorder implements every collaborator interface and records the calls.
type recorder struct {
	spawns      int
	texts       []string
	image       bool
	imageShows  int
	timesUp     bool
	timesUpHits int
	hud         bool
	results     []int
	gameOvers   []int
	scenes      []string
}

func (r *recorder) SpawnRandom() { r.spawns++ }
func (r *recorder) SetText(text string) { r.texts = append(r.texts, text) }
func (r *recorder) SetEnabled(enabled bool) { r.hud = enabled }
func (r *recorder) LoadScene(id string) { r.scenes = append(r.scenes, id) }

func (r *recorder) ShowImage(show bool) {
	r.image = show
	if show {
		r.imageShows++
	}
}

func (r *recorder) Show(show bool) {
	r.timesUp = show
	if show {
		r.timesUpHits++
	}
}

type resultFunc func(score int)

func (f resultFunc) ShowResult(score int) { f(score) }

type fakeModule struct {
	name     string
	enabled  bool
	disables int
}

func (m *fakeModule) Name() string { return m.name }

func (m *fakeModule) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		m.disables++
	}
}

type fixture struct {
	rec     *recorder
	modules []*fakeModule
	ctrl    *Controller
}

func newFixture(cfg Config) (*fixture, error) {
	rec := &recorder{}
	f := &fixture{rec: rec}

	collab := Collaborators{
		Spawner:    rec,
		Countdown:  rec,
		TimesUp:    rec,
		InfoViewer: rec,
		Result:     resultFunc(func(score int) { rec.results = append(rec.results, score) }),
		GameOver:   resultFunc(func(score int) { rec.gameOvers = append(rec.gameOvers, score) }),
		Scenes:     rec,
	}
	for _, name := range []string{"CameraController", "BlockEntity", "KeyAction"} {
		m := &fakeModule{name: name, enabled: true}
		f.modules = append(f.modules, m)
		collab.Modules = append(collab.Modules, m)
	}

	ids := 0
	ctrl, err := NewController(cfg, collab,
		WithLogger(log.New(io.Discard)),
		WithSessionIDs(func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		}),
	)
	if err != nil {
		return nil, err
	}
	f.ctrl = ctrl
	return f, nil
}

// playing returns a fixture whose countdown has completed.
func playing(cfg Config) (*fixture, error) {
	f, err := newFixture(cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cfg.CountdownSteps; i++ {
		f.ctrl.Tick(cfg.StepSeconds)
	}
	if f.ctrl.Phase() != PhasePlaying {
		return nil, fmt.Errorf("expected playing after countdown, got %s", f.ctrl.Phase())
	}
	return f, nil
}
