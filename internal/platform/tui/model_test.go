package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecoris/internal/config"
	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/registry"
	"github.com/vovakirdan/ecoris/internal/storage"

	_ "github.com/vovakirdan/ecoris/internal/scenes/play"
	_ "github.com/vovakirdan/ecoris/internal/scenes/title"
)

func shortGame() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timing.StepSeconds = 0.1
	cfg.Timing.PlaySeconds = 0.2
	cfg.Timing.TimesUpSeconds = 0.1
	cfg.Timing.GoSeconds = 0.1
	cfg.Board.FallInterval = 1000
	return cfg
}

func newTestModel(t *testing.T, start string) (Model, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return newModelWithStore(t, store, start), store
}

func newModelWithStore(t *testing.T, store *storage.Store, start string) Model {
	t.Helper()

	m, err := NewModel(Options{
		Deps: registry.Deps{
			Config: shortGame(),
			Scores: store,
			Logger: log.New(io.Discard),
		},
		Store:      store,
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		StartScene: start,
		Difficulty: "normal",
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelStartsOnTitle(t *testing.T) {
	m, _ := newTestModel(t, "")
	if m.Scene().ID() != "Title" {
		t.Errorf("start scene = %q, want Title", m.Scene().ID())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	if m.Scene().ID() != "Main" {
		t.Errorf("scene after confirm = %q, want Main", m.Scene().ID())
	}
}

func TestModelUnknownScene(t *testing.T) {
	_, err := NewModel(Options{
		Deps:       registry.Deps{Config: config.DefaultConfig(), Logger: log.New(io.Discard)},
		Runtime:    core.DefaultConfig(),
		StartScene: "Nowhere",
	})
	if err == nil {
		t.Error("expected error for an unknown start scene")
	}
}

func TestModelRejectsUnknownConfiguredScenes(t *testing.T) {
	tests := []struct {
		name  string
		title string
		play  string
	}{
		{"title", "Lobby", "Main"},
		{"play", "Title", "Arena"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Scenes.Title = tt.title
			cfg.Scenes.Play = tt.play
			_, err := NewModel(Options{
				Deps:       registry.Deps{Config: cfg, Logger: log.New(io.Discard)},
				Runtime:    core.DefaultConfig(),
				StartScene: "Main",
			})
			if err == nil {
				t.Errorf("expected error for scenes %q/%q", tt.title, tt.play)
			}
		})
	}
}

func TestModelKeepsRunningWhenStorageFails(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	m := newModelWithStore(t, store, "Main")
	firstSession := m.Scene().State().SessionID

	now := time.Now()
	for i := 0; i < 50 && !m.Scene().State().Finished; i++ {
		now = now.Add(100 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}
	if !m.Scene().State().Finished {
		t.Fatalf("game did not finish, state = %+v", m.Scene().State())
	}
	for i := 0; i < 3; i++ {
		now = now.Add(100 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}
	if m.Err() != nil || m.View() == "" {
		t.Fatalf("host stopped after a failed save: err = %v", m.Err())
	}

	for _, want := range []string{"Title", "Main"} {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		now = now.Add(100 * time.Millisecond)
		m = update(t, m, TickMsg(now))
		if m.Scene().ID() != want {
			t.Fatalf("scene after confirm = %q, want %q", m.Scene().ID(), want)
		}
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, want nil", m.Err())
	}
	if m.Scene().State().SessionID == firstSession {
		t.Error("restart should build a fresh session")
	}
}

func TestModelSavesResultOnceAndRestarts(t *testing.T) {
	m, store := newTestModel(t, "Main")
	firstSession := m.Scene().State().SessionID

	now := time.Now()
	finished := false
	for i := 0; i < 50 && !finished; i++ {
		now = now.Add(100 * time.Millisecond)
		m = update(t, m, TickMsg(now))
		finished = m.Scene().State().Finished
	}
	if !finished {
		t.Fatalf("game did not finish, state = %+v", m.Scene().State())
	}

	for i := 0; i < 3; i++ {
		now = now.Add(100 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("saved %d results, want exactly 1", len(results))
	}
	if results[0].SessionID != firstSession || results[0].Outcome != core.OutcomeTimesUp {
		t.Errorf("saved result = %+v", results[0])
	}
	if results[0].Title != "Seedling" || results[0].Difficulty != "normal" {
		t.Errorf("saved result = %+v", results[0])
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	now = now.Add(100 * time.Millisecond)
	m = update(t, m, TickMsg(now))
	if m.Scene().ID() != "Title" {
		t.Fatalf("scene after confirm = %q, want Title", m.Scene().ID())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	now = now.Add(100 * time.Millisecond)
	m = update(t, m, TickMsg(now))
	if m.Scene().ID() != "Main" {
		t.Fatalf("scene after second confirm = %q, want Main", m.Scene().ID())
	}
	st := m.Scene().State()
	if st.SessionID == firstSession || st.Phase != "counting_down" || st.Score != 0 {
		t.Errorf("restart should build a fresh session, got %+v", st)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, "")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Now()
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first frame", time.Time{}, base, 1.0 / 60},
		{"normal", base, base.Add(20 * time.Millisecond), 0.02},
		{"clamped", base, base.Add(3 * time.Second), maxFrameDelta},
		{"backwards", base, base.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDelta(tt.prev, tt.now, 60)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("frameDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
