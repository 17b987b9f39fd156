package mode

import (
	"errors"
	"strings"
	"testing"
)

func TestNewControllerMissingCollaborators(t *testing.T) {
	_, err := NewController(DefaultConfig(), Collaborators{Modules: []Module{nil}})
	if err == nil {
		t.Fatal("expected error for missing collaborators")
	}

	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("errors.Is(err, ErrMissingCollaborator) = false for %v", err)
	}

	var missing *MissingCollaboratorError
	if !errors.As(err, &missing) {
		t.Fatalf("errors.As should find a MissingCollaboratorError in %v", err)
	}
	if missing.Name != "Spawner" {
		t.Errorf("first missing collaborator = %q, expected Spawner", missing.Name)
	}

	for _, name := range []string{"Spawner", "Countdown", "TimesUp", "InfoViewer", "Result", "GameOver", "Scenes", "Modules[0]"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should name %s", err.Error(), name)
		}
	}
}

func TestNewControllerInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlaySeconds = 0

	if _, err := newFixture(cfg); err == nil {
		t.Error("expected error for zero play duration")
	}
}

func TestNewControllerStartsCountdown(t *testing.T) {
	f, err := newFixture(DefaultConfig())
	if err != nil {
		t.Fatalf("newFixture() failed: %v", err)
	}

	s := f.ctrl.Session()
	if s.Phase != PhaseCountingDown {
		t.Errorf("Phase = %s, expected counting_down", s.Phase)
	}
	if s.Countdown != 3 || s.Score != 0 || s.RemainingTime != 180 {
		t.Errorf("fresh session = %+v", s)
	}
	if len(f.rec.texts) != 1 || f.rec.texts[0] != "3" {
		t.Errorf("countdown texts = %v, expected [3]", f.rec.texts)
	}
	if f.rec.spawns != 0 {
		t.Error("no block should spawn during the countdown")
	}
}

func TestCountdownDisplaysEveryStep(t *testing.T) {
	f, err := newFixture(DefaultConfig())
	if err != nil {
		t.Fatalf("newFixture() failed: %v", err)
	}

	// 60 FPS frames for just under three seconds
	for i := 0; i < 170; i++ {
		f.ctrl.Tick(1.0 / 60)
	}
	if f.ctrl.Phase() != PhaseCountingDown {
		t.Fatalf("Phase = %s before three seconds elapsed", f.ctrl.Phase())
	}

	for i := 0; i < 20 && f.ctrl.Phase() == PhaseCountingDown; i++ {
		f.ctrl.Tick(1.0 / 60)
	}
	if f.ctrl.Phase() != PhasePlaying {
		t.Fatalf("Phase = %s, expected playing after three seconds", f.ctrl.Phase())
	}

	expected := []string{"3", "2", "1", ""}
	if strings.Join(f.rec.texts, ",") != strings.Join(expected, ",") {
		t.Errorf("countdown texts = %q, expected %q", f.rec.texts, expected)
	}
	if !f.rec.image {
		t.Error("Go image should be shown when play starts")
	}
	if f.rec.spawns != 1 {
		t.Errorf("spawns = %d, expected 1", f.rec.spawns)
	}
	if !f.rec.hud {
		t.Error("HUD should be enabled when play starts")
	}
}

func TestCountdownCannotBeSkipped(t *testing.T) {
	f, err := newFixture(DefaultConfig())
	if err != nil {
		t.Fatalf("newFixture() failed: %v", err)
	}

	f.ctrl.Tick(100)
	if f.ctrl.Phase() != PhaseCountingDown {
		t.Fatalf("a single huge tick must not finish the countdown, phase = %s", f.ctrl.Phase())
	}
	f.ctrl.Tick(100)
	if f.ctrl.Phase() != PhaseCountingDown {
		t.Fatalf("two ticks must not finish the countdown, phase = %s", f.ctrl.Phase())
	}
	f.ctrl.Tick(100)
	if f.ctrl.Phase() != PhasePlaying {
		t.Fatalf("third step should start play, phase = %s", f.ctrl.Phase())
	}

	if got := strings.Join(f.rec.texts, ","); got != "3,2,1," {
		t.Errorf("countdown texts = %q", got)
	}
	if f.ctrl.Session().RemainingTime != 180 {
		t.Errorf("countdown time leaked into the play timer: %v", f.ctrl.Session().RemainingTime)
	}
}

func TestGoImageHiddenAfterOneSecond(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.Tick(0.5)
	if !f.rec.image {
		t.Error("Go image should still be visible after half a second")
	}
	f.ctrl.Tick(0.5)
	if f.rec.image {
		t.Error("Go image should be hidden after one second of play")
	}
}

func TestRemainingTimeDecreases(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	prev := f.ctrl.Session().RemainingTime
	for i := 0; i < 100; i++ {
		f.ctrl.Tick(0.25)
		now := f.ctrl.Session().RemainingTime
		if now >= prev {
			t.Fatalf("remaining time did not decrease: %v -> %v", prev, now)
		}
		prev = now
	}

	if f.ctrl.Phase() != PhasePlaying {
		t.Errorf("Phase = %s, expected playing", f.ctrl.Phase())
	}
}

func TestTimesUpOnLargeDelta(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.Tick(180.0)

	if f.ctrl.Phase() != PhaseTimesUp {
		t.Fatalf("Phase = %s, expected times_up on the same frame", f.ctrl.Phase())
	}
	if f.ctrl.Session().RemainingTime != 0 {
		t.Errorf("RemainingTime = %v, expected clamp to 0", f.ctrl.Session().RemainingTime)
	}
	if !f.rec.timesUp {
		t.Error("Time's up banner should be visible")
	}
	if f.rec.hud {
		t.Error("HUD should be disabled once time is up")
	}
	for _, m := range f.modules {
		if m.enabled || m.disables != 1 {
			t.Errorf("module %s: enabled=%v disables=%d", m.name, m.enabled, m.disables)
		}
	}
}

func TestTimesUpHappensOnce(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200; i++ {
		f.ctrl.Tick(1)
	}

	if f.rec.timesUpHits != 1 {
		t.Errorf("times-up banner shown %d times, expected 1", f.rec.timesUpHits)
	}
	if len(f.rec.results) != 1 {
		t.Errorf("result shown %d times, expected 1", len(f.rec.results))
	}
	for _, m := range f.modules {
		if m.disables != 1 {
			t.Errorf("module %s disabled %d times, expected 1", m.name, m.disables)
		}
	}
}

func TestTimesUpShowsResultAfterDelay(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.RecordClear(2)
	f.ctrl.Tick(180)

	f.ctrl.Tick(1.5)
	if f.ctrl.Phase() != PhaseTimesUp {
		t.Fatalf("Phase = %s, expected times_up before the delay elapsed", f.ctrl.Phase())
	}
	f.ctrl.Tick(0.5)
	if f.ctrl.Phase() != PhaseShowingResult {
		t.Fatalf("Phase = %s, expected showing_result", f.ctrl.Phase())
	}

	if f.rec.timesUp {
		t.Error("Time's up banner should be hidden on the result screen")
	}
	if len(f.rec.results) != 1 || f.rec.results[0] != 300 {
		t.Errorf("results = %v, expected [300]", f.rec.results)
	}
	if len(f.rec.gameOvers) != 0 {
		t.Errorf("game over presenter should not be used, got %v", f.rec.gameOvers)
	}
	if !f.ctrl.Finished() {
		t.Error("Finished() should be true on the result screen")
	}
}

func TestOverflowEndsGameImmediately(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.RecordClear(1)
	f.ctrl.Tick(10)
	f.ctrl.SignalOverflow()

	if f.ctrl.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %s, expected game_over", f.ctrl.Phase())
	}
	if f.rec.timesUpHits != 0 {
		t.Error("overflow must bypass the times-up banner")
	}
	if len(f.rec.gameOvers) != 1 || f.rec.gameOvers[0] != 100 {
		t.Errorf("game over results = %v, expected [100]", f.rec.gameOvers)
	}
	if len(f.rec.results) != 0 {
		t.Errorf("time-up result presenter should not be used, got %v", f.rec.results)
	}

	// Further ticks and signals change nothing
	f.ctrl.Tick(500)
	f.ctrl.SignalOverflow()
	if f.ctrl.Phase() != PhaseGameOver || len(f.rec.gameOvers) != 1 {
		t.Errorf("game over must be final, phase=%s results=%v", f.ctrl.Phase(), f.rec.gameOvers)
	}
	for _, m := range f.modules {
		if m.disables != 1 {
			t.Errorf("module %s disabled %d times, expected 1", m.name, m.disables)
		}
	}
}

func TestOverflowIgnoredOutsidePlaying(t *testing.T) {
	t.Run("counting down", func(t *testing.T) {
		f, err := newFixture(DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		f.ctrl.SignalOverflow()
		if f.ctrl.Phase() != PhaseCountingDown {
			t.Errorf("Phase = %s, expected counting_down", f.ctrl.Phase())
		}
		if len(f.rec.gameOvers) != 0 {
			t.Error("overflow during countdown must be ignored")
		}
	})

	t.Run("times up", func(t *testing.T) {
		f, err := playing(DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		f.ctrl.Tick(180)
		f.ctrl.SignalOverflow()
		if f.ctrl.Phase() != PhaseTimesUp {
			t.Errorf("Phase = %s, expected times_up", f.ctrl.Phase())
		}
	})

	t.Run("showing result", func(t *testing.T) {
		f, err := playing(DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		f.ctrl.Tick(180)
		f.ctrl.Tick(2)
		f.ctrl.SignalOverflow()
		if f.ctrl.Phase() != PhaseShowingResult {
			t.Errorf("Phase = %s, expected showing_result", f.ctrl.Phase())
		}
	})
}

func TestConfirmRequestsTitleOnce(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.Confirm()
	if f.ctrl.RestartRequested() || len(f.rec.scenes) != 0 {
		t.Fatal("confirm during play must be ignored")
	}

	f.ctrl.SignalOverflow()
	f.ctrl.Confirm()
	f.ctrl.Confirm()

	if !f.ctrl.RestartRequested() {
		t.Error("RestartRequested() should be true after confirm")
	}
	if len(f.rec.scenes) != 1 || f.rec.scenes[0] != "Title" {
		t.Errorf("scenes = %v, expected [Title]", f.rec.scenes)
	}
	if f.ctrl.Phase() != PhaseGameOver {
		t.Errorf("confirm must not change the phase, got %s", f.ctrl.Phase())
	}
}

func TestConfirmAfterTimesUp(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.Tick(180)
	f.ctrl.Confirm()
	if len(f.rec.scenes) != 0 {
		t.Error("confirm while the times-up banner is shown must be ignored")
	}

	f.ctrl.Tick(2)
	f.ctrl.Confirm()
	if len(f.rec.scenes) != 1 {
		t.Errorf("scenes = %v, expected one request", f.rec.scenes)
	}
}

func TestRecordClear(t *testing.T) {
	f, err := newFixture(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.RecordClear(4)
	if f.ctrl.Session().Score != 0 {
		t.Error("clears during the countdown must be ignored")
	}

	for i := 0; i < 3; i++ {
		f.ctrl.Tick(1)
	}

	f.ctrl.RecordClear(1)
	f.ctrl.RecordClear(4)
	f.ctrl.RecordClear(0)
	f.ctrl.RecordClear(-2)

	s := f.ctrl.Session()
	if s.Score != 900 {
		t.Errorf("Score = %d, expected 900", s.Score)
	}
	if s.LinesCleared != 5 {
		t.Errorf("LinesCleared = %d, expected 5", s.LinesCleared)
	}
}

func TestPoints(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		layers, expected int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{8, 1600},
	}

	for _, tc := range tests {
		if got := cfg.Points(tc.layers); got != tc.expected {
			t.Errorf("Points(%d) = %d, expected %d", tc.layers, got, tc.expected)
		}
	}
}

func TestFreshSessionPerController(t *testing.T) {
	first, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	first.ctrl.RecordClear(3)
	first.ctrl.Tick(50)

	second, err := newFixture(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := second.ctrl.Session()
	if s.Score != 0 || s.LinesCleared != 0 || s.RemainingTime != 180 || s.Phase != PhaseCountingDown {
		t.Errorf("new controller should start a fresh session, got %+v", s)
	}

	a, b := NewSession(DefaultConfig()), NewSession(DefaultConfig())
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("sessions should get distinct IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	f, err := playing(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.ctrl.Tick(-5)
	if f.ctrl.Session().RemainingTime != 180 {
		t.Errorf("RemainingTime = %v, negative delta must not add time", f.ctrl.Session().RemainingTime)
	}
}
