package registry

import (
	"testing"

	"github.com/vovakirdan/ecoris/internal/core"
)

type stubScene struct {
	id    string
	deps  Deps
	reset int
}

func (s *stubScene) ID() string { return s.id }
func (s *stubScene) Title() string { return "Stub " + s.id }
func (s *stubScene) Reset(core.RuntimeConfig) error { s.reset++; return nil }
func (s *stubScene) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(*core.Screen) {}
func (s *stubScene) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub_a", func(d Deps) Scene { return &stubScene{id: "test_stub_a", deps: d} })

	if !Exists("test_stub_a") {
		t.Fatal("registered scene should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered scene should not exist")
	}

	s, err := Create("test_stub_a", Deps{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "test_stub_a" {
		t.Errorf("ID() = %q", s.ID())
	}
	if s.(*stubScene).deps.Logger == nil {
		t.Error("Create should supply a default logger")
	}

	other, err := Create("test_stub_a", Deps{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if other == s {
		t.Error("Create should return a fresh instance every time")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_nope", Deps{}); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_stub_dup", func(Deps) Scene { return &stubScene{id: "test_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_stub_dup", func(Deps) Scene { return &stubScene{id: "test_stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("test_z", func(Deps) Scene { return &stubScene{id: "test_z"} })
	Register("test_b", func(Deps) Scene { return &stubScene{id: "test_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test_b" {
			found = true
			if info.Title != "Stub test_b" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("registered scene missing from List")
	}
}
