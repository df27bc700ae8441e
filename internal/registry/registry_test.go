package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type fakeGame struct {
	id    string
	reset int
}

func (f *fakeGame) ID() string { return f.id }
func (f *fakeGame) Title() string { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig) { f.reset++ }
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen) {}
func (f *fakeGame) Status() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake_b", func() Game { return &fakeGame{id: "fake_b"} })
	Register("fake_a", func() Game { return &fakeGame{id: "fake_a"} })

	if !Exists("fake_a") || Exists("fake_missing") {
		t.Fatal("Exists reported the wrong registrations")
	}

	g1, err := Create("fake_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("fake_a")
	if g1 == g2 {
		t.Error("Create should return a new instance every call")
	}
	if g1.Title() != "Fake fake_a" {
		t.Errorf("Title() = %q", g1.Title())
	}

	if _, err := Create("fake_missing"); err == nil {
		t.Error("Create of unknown ID should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "fake_a" || info.ID == "fake_b" {
			ids = append(ids, info.ID)
			if info.Title != "Fake "+info.ID {
				t.Errorf("List title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "fake_a" || ids[1] != "fake_b" {
		t.Errorf("List order = %v, want sorted by ID", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("fake_dup", func() Game { return &fakeGame{id: "fake_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("fake_dup", func() Game { return &fakeGame{id: "fake_dup"} })
}
