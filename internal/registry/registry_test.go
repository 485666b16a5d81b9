package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/boat-runner/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                          { return g.id }
func (g *stubGame) Title() string                                       { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) error                      { return nil }
func (g *stubGame) Step(time.Duration, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Resize(int, int)                                     {}
func (g *stubGame) Render(*core.Screen)                                 {}
func (g *stubGame) Status() core.Status                                 { return core.Status{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists() should report the registered game")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = info.Title == "STUB-A"
		}
	}
	if !found {
		t.Error("List() should include the game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
}
