package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/games/boatrunner"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runes("a"), core.ActionSteerLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionSteerLeft, false},
		{"d", runes("d"), core.ActionSteerRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionSteerRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"r", runes("r"), core.ActionReset, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%s, %v), expected (%s, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestSteeringHold(t *testing.T) {
	var s steering
	t0 := time.Unix(1000, 0)

	s.press(core.ActionSteerLeft, t0)

	var f core.InputFrame
	s.apply(&f, t0.Add(steerHold/2))
	if !f.Has(core.ActionSteerLeft) {
		t.Error("steering should be held inside the hold window")
	}

	s.press(core.ActionSteerRight, t0.Add(steerHold/2))
	f.Clear()
	s.apply(&f, t0.Add(steerHold))
	if f.Has(core.ActionSteerLeft) || !f.Has(core.ActionSteerRight) {
		t.Errorf("opposite press should switch direction, mask=%08b", f.Mask())
	}

	f.Clear()
	s.apply(&f, t0.Add(3*steerHold))
	if !f.Empty() {
		t.Errorf("steering should release after the hold, mask=%08b", f.Mask())
	}
}

func newTestModel(t *testing.T) (Model, *boatrunner.Game) {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}
	g := boatrunner.New()
	if err := g.ResetWith(rt, config.DefaultBoatRunnerConfig(), ""); err != nil {
		t.Fatal(err)
	}
	return NewModel(g, rt, nil), g
}

func TestModelStartsOnKeyAndTick(t *testing.T) {
	m, g := newTestModel(t)
	t0 := time.Unix(2000, 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if m.Status().Phase != core.PhaseWaiting {
		t.Fatal("key press alone must not advance the game")
	}

	next, cmd := m.Update(TickMsg(t0))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Status().Phase != core.PhasePlaying {
		t.Errorf("Phase = %s, expected playing after the first tick", m.Status().Phase)
	}
	if !m.pending.Empty() {
		t.Error("start should be consumed by the tick")
	}

	// 50ms later: three more ticks at 60Hz.
	next, _ = m.Update(TickMsg(t0.Add(50 * time.Millisecond)))
	m = next.(Model)
	if got := len(g.Recording().Inputs); got != 4 {
		t.Errorf("recorded %d ticks, expected 4", got)
	}
}

func TestModelSteersWhileHeld(t *testing.T) {
	m, g := newTestModel(t)
	t0 := time.Now()

	m.pending.Set(core.ActionStart)
	next, _ := m.Update(TickMsg(t0))
	m = next.(Model)

	next, _ = m.handleKey(runes("a"), t0)
	m = next.(Model)
	next, _ = m.Update(TickMsg(t0.Add(17 * time.Millisecond)))
	m = next.(Model)

	if x := g.Snapshot().Boat.LateralPosition; x <= 0 {
		t.Errorf("boat x = %g, expected it to move left (+x)", x)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "BOAT RUNNER") {
		t.Error("title sign should be visible before the first start")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "rock", core.ColorRock)
	s.DrawText(0, 1, "sea")

	out := RenderScreen(s)
	if !strings.Contains(out, "rock") || !strings.Contains(out, "sea") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func savedReplay(t *testing.T) (*storage.Store, int64) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	_, g := newTestModel(t)
	step := time.Second / 60
	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(step, start)
	for i := 0; i < 100; i++ {
		g.Step(step, core.NewInputFrame())
	}

	id, err := SaveRecording(store, g, "tester", nil)
	if err != nil || id == 0 {
		t.Fatalf("SaveRecording() = (%d, %v)", id, err)
	}
	return store, id
}

func TestVerifyReplay(t *testing.T) {
	store, id := savedReplay(t)

	if msg := VerifyReplay(store, id); !strings.Contains(msg, "verified") {
		t.Errorf("VerifyReplay() = %q, expected verified", msg)
	}
	if msg := VerifyReplay(store, id+1); !strings.Contains(msg, "not found") {
		t.Errorf("VerifyReplay() = %q for a missing replay", msg)
	}
}

func TestReplaysModel(t *testing.T) {
	store, id := savedReplay(t)

	m := NewReplaysModel(store, 120, 30)
	view := m.View()
	if !strings.Contains(view, "REPLAYS") || !strings.Contains(view, "tester") {
		t.Errorf("view missing title or player:\n%s", view)
	}
	if !strings.Contains(view, "1 replays, 101 ticks recorded") {
		t.Errorf("footer should count replays and ticks:\n%s", view)
	}
	if strings.Contains(view, "best distance") {
		t.Errorf("footer must not rank sessions by distance:\n%s", view)
	}

	next, _ := m.Update(runes("x"))
	m = next.(ReplaysModel)
	if len(m.replays) != 0 {
		t.Errorf("replays = %d after delete, expected 0", len(m.replays))
	}
	if _, err := store.LoadReplay(id); err == nil {
		t.Error("replay should be deleted from the store")
	}
	if !strings.Contains(m.View(), "No replays") {
		t.Error("empty browser should show the placeholder")
	}
}
