package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boat-runner/internal/core"
)

// steerHold is how long one steering key press keeps steering active.
// Terminals only report presses, so holding a key is seen as the
// auto-repeat stream; each repeat extends the hold.
const steerHold = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionSteerLeft, false
	case "d", "right":
		return core.ActionSteerRight, false
	case " ", "enter":
		return core.ActionStart, false
	case "r":
		return core.ActionReset, false
	}

	return core.ActionNone, false
}

// steering turns discrete steering key presses into a held direction.
type steering struct {
	dir   core.Action // ActionSteerLeft, ActionSteerRight or ActionNone
	until time.Time
}

// press starts or extends steering in one direction. Pressing the other
// direction switches immediately.
func (s *steering) press(dir core.Action, now time.Time) {
	s.dir = dir
	s.until = now.Add(steerHold)
}

// apply sets the held direction on the frame if it is still active.
func (s *steering) apply(f *core.InputFrame, now time.Time) {
	if s.dir == core.ActionNone {
		return
	}
	if !now.Before(s.until) {
		s.dir = core.ActionNone
		return
	}
	f.Set(s.dir)
}
