package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with these intents; the platform decides which keys produce them.
type Action uint8

const (
	ActionNone       Action = iota
	ActionSteerLeft         // A, Left arrow
	ActionSteerRight        // D, Right arrow
	ActionStart             // Space, Enter
	ActionReset             // R
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// bit returns the mask bit for an action. ActionNone has no bit.
func (a Action) bit() uint8 {
	if a == ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << (a - 1)
}

// InputFrame is the set of actions active during one simulation tick.
// It is a small bitmask so it can be copied freely and recorded compactly.
type InputFrame struct {
	mask uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputFrameFromMask rebuilds a frame from a recorded mask.
func InputFrameFromMask(mask uint8) InputFrame {
	return InputFrame{mask: mask}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	f.mask |= a.bit()
}

// Unset clears one action.
func (f *InputFrame) Unset(a Action) {
	f.mask &^= a.bit()
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.mask&b != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.mask == 0
}

// Mask returns the raw bitmask, used by the replay recorder.
func (f InputFrame) Mask() uint8 {
	return f.mask
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.mask = 0
}
