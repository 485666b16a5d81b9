package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionSteerLeft)
	f.Set(ActionReset)

	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionSteerLeft, true},
		{ActionSteerRight, false},
		{ActionStart, false},
		{ActionReset, true},
		{ActionQuit, false},
		{ActionNone, false},
	}
	for _, tc := range tests {
		if got := f.Has(tc.action); got != tc.expected {
			t.Errorf("Has(%s) = %v, expected %v", tc.action, got, tc.expected)
		}
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
}

func TestInputFrameMaskRoundTrip(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSteerRight)
	f.Set(ActionStart)

	g := InputFrameFromMask(f.Mask())
	if !g.Has(ActionSteerRight) || !g.Has(ActionStart) || g.Has(ActionSteerLeft) {
		t.Errorf("mask round trip lost actions: %08b", g.Mask())
	}
}

func TestInputFrameSetNoneIsNoop(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Empty() {
		t.Errorf("unknown actions should not set bits, mask=%08b", f.Mask())
	}
}

func TestActionString(t *testing.T) {
	if ActionSteerLeft.String() != "SteerLeft" {
		t.Errorf("String() = %q", ActionSteerLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q", Action(99).String())
	}
}

func TestInputFrameUnset(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSteerLeft)
	f.Set(ActionStart)

	f.Unset(ActionStart)
	f.Unset(ActionReset)

	if f.Has(ActionStart) {
		t.Error("Unset() should clear the action")
	}
	if !f.Has(ActionSteerLeft) {
		t.Error("Unset() must leave other actions")
	}
}
