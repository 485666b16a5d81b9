package sim

import "fmt"

// EventKind classifies simulation events.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventRecycled               // a rock respawned far away
	EventSpawnBumped            // a respawn was pushed back to keep rocks apart
	EventSlotForced             // a respawn slot was moved off an occupied one
	EventCollision
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventRecycled:
		return "recycled"
	case EventSpawnBumped:
		return "spawn_bumped"
	case EventSlotForced:
		return "slot_forced"
	case EventCollision:
		return "collision"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is something that happened during one tick.
// Lane is set for lane events; From/To for state changes.
type Event struct {
	Kind EventKind
	Tick uint64
	Lane int
	From GameState
	To   GameState
}
