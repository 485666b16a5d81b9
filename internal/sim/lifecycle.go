// Package sim implements the Boat Runner simulation core: the speed ramp,
// the scrolling lanes, the boat controller, collision detection and the
// game lifecycle. It is a pure, single-threaded, per-tick state update with
// no I/O; the scene builder and renderer only read its snapshots.
package sim

// GameState is the lifecycle state of the current run.
type GameState int

const (
	NotStarted GameState = iota
	Running
	GameOver
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Lifecycle owns the GameState. It is the only writer of the state; the
// three transitions below are the only legal ones and each reports whether
// it fired. Requests that do not apply to the current state are ignored.
type Lifecycle struct {
	state GameState
}

// State returns the current state.
func (l *Lifecycle) State() GameState {
	return l.state
}

// Start moves NotStarted to Running.
func (l *Lifecycle) Start() bool {
	if l.state != NotStarted {
		return false
	}
	l.state = Running
	return true
}

// Crash moves Running to GameOver.
func (l *Lifecycle) Crash() bool {
	if l.state != Running {
		return false
	}
	l.state = GameOver
	return true
}

// Reset moves GameOver back to NotStarted. The caller restores the rest of
// the simulation; a new start input is required to run again.
func (l *Lifecycle) Reset() bool {
	if l.state != GameOver {
		return false
	}
	l.state = NotStarted
	return true
}
