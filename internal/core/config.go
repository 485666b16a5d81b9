package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse lifecycle phase a game reports to the platform.
type Phase int

const (
	PhaseWaiting Phase = iota // waiting for the player to start
	PhasePlaying
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Status represents the current state of a game.
// Returned by Game.Status() to communicate progress to the platform.
type Status struct {
	Score int // Distance covered in the current run
	Phase Phase
	Runs  int // Runs started since the game was created
}

// GameOver reports whether the current run has ended.
func (s Status) GameOver() bool {
	return s.Phase == PhaseOver
}

// Event is something noteworthy that happened during a step.
// Attrs are alternating key/value pairs, ready for structured logging.
type Event struct {
	Name  string
	Attrs []any
}

// StepResult is returned by Game.Step() after advancing the clock.
type StepResult struct {
	Status Status
	Ticks  int // fixed simulation ticks consumed by this step
	Events []Event
}
