package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/core"
)

// MaxCatchUpTicks caps how many fixed ticks one Advance call may run.
// Time beyond that is dropped so a stalled frame does not fast-forward the game.
const MaxCatchUpTicks = 5

// Input is the per-tick snapshot of the four logical inputs.
type Input struct {
	SteerLeft  bool
	SteerRight bool
	Start      bool
	Reset      bool
}

// InputFromFrame maps platform actions to simulation inputs.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		SteerLeft:  f.Has(core.ActionSteerLeft),
		SteerRight: f.Has(core.ActionSteerRight),
		Start:      f.Has(core.ActionStart),
		Reset:      f.Has(core.ActionReset),
	}
}

// Simulation is the whole game state, advanced one fixed tick at a time.
// There are no package-level globals: every value lives here.
type Simulation struct {
	cfg      config.BoatRunnerConfig
	life     Lifecycle
	ramp     Ramp
	lanes    *Lanes
	boat     Boat
	detector Detector

	step    time.Duration
	pending time.Duration
	elapsed time.Duration

	tick     uint64
	runTicks int
	runs     int
	distance float64
}

// New validates the config and builds a simulation in the NotStarted state.
// The seed initializes the single random generator used for every respawn.
func New(cfg config.BoatRunnerConfig, seed int64) (*Simulation, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	return &Simulation{
		cfg:      cfg,
		ramp:     NewRamp(cfg.Difficulty.Rate, cfg.Difficulty.Ceiling),
		lanes:    NewLanes(cfg, rng),
		boat:     NewBoat(cfg.Boat),
		detector: NewDetector(cfg.Collision),
		step:     time.Second / time.Duration(cfg.TickRate),
	}, nil
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.BoatRunnerConfig {
	return s.cfg
}

// State returns the lifecycle state.
func (s *Simulation) State() GameState {
	return s.life.State()
}

// Distance is the distance covered in the current run.
func (s *Simulation) Distance() float64 {
	return s.distance
}

// TickDuration is the simulated time covered by one tick.
func (s *Simulation) TickDuration() time.Duration {
	return s.step
}

// Elapsed is the total simulated time.
func (s *Simulation) Elapsed() time.Duration {
	return s.elapsed
}

// Advance consumes wall-clock time and runs as many whole ticks as fit,
// up to MaxCatchUpTicks. Start and reset apply to the first tick only;
// steering applies to all of them. It returns the ticks run and their events.
func (s *Simulation) Advance(dt time.Duration, in Input) (int, []Event) {
	if dt > 0 {
		s.pending += dt
	}

	n := int(s.pending / s.step)
	if n > MaxCatchUpTicks {
		n = MaxCatchUpTicks
		s.pending = 0
	} else {
		s.pending -= time.Duration(n) * s.step
	}

	var events []Event
	for i := 0; i < n; i++ {
		tickIn := in
		if i > 0 {
			tickIn.Start = false
			tickIn.Reset = false
		}
		events = append(events, s.Tick(tickIn)...)
	}
	return n, events
}

// Tick runs exactly one fixed step. Order is fixed: lifecycle inputs, ramp,
// boat, lanes, then collision, so collision always sees final positions.
func (s *Simulation) Tick(in Input) []Event {
	s.tick++
	s.elapsed += s.step

	var events []Event

	if in.Start && s.life.Start() {
		s.runs++
		events = append(events, s.stateEvent(NotStarted, Running))
	}
	if in.Reset && s.life.Reset() {
		s.restore()
		events = append(events, s.stateEvent(GameOver, NotStarted))
	}

	state := s.life.State()
	ramp := s.ramp.Advance(state)
	s.boat.Advance(state, in)

	speed := s.cfg.Track.BaseSpeed + ramp
	events = append(events, s.lanes.Advance(state, speed, s.tick)...)

	if state != Running {
		return events
	}

	s.runTicks++
	s.distance += speed

	if lane, hit := s.detector.Collides(s.boat, s.lanes.Rocks()); hit {
		s.life.Crash()
		events = append(events,
			Event{Kind: EventCollision, Tick: s.tick, Lane: lane},
			s.stateEvent(Running, GameOver),
		)
	}
	return events
}

// restore puts every entity and the ramp back to their initial values.
// The random generator keeps its sequence.
func (s *Simulation) restore() {
	s.ramp.Reset()
	s.boat.Reset()
	s.lanes.Reset()
	s.runTicks = 0
	s.distance = 0
}

func (s *Simulation) stateEvent(from, to GameState) Event {
	return Event{Kind: EventStateChanged, Tick: s.tick, From: from, To: to}
}

// BoatState is the boat part of a snapshot.
type BoatState struct {
	LateralPosition     float64
	BankRotationDegrees float64
	Z                   float64
}

// Snapshot is a read-only copy of everything the scene builder needs.
type Snapshot struct {
	State    GameState
	Tick     uint64
	Ramp     float64
	Speed    float64 // base speed plus ramp
	Distance float64
	RunTicks int
	Runs     int
	Boat     BoatState
	Rocks    []LaneEntity
	Sea      LaneEntity
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		State:    s.life.State(),
		Tick:     s.tick,
		Ramp:     s.ramp.Current,
		Speed:    s.cfg.Track.BaseSpeed + s.ramp.Current,
		Distance: s.distance,
		RunTicks: s.runTicks,
		Runs:     s.runs,
		Boat: BoatState{
			LateralPosition:     s.boat.LateralPosition,
			BankRotationDegrees: s.boat.BankRotationDegrees,
			Z:                   s.boat.Z,
		},
		Rocks: append([]LaneEntity(nil), s.lanes.Rocks()...),
		Sea:   s.lanes.Sea(),
	}
}
