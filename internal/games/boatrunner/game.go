// Package boatrunner adapts the Boat Runner simulation to the platform:
// it loads the game config, advances the simulation on the platform clock,
// records every tick for replays and rasterizes the scene into a Screen.
package boatrunner

import (
	"fmt"
	"time"

	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/registry"
	"github.com/vovakirdan/boat-runner/internal/replay"
	"github.com/vovakirdan/boat-runner/internal/scene"
	"github.com/vovakirdan/boat-runner/internal/sim"
)

// ID is the registry identifier of the game.
const ID = "boatrunner"

// Game implements registry.Game for Boat Runner.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.BoatRunnerConfig
	preset   config.DifficultyPreset
	sim      *sim.Simulation
	builder  *scene.Builder
	recorder *replay.Recorder
	width    int
	height   int
}

// Settings chosen on the command line. They are written once before any
// game is created and only read afterwards, so SSH sessions can share them.
var (
	// configPath stores the custom config path set via CLI.
	configPath string
	// difficultyPreset is applied to the loaded config on every Reset.
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// New creates a new Boat Runner game instance. Call Reset before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Boat Runner"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return g.ResetWith(runtime, cfg, difficultyPreset)
}

// ResetWith starts a fresh session from an explicit config. The preset is
// recorded with replays but not applied again.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BoatRunnerConfig, preset config.DifficultyPreset) error {
	if runtime.TickRate > 0 {
		cfg.TickRate = runtime.TickRate
	}

	s, err := sim.New(cfg, runtime.Seed)
	if err != nil {
		return fmt.Errorf("boatrunner: %w", err)
	}
	rec, err := replay.NewRecorder(runtime.Seed, preset, cfg)
	if err != nil {
		return fmt.Errorf("boatrunner: %w", err)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.preset = preset
	g.sim = s
	g.builder = scene.NewBuilder(cfg)
	g.recorder = rec
	g.width, g.height = runtime.ScreenW, runtime.ScreenH
	return nil
}

// Step advances the simulation clock by dt and records each tick it ran.
// Start and reset only reach the first tick, matching sim.Advance.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	n, events := g.sim.Advance(dt, sim.InputFromFrame(in))
	if n > 0 {
		g.recorder.Record(in)
		rest := in
		rest.Unset(core.ActionStart)
		rest.Unset(core.ActionReset)
		for i := 1; i < n; i++ {
			g.recorder.Record(rest)
		}
	}

	return core.StepResult{
		Status: g.Status(),
		Ticks:  n,
		Events: convertEvents(events),
	}
}

// Resize records the new screen size; the next Render uses it.
func (g *Game) Resize(w, h int) {
	g.width, g.height = w, h
}

// Status returns the current game status.
func (g *Game) Status() core.Status {
	if g.sim == nil {
		return core.Status{}
	}
	snap := g.sim.Snapshot()
	return core.Status{
		Score: int(snap.Distance),
		Phase: phaseOf(snap.State),
		Runs:  snap.Runs,
	}
}

// Snapshot exposes the simulation state, mainly for tests and the HUD.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Recording returns everything recorded since the last Reset.
func (g *Game) Recording() replay.Recording {
	if g.recorder == nil {
		return replay.Recording{}
	}
	return g.recorder.Recording()
}

// Config returns the effective configuration.
func (g *Game) Config() config.BoatRunnerConfig {
	return g.cfg
}

func phaseOf(s sim.GameState) core.Phase {
	switch s {
	case sim.Running:
		return core.PhasePlaying
	case sim.GameOver:
		return core.PhaseOver
	default:
		return core.PhaseWaiting
	}
}

// convertEvents turns simulation events into platform events with
// key/value attributes ready for structured logging.
func convertEvents(events []sim.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, ev := range events {
		attrs := []any{"tick", ev.Tick}
		if ev.Kind == sim.EventStateChanged {
			attrs = append(attrs, "from", ev.From.String(), "to", ev.To.String())
		} else {
			attrs = append(attrs, "lane", ev.Lane)
		}
		out = append(out, core.Event{Name: ev.Kind.String(), Attrs: attrs})
	}
	return out
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
