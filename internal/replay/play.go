package replay

import (
	"fmt"

	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/sim"
)

// Summary is the outcome of playing a recording back.
type Summary struct {
	Ticks         int
	Runs          int // runs started
	Crashes       int
	BestDistance  float64
	FinalState    sim.GameState
	FinalDistance float64
}

// Matches reports whether a stored row agrees with this summary.
func (s Summary) Matches(ticks, runs, crashes int, best float64) bool {
	return s.Ticks == ticks && s.Runs == runs && s.Crashes == crashes && s.BestDistance == best
}

// Play reruns a recording one tick per recorded input.
func Play(rec Recording) (Summary, error) {
	cfg, err := config.Parse(rec.ConfigYAML, config.FormatYAML)
	if err != nil {
		return Summary{}, fmt.Errorf("replay: %w", err)
	}
	s, err := sim.New(cfg, rec.Seed)
	if err != nil {
		return Summary{}, fmt.Errorf("replay: %w", err)
	}

	var sum Summary
	for _, mask := range rec.Inputs {
		for _, ev := range s.Tick(sim.InputFromFrame(core.InputFrameFromMask(mask))) {
			if ev.Kind != sim.EventStateChanged {
				continue
			}
			switch ev.To {
			case sim.Running:
				sum.Runs++
			case sim.GameOver:
				sum.Crashes++
			}
		}
		if d := s.Distance(); d > sum.BestDistance {
			sum.BestDistance = d
		}
		sum.Ticks++
	}

	snap := s.Snapshot()
	sum.FinalState = snap.State
	sum.FinalDistance = snap.Distance
	return sum, nil
}
