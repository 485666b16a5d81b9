package sim

import "math"

// Ramp is the difficulty speed bonus added to every lane's scroll speed.
// Current stays within [0, Ceiling] and only grows while the game runs.
type Ramp struct {
	Current float64
	Ceiling float64
	Rate    float64 // increment per running tick
}

// NewRamp creates a ramp at zero.
func NewRamp(rate, ceiling float64) Ramp {
	return Ramp{Rate: rate, Ceiling: ceiling}
}

// Advance raises the ramp by one tick's increment when the game is running
// and returns the current value. It holds once the ceiling is reached.
func (r *Ramp) Advance(state GameState) float64 {
	if state != Running {
		return r.Current
	}
	r.Current = math.Min(r.Current+r.Rate, r.Ceiling)
	return r.Current
}

// Reset returns the ramp to zero.
func (r *Ramp) Reset() {
	r.Current = 0
}
