package sim

import (
	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/core"
)

// Boat is the player. LateralPosition always stays within [MinX, MaxX].
type Boat struct {
	LateralPosition     float64
	BankRotationDegrees float64
	Z                   float64 // fixed longitudinal slot

	MinX        float64
	MaxX        float64
	Step        float64
	BankDegrees float64
}

// NewBoat creates a centered boat from the config.
func NewBoat(cfg config.BoatConfig) Boat {
	return Boat{
		Z:           cfg.Z,
		MinX:        cfg.MinX,
		MaxX:        cfg.MaxX,
		Step:        cfg.Step,
		BankDegrees: cfg.BankDegrees,
	}
}

// Advance applies one tick of steering while the game runs. Steering left
// moves toward +x and banks positive, steering right the opposite.
// Opposite inputs cancel: no movement and a neutral bank.
func (b *Boat) Advance(state GameState, in Input) (float64, float64) {
	if state != Running {
		return b.LateralPosition, b.BankRotationDegrees
	}

	switch {
	case in.SteerLeft && !in.SteerRight:
		b.LateralPosition += b.Step
		b.BankRotationDegrees = b.BankDegrees
	case in.SteerRight && !in.SteerLeft:
		b.LateralPosition -= b.Step
		b.BankRotationDegrees = -b.BankDegrees
	default:
		b.BankRotationDegrees = 0
	}

	b.LateralPosition = core.ClampF(b.LateralPosition, b.MinX, b.MaxX)
	return b.LateralPosition, b.BankRotationDegrees
}

// Reset centers the boat and levels it.
func (b *Boat) Reset() {
	b.LateralPosition = 0
	b.BankRotationDegrees = 0
}
