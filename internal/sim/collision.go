package sim

import (
	"math"

	"github.com/vovakirdan/boat-runner/internal/config"
)

// Footprint is the rotated rectangle approximating a rock's collidable
// extent on the water plane. It is derived on demand and never stored.
type Footprint struct {
	CenterX    float64
	CenterZ    float64
	HalfWidth  float64
	HalfDepth  float64
	YawDegrees float64
}

// EffectiveHalfWidth is the lateral half-extent after rotation. The cosine
// is floored at minCos so a rock turned 90 or 270 degrees keeps some width.
// This is a tuned approximation, not an exact oriented-box projection.
func (f Footprint) EffectiveHalfWidth(minCos float64) float64 {
	c := math.Abs(math.Cos(f.YawDegrees * math.Pi / 180))
	return f.HalfWidth * math.Max(c, minCos)
}

// Detector tests the boat against rock footprints once per tick.
//
// Detection is sampled per tick: a rock moving further than the combined
// depth band in one tick can pass through the boat undetected.
type Detector struct {
	cfg config.CollisionConfig
}

// NewDetector creates a detector with the tuned footprint sizes.
func NewDetector(cfg config.CollisionConfig) Detector {
	return Detector{cfg: cfg}
}

// Footprint returns the collision footprint of a rock.
func (d Detector) Footprint(rock LaneEntity) Footprint {
	return Footprint{
		CenterX:    rock.LateralPosition,
		CenterZ:    rock.LongitudinalOffset,
		HalfWidth:  d.cfg.RockHalfWidth,
		HalfDepth:  d.cfg.RockHalfDepth,
		YawDegrees: rock.YawDegrees,
	}
}

// Overlaps reports whether the boat overlaps one footprint. Both the
// lateral and the longitudinal separations must be inside their bands.
func (d Detector) Overlaps(boat Boat, f Footprint) bool {
	lateral := math.Abs(boat.LateralPosition - f.CenterX)
	if lateral >= d.cfg.BoatHalfWidth+f.EffectiveHalfWidth(d.cfg.MinCosFactor) {
		return false
	}
	longitudinal := math.Abs(f.CenterZ - boat.Z)
	return longitudinal < d.cfg.BoatHalfDepth+f.HalfDepth
}

// Collides tests the boat against every rock and stops at the first hit,
// returning its lane index.
func (d Detector) Collides(boat Boat, rocks []LaneEntity) (int, bool) {
	for i := range rocks {
		if d.Overlaps(boat, d.Footprint(rocks[i])) {
			return i, true
		}
	}
	return -1, false
}
