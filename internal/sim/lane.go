package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/boat-runner/internal/config"
)

// LaneEntity is one recyclable entity scrolling toward the camera: a rock
// or the sea plane.
type LaneEntity struct {
	LongitudinalOffset float64
	LateralPosition    float64
	VerticalPosition   float64
	YawDegrees         float64

	SpawnFarOffset   float64 // where the entity respawns
	RecycleThreshold float64 // respawn once the offset is at or below this

	initialLateral float64
}

// Advance scrolls the entity by speed when the game is running and reports
// whether it has passed its recycle threshold.
func (e *LaneEntity) Advance(state GameState, speed float64) bool {
	if state != Running {
		return false
	}
	e.LongitudinalOffset -= speed
	return e.LongitudinalOffset <= e.RecycleThreshold
}

// restore puts the entity back in its initial placement.
func (e *LaneEntity) restore() {
	e.LongitudinalOffset = e.SpawnFarOffset
	e.LateralPosition = e.initialLateral
	e.VerticalPosition = 0
	e.YawDegrees = 0
}

// Lanes scrolls the rock lanes and the sea, and recycles rocks that pass
// the camera with freshly drawn placement.
type Lanes struct {
	rocks  []LaneEntity
	sea    LaneEntity
	slots  []float64
	minGap float64
	vMin   float64
	vMax   float64
	rng    *rand.Rand
}

// NewLanes builds the rock lanes and the sea from the config. The rng is
// shared with the caller and never reseeded here.
func NewLanes(cfg config.BoatRunnerConfig, rng *rand.Rand) *Lanes {
	l := &Lanes{
		rocks:  make([]LaneEntity, len(cfg.Rocks.Lanes)),
		slots:  append([]float64(nil), cfg.Track.LaneSlots...),
		minGap: cfg.Track.MinSpawnGap,
		vMin:   cfg.Rocks.VerticalMin,
		vMax:   cfg.Rocks.VerticalMax,
		rng:    rng,
	}
	for i, lane := range cfg.Rocks.Lanes {
		l.rocks[i] = LaneEntity{
			SpawnFarOffset:   lane.SpawnFar,
			RecycleThreshold: cfg.Track.RecycleThreshold,
			initialLateral:   lane.InitialLateral,
		}
	}
	// The sea wraps every tile so the texture appears to scroll forever.
	l.sea = LaneEntity{
		SpawnFarOffset:   0,
		RecycleThreshold: -cfg.Sea.TileLength,
		VerticalPosition: cfg.Sea.Y,
	}
	l.Reset()
	return l
}

// Reset restores every lane to its initial placement.
func (l *Lanes) Reset() {
	for i := range l.rocks {
		l.rocks[i].restore()
	}
	l.sea.LongitudinalOffset = l.sea.SpawnFarOffset
}

// Rocks returns the rock lanes. The slice is owned by Lanes.
func (l *Lanes) Rocks() []LaneEntity {
	return l.rocks
}

// Sea returns the sea lane.
func (l *Lanes) Sea() LaneEntity {
	return l.sea
}

// Advance scrolls every lane by speed, then recycles the ones that passed
// the threshold in lane order. Recycling waits until all rocks have moved
// so spawn gaps are measured against this tick's positions.
func (l *Lanes) Advance(state GameState, speed float64, tick uint64) []Event {
	var events []Event

	if l.sea.Advance(state, speed) {
		l.sea.LongitudinalOffset = l.sea.SpawnFarOffset
	}

	var passed []int
	for i := range l.rocks {
		if l.rocks[i].Advance(state, speed) {
			passed = append(passed, i)
		}
	}
	for _, i := range passed {
		events = append(events, l.recycle(i, tick)...)
	}
	return events
}

// recycle respawns rock i at its far offset with a new slot, yaw and depth.
func (l *Lanes) recycle(i int, tick uint64) []Event {
	rock := &l.rocks[i]
	events := []Event{{Kind: EventRecycled, Tick: tick, Lane: i}}

	rock.LongitudinalOffset = rock.SpawnFarOffset
	if l.bumpSpawn(i) {
		events = append(events, Event{Kind: EventSpawnBumped, Tick: tick, Lane: i})
	}

	slot := l.slots[l.rng.Intn(len(l.slots))]
	if l.slotTaken(i, slot) {
		slot = l.freeSlot(i, slot)
		events = append(events, Event{Kind: EventSlotForced, Tick: tick, Lane: i})
	}
	rock.LateralPosition = slot

	rock.YawDegrees = l.rng.Float64() * 360
	rock.VerticalPosition = l.vMin + l.rng.Float64()*(l.vMax-l.vMin)

	return events
}

// bumpSpawn pushes rock i further out until it is at least minGap away
// from every other rock. Each pass moves it past one neighbour, so
// len(rocks) passes are always enough.
func (l *Lanes) bumpSpawn(i int) bool {
	bumped := false
	for pass := 0; pass < len(l.rocks); pass++ {
		moved := false
		for j := range l.rocks {
			if j == i {
				continue
			}
			other := l.rocks[j].LongitudinalOffset
			if math.Abs(l.rocks[i].LongitudinalOffset-other) < l.minGap {
				l.rocks[i].LongitudinalOffset = other + l.minGap
				moved = true
			}
		}
		if !moved {
			break
		}
		bumped = true
	}
	return bumped
}

// slotTaken reports whether another rock currently sits at slot.
func (l *Lanes) slotTaken(i int, slot float64) bool {
	for j := range l.rocks {
		if j != i && l.rocks[j].LateralPosition == slot {
			return true
		}
	}
	return false
}

// freeSlot resolves a taken slot: first the mirrored slot on the opposite
// side of the track, then the first free slot scanning forward from the
// drawn one, wrapping around. Validation guarantees unique slots and at
// least one per rock lane, so a free slot always exists.
func (l *Lanes) freeSlot(i int, drawn float64) float64 {
	mirrored := -drawn
	if mirrored != drawn && l.hasSlot(mirrored) && !l.slotTaken(i, mirrored) {
		return mirrored
	}

	start := 0
	for k, s := range l.slots {
		if s == drawn {
			start = k
			break
		}
	}
	for n := 1; n <= len(l.slots); n++ {
		candidate := l.slots[(start+n)%len(l.slots)]
		if !l.slotTaken(i, candidate) {
			return candidate
		}
	}
	return drawn
}

func (l *Lanes) hasSlot(v float64) bool {
	for _, s := range l.slots {
		if s == v {
			return true
		}
	}
	return false
}
