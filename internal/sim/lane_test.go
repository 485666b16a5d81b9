package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/boat-runner/internal/config"
)

func newTestLanes(cfg config.BoatRunnerConfig, seed int64) *Lanes {
	return NewLanes(cfg, rand.New(rand.NewSource(seed)))
}

func inSlots(v float64, slots []float64) bool {
	for _, s := range slots {
		if s == v {
			return true
		}
	}
	return false
}

func TestLaneEntityFrozenUnlessRunning(t *testing.T) {
	e := LaneEntity{LongitudinalOffset: 10, RecycleThreshold: -5}
	for _, state := range []GameState{NotStarted, GameOver} {
		if e.Advance(state, 1) {
			t.Errorf("%s: should not report recycle", state)
		}
		if e.LongitudinalOffset != 10 {
			t.Errorf("%s: entity moved to %g", state, e.LongitudinalOffset)
		}
	}
}

func TestLaneEntityReportsThreshold(t *testing.T) {
	e := LaneEntity{LongitudinalOffset: -4, RecycleThreshold: -5}
	if e.Advance(Running, 0.5) {
		t.Error("offset -4.5 has not passed -5 yet")
	}
	if !e.Advance(Running, 0.5) {
		t.Error("offset -5 is at the threshold and should recycle")
	}
}

func TestRecyclePlacement(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()

	for seed := int64(0); seed < 50; seed++ {
		l := newTestLanes(cfg, seed)
		l.rocks[0].LongitudinalOffset = cfg.Track.RecycleThreshold + 0.1

		events := l.Advance(Running, cfg.Track.BaseSpeed, 1)
		rock := l.rocks[0]

		if !hasEvent(events, EventRecycled, 0) {
			t.Fatalf("seed %d: expected a recycle event", seed)
		}
		if rock.LongitudinalOffset != rock.SpawnFarOffset {
			t.Errorf("seed %d: offset %g, expected spawn %g", seed, rock.LongitudinalOffset, rock.SpawnFarOffset)
		}
		if !inSlots(rock.LateralPosition, cfg.Track.LaneSlots) {
			t.Errorf("seed %d: lateral %g is not a lane slot", seed, rock.LateralPosition)
		}
		for j := 1; j < len(l.rocks); j++ {
			if l.rocks[j].LateralPosition == rock.LateralPosition {
				t.Errorf("seed %d: recycled rock shares slot %g with lane %d", seed, rock.LateralPosition, j)
			}
		}
		if rock.YawDegrees < 0 || rock.YawDegrees >= 360 {
			t.Errorf("seed %d: yaw %g out of [0, 360)", seed, rock.YawDegrees)
		}
		if rock.VerticalPosition < cfg.Rocks.VerticalMin || rock.VerticalPosition > cfg.Rocks.VerticalMax {
			t.Errorf("seed %d: vertical %g out of range", seed, rock.VerticalPosition)
		}
	}
}

func TestRecycleBumpsCoincidentSpawn(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()
	l := newTestLanes(cfg, 1)

	// Lane 1 sits 2 units behind lane 0's spawn point.
	spawn := l.rocks[0].SpawnFarOffset
	l.rocks[1].LongitudinalOffset = spawn + 2
	l.rocks[0].LongitudinalOffset = cfg.Track.RecycleThreshold

	events := l.Advance(Running, cfg.Track.BaseSpeed, 1)

	if !hasEvent(events, EventSpawnBumped, 0) {
		t.Fatal("expected lane 0 spawn to be bumped")
	}
	// Lane 1 moves before the respawn is placed.
	want := spawn + 2 - cfg.Track.BaseSpeed + cfg.Track.MinSpawnGap
	if got := l.rocks[0].LongitudinalOffset; got != want {
		t.Errorf("bumped offset = %g, expected %g", got, want)
	}
}

func TestRecycleGapUsesMovedPositions(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()
	l := newTestLanes(cfg, 1)
	speed := cfg.Track.BaseSpeed

	// Lane 1 starts exactly one gap behind lane 0's spawn point and only
	// moves inside the gap during the tick.
	spawn := l.rocks[0].SpawnFarOffset
	l.rocks[1].LongitudinalOffset = spawn + cfg.Track.MinSpawnGap
	l.rocks[0].LongitudinalOffset = cfg.Track.RecycleThreshold + speed/2

	events := l.Advance(Running, speed, 1)

	if !hasEvent(events, EventSpawnBumped, 0) {
		t.Fatal("expected lane 0 spawn to be bumped past lane 1")
	}
	rock := l.rocks[0].LongitudinalOffset
	for j := 1; j < len(l.rocks); j++ {
		gap := math.Abs(rock - l.rocks[j].LongitudinalOffset)
		if gap < cfg.Track.MinSpawnGap-1e-9 {
			t.Errorf("lane 0 at %g is %g from lane %d, minimum %g", rock, gap, j, cfg.Track.MinSpawnGap)
		}
	}
}

func TestRecycleForcesFreeSlot(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()
	cfg.Track.LaneSlots = []float64{-1, 0, 1}
	cfg.Rocks.Lanes = []config.RockLane{
		{SpawnFar: 60, InitialLateral: -1},
		{SpawnFar: 80, InitialLateral: 0},
		{SpawnFar: 100, InitialLateral: 1},
	}

	// Only -1 is free for lane 0 whatever slot gets drawn: a drawn 1 mirrors
	// to -1, a drawn 0 has no mirror and scans to the next free slot.
	for seed := int64(0); seed < 30; seed++ {
		l := newTestLanes(cfg, seed)
		l.rocks[0].LongitudinalOffset = cfg.Track.RecycleThreshold
		l.Advance(Running, cfg.Track.BaseSpeed, 1)

		if got := l.rocks[0].LateralPosition; got != -1 {
			t.Errorf("seed %d: lateral = %g, expected the only free slot -1", seed, got)
		}
	}
}

func TestFreeSlotPrefersMirror(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()
	l := newTestLanes(cfg, 1)
	l.rocks[1].LateralPosition = 3.0
	l.rocks[2].LateralPosition = 0.0

	if got := l.freeSlot(0, 3.0); got != -3.0 {
		t.Errorf("freeSlot(3) = %g, expected mirrored -3", got)
	}
	// 0 has no distinct mirror, so the scan picks the next slot.
	if got := l.freeSlot(0, 0.0); got != 1.5 {
		t.Errorf("freeSlot(0) = %g, expected next slot 1.5", got)
	}
}

func TestSeaWrapsWithoutRandomizing(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()
	l := newTestLanes(cfg, 1)
	l.sea.LongitudinalOffset = -cfg.Sea.TileLength + 0.1

	l.Advance(Running, cfg.Track.BaseSpeed, 1)
	sea := l.Sea()

	if sea.LongitudinalOffset != 0 {
		t.Errorf("sea offset = %g, expected wrap to 0", sea.LongitudinalOffset)
	}
	if sea.LateralPosition != 0 || sea.YawDegrees != 0 {
		t.Errorf("sea must not be randomized: lateral=%g yaw=%g", sea.LateralPosition, sea.YawDegrees)
	}
	if sea.VerticalPosition != cfg.Sea.Y {
		t.Errorf("sea height = %g, expected %g", sea.VerticalPosition, cfg.Sea.Y)
	}
}

func TestLanesReset(t *testing.T) {
	cfg := config.DefaultBoatRunnerConfig()
	l := newTestLanes(cfg, 1)
	for i := 0; i < 1000; i++ {
		l.Advance(Running, 0.5, uint64(i))
	}

	l.Reset()

	for i, rock := range l.Rocks() {
		if rock.LongitudinalOffset != cfg.Rocks.Lanes[i].SpawnFar {
			t.Errorf("lane %d offset = %g after reset", i, rock.LongitudinalOffset)
		}
		if rock.LateralPosition != cfg.Rocks.Lanes[i].InitialLateral {
			t.Errorf("lane %d lateral = %g after reset", i, rock.LateralPosition)
		}
		if rock.YawDegrees != 0 || rock.VerticalPosition != 0 {
			t.Errorf("lane %d orientation not restored", i)
		}
	}
	if l.Sea().LongitudinalOffset != 0 {
		t.Errorf("sea offset = %g after reset", l.Sea().LongitudinalOffset)
	}
}
