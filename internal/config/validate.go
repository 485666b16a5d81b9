package config

import (
	"errors"
	"fmt"
)

// ErrInvalid marks every configuration validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
// All problems are reported together; each wraps ErrInvalid.
func Validate(cfg BoatRunnerConfig) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if cfg.TickRate <= 0 {
		fail("tick_rate must be positive, got %d", cfg.TickRate)
	}

	if cfg.Track.BaseSpeed <= 0 {
		fail("track.base_speed must be positive, got %g", cfg.Track.BaseSpeed)
	}
	if len(cfg.Track.LaneSlots) == 0 {
		fail("track.lane_slots must not be empty")
	}
	seen := make(map[float64]bool, len(cfg.Track.LaneSlots))
	for _, slot := range cfg.Track.LaneSlots {
		if seen[slot] {
			fail("track.lane_slots must be unique, %g appears twice", slot)
			break
		}
		seen[slot] = true
	}
	if cfg.Track.MinSpawnGap < 0 {
		fail("track.min_spawn_gap must not be negative, got %g", cfg.Track.MinSpawnGap)
	}

	if cfg.Boat.MinX > cfg.Boat.MaxX {
		fail("boat.min_x (%g) must not exceed boat.max_x (%g)", cfg.Boat.MinX, cfg.Boat.MaxX)
	}
	if cfg.Boat.Step < 0 {
		fail("boat.step must not be negative, got %g", cfg.Boat.Step)
	}
	if cfg.Boat.MinX > 0 || cfg.Boat.MaxX < 0 {
		fail("boat bounds [%g, %g] must contain the start position 0", cfg.Boat.MinX, cfg.Boat.MaxX)
	}

	if len(cfg.Rocks.Lanes) == 0 {
		fail("rocks.lanes must not be empty")
	}
	if len(cfg.Track.LaneSlots) < len(cfg.Rocks.Lanes) {
		fail("track.lane_slots (%d) must have at least one slot per rock lane (%d)",
			len(cfg.Track.LaneSlots), len(cfg.Rocks.Lanes))
	}
	for i, lane := range cfg.Rocks.Lanes {
		if lane.SpawnFar <= cfg.Track.RecycleThreshold {
			fail("rocks.lanes[%d].spawn_far (%g) must be beyond track.recycle_threshold (%g)",
				i, lane.SpawnFar, cfg.Track.RecycleThreshold)
		}
	}
	if cfg.Rocks.VerticalMin > cfg.Rocks.VerticalMax {
		fail("rocks.vertical_min (%g) must not exceed rocks.vertical_max (%g)",
			cfg.Rocks.VerticalMin, cfg.Rocks.VerticalMax)
	}

	if cfg.Sea.TileLength <= 0 {
		fail("sea.tile_length must be positive, got %g", cfg.Sea.TileLength)
	}

	c := cfg.Collision
	if c.RockHalfWidth < 0 || c.RockHalfDepth < 0 || c.BoatHalfWidth < 0 || c.BoatHalfDepth < 0 {
		fail("collision half extents must not be negative")
	}
	if c.MinCosFactor <= 0 || c.MinCosFactor > 1 {
		fail("collision.min_cos_factor must be in (0, 1], got %g", c.MinCosFactor)
	}

	if cfg.Difficulty.Rate < 0 {
		fail("difficulty.rate must not be negative, got %g", cfg.Difficulty.Rate)
	}
	if cfg.Difficulty.Ceiling < 0 {
		fail("difficulty.ceiling must not be negative, got %g", cfg.Difficulty.Ceiling)
	}

	cam := cfg.Camera
	if cam.FOVDegrees <= 0 || cam.FOVDegrees >= 180 {
		fail("camera.fov_degrees must be in (0, 180), got %g", cam.FOVDegrees)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		fail("camera near/far must satisfy 0 < near < far, got %g/%g", cam.Near, cam.Far)
	}
	if cam.GameEye == cam.GameTarget {
		fail("camera.game_eye must differ from camera.game_target")
	}
	if cam.MenuEye == cam.SignAt {
		fail("camera.menu_eye must differ from camera.sign_at")
	}

	return errors.Join(errs...)
}
