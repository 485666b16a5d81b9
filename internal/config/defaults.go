package config

import (
	_ "embed"
)

//go:embed defaults/boatrunner.yaml
var defaultBoatRunnerYAML []byte

// DefaultBoatRunnerConfig returns the built-in configuration.
// It mirrors defaults/boatrunner.yaml and is used when the embedded file
// cannot be decoded.
func DefaultBoatRunnerConfig() BoatRunnerConfig {
	return BoatRunnerConfig{
		TickRate: 60,
		Track: TrackConfig{
			BaseSpeed:        0.25,
			LaneSlots:        []float64{-3.0, -1.5, 0.0, 1.5, 3.0},
			RecycleThreshold: -8.0,
			MinSpawnGap:      6.0,
		},
		Boat: BoatConfig{
			Z:           0.0,
			MinX:        -3.5,
			MaxX:        3.5,
			Step:        0.12,
			BankDegrees: 15.0,
			Scale:       Vec3{0.5, 0.5, 0.5},
		},
		Rocks: RocksConfig{
			Lanes: []RockLane{
				{SpawnFar: 60.0, InitialLateral: -1.5},
				{SpawnFar: 80.0, InitialLateral: 1.5},
				{SpawnFar: 100.0, InitialLateral: 0.0},
			},
			VerticalMin: -0.4,
			VerticalMax: 0.0,
			Scale:       Vec3{1, 1, 1},
		},
		Sea: SeaConfig{
			Y:          -0.5,
			TileLength: 20.0,
			Scale:      Vec3{20, 1, 20},
		},
		Collision: CollisionConfig{
			RockHalfWidth: 0.9,
			RockHalfDepth: 0.9,
			BoatHalfWidth: 0.45,
			BoatHalfDepth: 1.1,
			MinCosFactor:  0.4,
		},
		Difficulty: DifficultyConfig{
			Rate:    0.0001,
			Ceiling: 0.35,
		},
		Camera: CameraConfig{
			FOVDegrees: 45.0,
			Near:       0.1,
			Far:        1000.0,
			FlipY:      true,
			GameEye:    Vec3{0, 3.5, -7},
			GameTarget: Vec3{0, 0, 12},
			MenuEye:    Vec3{0, 2.5, -6},
			SignAt:     Vec3{0, 2.5, 4},
			SignScale:  Vec3{4, 2, 1},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBoatRunnerYAML
}
