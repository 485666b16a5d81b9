// Package config provides YAML/TOML game configuration loading, validation
// and difficulty presets for Boat Runner.
package config

// Vec3 is a point or direction in world space (x lateral, y up, z along the track).
type Vec3 [3]float64

// BoatRunnerConfig contains all tuning for the game.
// Distances are world units; speeds and increments are per simulation tick.
type BoatRunnerConfig struct {
	TickRate   int              `yaml:"tick_rate" toml:"tick_rate"`
	Track      TrackConfig      `yaml:"track" toml:"track"`
	Boat       BoatConfig       `yaml:"boat" toml:"boat"`
	Rocks      RocksConfig      `yaml:"rocks" toml:"rocks"`
	Sea        SeaConfig        `yaml:"sea" toml:"sea"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
}

// TrackConfig defines the scrolling lane geometry shared by every lane.
type TrackConfig struct {
	BaseSpeed        float64   `yaml:"base_speed" toml:"base_speed"`
	LaneSlots        []float64 `yaml:"lane_slots" toml:"lane_slots"`               // discrete lateral spawn positions
	RecycleThreshold float64   `yaml:"recycle_threshold" toml:"recycle_threshold"` // near-camera z where rocks respawn
	MinSpawnGap      float64   `yaml:"min_spawn_gap" toml:"min_spawn_gap"`         // minimum z distance between a respawned rock and any other
}

// BoatConfig defines the player boat.
type BoatConfig struct {
	Z           float64 `yaml:"z" toml:"z"`
	MinX        float64 `yaml:"min_x" toml:"min_x"`
	MaxX        float64 `yaml:"max_x" toml:"max_x"`
	Step        float64 `yaml:"step" toml:"step"`
	BankDegrees float64 `yaml:"bank_degrees" toml:"bank_degrees"`
	Scale       Vec3    `yaml:"scale" toml:"scale"`
}

// RocksConfig defines the obstacle lanes.
type RocksConfig struct {
	Lanes       []RockLane `yaml:"lanes" toml:"lanes"`
	VerticalMin float64    `yaml:"vertical_min" toml:"vertical_min"`
	VerticalMax float64    `yaml:"vertical_max" toml:"vertical_max"`
	Scale       Vec3       `yaml:"scale" toml:"scale"`
}

// RockLane is one obstacle lane. Its values are also the reset state.
type RockLane struct {
	SpawnFar       float64 `yaml:"spawn_far" toml:"spawn_far"`
	InitialLateral float64 `yaml:"initial_lateral" toml:"initial_lateral"`
}

// SeaConfig defines the scrolling sea plane.
type SeaConfig struct {
	Y          float64 `yaml:"y" toml:"y"`
	TileLength float64 `yaml:"tile_length" toml:"tile_length"` // distance after which the texture repeats
	Scale      Vec3    `yaml:"scale" toml:"scale"`
}

// CollisionConfig holds the empirically tuned footprint sizes.
type CollisionConfig struct {
	RockHalfWidth float64 `yaml:"rock_half_width" toml:"rock_half_width"`
	RockHalfDepth float64 `yaml:"rock_half_depth" toml:"rock_half_depth"`
	BoatHalfWidth float64 `yaml:"boat_half_width" toml:"boat_half_width"`
	BoatHalfDepth float64 `yaml:"boat_half_depth" toml:"boat_half_depth"`
	MinCosFactor  float64 `yaml:"min_cos_factor" toml:"min_cos_factor"` // floor for |cos(yaw)| so rotated rocks keep some width
}

// DifficultyConfig defines the speed ramp added to every lane.
type DifficultyConfig struct {
	Rate    float64 `yaml:"rate" toml:"rate"`       // ramp increment per running tick
	Ceiling float64 `yaml:"ceiling" toml:"ceiling"` // maximum ramp value
}

// CameraConfig defines both camera framings and the projection.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees" toml:"fov_degrees"`
	Near       float64 `yaml:"near" toml:"near"`
	Far        float64 `yaml:"far" toml:"far"`
	FlipY      bool    `yaml:"flip_y" toml:"flip_y"` // clip-space Y points down
	GameEye    Vec3    `yaml:"game_eye" toml:"game_eye"`
	GameTarget Vec3    `yaml:"game_target" toml:"game_target"`
	MenuEye    Vec3    `yaml:"menu_eye" toml:"menu_eye"`
	SignAt     Vec3    `yaml:"sign_at" toml:"sign_at"` // menu framing looks here
	SignScale  Vec3    `yaml:"sign_scale" toml:"sign_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
