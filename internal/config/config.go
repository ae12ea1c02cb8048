// Package config holds the tuning values for the runner simulation.
// Defaults live in const blocks; a data file can override the values that
// vary per installation (speeds, pool sizes, audio volume).
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Lanes (in world units).
const (
	LaneCount    = 3
	LaneDistance = 3.0
	// LaneSmoothing is the per-tick fraction of the remaining lateral
	// distance closed each frame. Must stay below 1 so the approach
	// never overshoots.
	LaneSmoothing = 0.1
)

// Forward speed (world units per tick).
const (
	BaseSpeed = 0.12
	MaxSpeed  = 0.30
	// SpeedRamp is added to speed every tick until MaxSpeed.
	SpeedRamp = 0.00002
)

// Jump and slide (units per second, seconds).
const (
	Gravity      = -30.0
	JumpVelocity = 9.0
)

// Animation clip durations in milliseconds.
const (
	JumpAnimMillis = 800
	RollAnimMillis = 1190
)

// Obstacle pool.
const (
	MaxBarriers       = 10
	FirstBarrierZ     = -40.0
	MinBarrierSpacing = 25.0
)

// Recycle thresholds: entities past these Z values are behind the viewer
// and get repositioned. Near pools sit close to the camera, far pools are
// background layers that stay visible longer.
const (
	NearRecycleZ = 10.0
	FarRecycleZ  = 50.0
)

// Coin pool. Coins respawn at a random Z in [CoinRespawnMinZ, CoinRespawnMaxZ],
// independent of the barrier spacing cursor.
const (
	MaxCoins        = 10
	CoinRespawnMinZ = -100.0
	CoinRespawnMaxZ = -50.0
	CoinSpinRate    = 4.0 // radians per second
)

// Environment layers.
const (
	RoadSegmentCount   = 6
	RoadSegmentSpacing = 20.0
	BuildingCount      = 8 // per side
	BuildingSpacing    = 15.0
	BuildingOffsetX    = 8.0
	CloudCount         = 12
	CloudSpacing       = 12.0
	CloudSpreadX       = 40.0
	CloudHeightY       = 14.0
	// CloudSpeedDivisor slows the background layer for parallax.
	CloudSpeedDivisor = 4.0
)

// Input.
const (
	// SwipeThreshold is the minimum touch displacement in pixels before a
	// gesture is treated as a swipe rather than a tap.
	SwipeThreshold = 10
)

// Scoring.
const (
	BaseMultiplier = 1
)

// Config carries the values that a data file may override.
type Config struct {
	BaseSpeed    float64 `json:"base_speed"`
	MaxSpeed     float64 `json:"max_speed"`
	MaxBarriers  int     `json:"max_barriers"`
	MaxCoins     int     `json:"max_coins"`
	MasterVolume float64 `json:"master_volume"`
}

// Default returns the built-in tuning values.
func Default() *Config {
	return &Config{
		BaseSpeed:    BaseSpeed,
		MaxSpeed:     MaxSpeed,
		MaxBarriers:  MaxBarriers,
		MaxCoins:     MaxCoins,
		MasterVolume: 0.8,
	}
}

// Load reads a config override file. A missing file is not an error: the
// defaults are returned so the game runs without any data directory.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("base_speed must be positive, got %v", c.BaseSpeed)
	}
	if c.MaxSpeed < c.BaseSpeed {
		return fmt.Errorf("max_speed %v is below base_speed %v", c.MaxSpeed, c.BaseSpeed)
	}
	if c.MaxBarriers < 1 {
		return fmt.Errorf("max_barriers must be at least 1, got %d", c.MaxBarriers)
	}
	if c.MaxCoins < 1 {
		return fmt.Errorf("max_coins must be at least 1, got %d", c.MaxCoins)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master_volume must be in [0,1], got %v", c.MasterVolume)
	}
	return nil
}
