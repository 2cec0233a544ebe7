package game

import (
	"fmt"
	"time"
)

// Config is the engine construction surface. It is validated once by
// NewGame and immutable afterwards.
type Config struct {
	GridWidth  int
	GridHeight int

	BaseInterval time.Duration // tick interval at score 0
	MinInterval  time.Duration // floor when speed scaling is enabled
	SpeedScaling bool          // shorten the interval as score grows
	WrapWalls    bool          // wrap instead of fatal wall collisions

	PowerupsEnabled bool
	SpawnDelayMin   time.Duration // powerup spawn countdown range
	SpawnDelayMax   time.Duration
	PowerupTTL      time.Duration // lifetime of an uncollected powerup
	EffectDuration  time.Duration // duration of Ghost/Double/Slow

	// Seed fixes the RNG for reproducible rounds. Zero picks a
	// time-based seed.
	Seed uint64
}

// DefaultConfig returns a playable baseline configuration.
func DefaultConfig() Config {
	return Config{
		GridWidth:       32,
		GridHeight:      24,
		BaseInterval:    120 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		SpeedScaling:    true,
		WrapWalls:       false,
		PowerupsEnabled: true,
		SpawnDelayMin:   4 * time.Second,
		SpawnDelayMax:   10 * time.Second,
		PowerupTTL:      6 * time.Second,
		EffectDuration:  5 * time.Second,
	}
}

// Validate reports the first construction-time configuration error.
func (c Config) Validate() error {
	if c.GridWidth < 3 || c.GridHeight < 3 {
		return fmt.Errorf("grid %dx%d too small, need at least 3x3", c.GridWidth, c.GridHeight)
	}
	if c.BaseInterval <= 0 {
		return fmt.Errorf("base interval %v must be positive", c.BaseInterval)
	}
	if c.MinInterval <= 0 || c.MinInterval > c.BaseInterval {
		return fmt.Errorf("min interval %v must be in (0, %v]", c.MinInterval, c.BaseInterval)
	}
	if c.PowerupsEnabled {
		if c.SpawnDelayMin < 0 || c.SpawnDelayMax < c.SpawnDelayMin {
			return fmt.Errorf("spawn delay range [%v, %v] invalid", c.SpawnDelayMin, c.SpawnDelayMax)
		}
		if c.PowerupTTL <= 0 {
			return fmt.Errorf("powerup ttl %v must be positive", c.PowerupTTL)
		}
		if c.EffectDuration <= 0 {
			return fmt.Errorf("effect duration %v must be positive", c.EffectDuration)
		}
	}
	return nil
}
