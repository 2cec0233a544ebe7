package entity

import (
	"time"

	"snakesim/game/types"
)

// Powerup is a collectible instance on the grid. At most one exists at a
// time; it vanishes when TTL runs out.
type Powerup struct {
	Kind types.PowerupKind
	Pos  types.Point
	TTL  time.Duration
}

// Effect is the single active timed effect. Shield is not an Effect; it is
// a one-shot flag tracked separately and may coexist with one of these.
type Effect struct {
	Kind      types.PowerupKind
	Remaining time.Duration
}
