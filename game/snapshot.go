package game

import (
	"time"

	"github.com/google/uuid"

	"snakesim/game/types"
)

// PowerupView describes the powerup currently on the grid.
type PowerupView struct {
	Kind types.PowerupKind
	Pos  types.Point
	TTL  time.Duration
}

// EffectView describes the active timed effect.
type EffectView struct {
	Kind      types.PowerupKind
	Remaining time.Duration
}

// Snapshot is a read-only copy of the simulation state, produced once per
// frame for rendering and HUD. Mutating a snapshot never affects the
// engine.
type Snapshot struct {
	State     types.RoundState
	Grid      types.Grid
	WrapWalls bool

	Cells   []types.Point // snake body, head first
	Food    *types.Point
	Powerup *PowerupView
	Effect  *EffectView
	Shield  bool

	Score        int
	SessionHigh  int
	RoundsPlayed int
	RoundID      uuid.UUID
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:        g.state.State(),
		Grid:         g.grid,
		WrapWalls:    g.cfg.WrapWalls,
		Cells:        g.snake.Cells(),
		Shield:       g.powerups.HasShield(),
		Score:        g.score,
		SessionHigh:  g.stats.SessionHigh,
		RoundsPlayed: g.stats.RoundsPlayed,
		RoundID:      g.stats.RoundID,
	}
	if g.hasFood {
		food := g.food
		snap.Food = &food
	}
	if pu, ok := g.powerups.Powerup(); ok {
		snap.Powerup = &PowerupView{Kind: pu.Kind, Pos: pu.Pos, TTL: pu.TTL}
	}
	if eff, ok := g.powerups.Effect(); ok {
		snap.Effect = &EffectView{Kind: eff.Kind, Remaining: eff.Remaining}
	}
	return snap
}
