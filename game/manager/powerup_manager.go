package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snakesim/game/entity"
	"snakesim/game/types"
)

// PowerupManager runs the powerup slot lifecycle
//
//	Empty -> (spawn timer expires) -> Present(kind, ttl) -> Collected|Expired -> Empty
//
// and owns the resulting gameplay modifiers: the single timed effect and
// the one-shot shield flag.
type PowerupManager struct {
	enabled bool
	rng     *rand.Rand
	spawner *SpawnManager

	spawnDelayMin time.Duration
	spawnDelayMax time.Duration
	ttl           time.Duration
	effectDur     time.Duration

	powerup     *entity.Powerup
	effect      *entity.Effect
	shield      bool
	nextSpawnIn time.Duration
}

func NewPowerupManager(spawner *SpawnManager, rng *rand.Rand, enabled bool,
	spawnDelayMin, spawnDelayMax, ttl, effectDur time.Duration) *PowerupManager {
	pm := &PowerupManager{
		enabled:       enabled,
		rng:           rng,
		spawner:       spawner,
		spawnDelayMin: spawnDelayMin,
		spawnDelayMax: spawnDelayMax,
		ttl:           ttl,
		effectDur:     effectDur,
	}
	pm.Reset()
	return pm
}

// Reset clears the slot, the timed effect and the shield, and draws a fresh
// spawn countdown.
func (pm *PowerupManager) Reset() {
	pm.powerup = nil
	pm.effect = nil
	pm.shield = false
	pm.nextSpawnIn = pm.drawSpawnDelay()
}

// drawSpawnDelay picks the next spawn countdown uniformly from the
// configured [min, max] range.
func (pm *PowerupManager) drawSpawnDelay() time.Duration {
	span := pm.spawnDelayMax - pm.spawnDelayMin
	if span <= 0 {
		return pm.spawnDelayMin
	}
	return pm.spawnDelayMin + time.Duration(pm.rng.Int63n(int64(span)+1))
}

// Tick advances all countdowns by elapsed: the active effect, the slot's
// ttl while Present, and the spawn timer while Empty. A failed spawn
// attempt redraws the countdown so spawning never stalls permanently.
func (pm *PowerupManager) Tick(elapsed time.Duration, snake *entity.Snake, food types.Point, hasFood bool) {
	if pm.effect != nil {
		pm.effect.Remaining -= elapsed
		if pm.effect.Remaining <= 0 {
			pm.effect = nil
		}
	}

	if !pm.enabled {
		return
	}

	if pm.powerup != nil {
		pm.powerup.TTL -= elapsed
		if pm.powerup.TTL <= 0 {
			// Expired uncollected
			pm.powerup = nil
			pm.nextSpawnIn = pm.drawSpawnDelay()
		}
		return
	}

	pm.nextSpawnIn -= elapsed
	if pm.nextSpawnIn > 0 {
		return
	}
	if pos, ok := pm.spawner.SpawnPowerup(snake, food, hasFood); ok {
		pm.powerup = &entity.Powerup{
			Kind: pm.spawner.PickKind(),
			Pos:  pos,
			TTL:  pm.ttl,
		}
	} else {
		pm.nextSpawnIn = pm.drawSpawnDelay()
	}
}

// CollectAt consumes the powerup if it sits on pos and applies its effect:
// Shield sets the one-shot flag (idempotent), any timed kind replaces the
// current effect with a full-duration instance. Reports whether a pickup
// happened.
func (pm *PowerupManager) CollectAt(pos types.Point) bool {
	if pm.powerup == nil || pm.powerup.Pos != pos {
		return false
	}
	kind := pm.powerup.Kind
	pm.powerup = nil
	pm.nextSpawnIn = pm.drawSpawnDelay()
	pm.Grant(kind)
	return true
}

// Grant applies a powerup effect directly, as if the kind had just been
// collected: Shield charges the one-shot flag (reapplying is a no-op),
// any timed kind pre-empts the running effect with a full duration.
func (pm *PowerupManager) Grant(kind types.PowerupKind) {
	switch kind {
	case types.PowerupShield:
		pm.shield = true
	case types.PowerupGhost, types.PowerupDouble, types.PowerupSlow:
		pm.effect = &entity.Effect{Kind: kind, Remaining: pm.effectDur}
	}
}

// HasShield reports whether the one-shot shield is charged.
func (pm *PowerupManager) HasShield() bool {
	return pm.shield
}

// ConsumeShield spends the shield charge.
func (pm *PowerupManager) ConsumeShield() {
	pm.shield = false
}

func (pm *PowerupManager) effectActive(kind types.PowerupKind) bool {
	return pm.effect != nil && pm.effect.Kind == kind
}

// GhostActive reports whether self-collision checks are suspended.
func (pm *PowerupManager) GhostActive() bool {
	return pm.effectActive(types.PowerupGhost)
}

// DoubleActive reports whether food scores double.
func (pm *PowerupManager) DoubleActive() bool {
	return pm.effectActive(types.PowerupDouble)
}

// SlowActive reports whether the tick interval is stretched.
func (pm *PowerupManager) SlowActive() bool {
	return pm.effectActive(types.PowerupSlow)
}

// Powerup returns a copy of the powerup on the grid, if any.
func (pm *PowerupManager) Powerup() (entity.Powerup, bool) {
	if pm.powerup == nil {
		return entity.Powerup{}, false
	}
	return *pm.powerup, true
}

// Effect returns a copy of the active timed effect, if any.
func (pm *PowerupManager) Effect() (entity.Effect, bool) {
	if pm.effect == nil {
		return entity.Effect{}, false
	}
	return *pm.effect, true
}

// NextSpawnIn returns the remaining spawn countdown while the slot is empty.
func (pm *PowerupManager) NextSpawnIn() time.Duration {
	return pm.nextSpawnIn
}
