package game

import (
	"time"

	"golang.org/x/exp/rand"

	"snakesim/game/entity"
	"snakesim/game/manager"
	"snakesim/game/types"
)

// Game is a single snake simulation. It owns all mutable round state and
// is driven synchronously: inputs buffer between ticks, Advance drains
// whole ticks, Snapshot exposes a read-only copy for rendering. One Game,
// one goroutine.
type Game struct {
	cfg  Config
	grid types.Grid
	rng  *rand.Rand

	snake   *entity.Snake
	food    types.Point
	hasFood bool

	current types.Direction // direction committed at the last tick boundary
	desired types.Direction // buffered request, committed next tick

	spawner    *manager.SpawnManager
	powerups   *manager.PowerupManager
	collisions *manager.CollisionManager
	state      *manager.StateManager

	score int
	stats *GameStats
}

// NewGame validates cfg and builds a fresh simulation in NotStarted state.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	grid := types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}

	g := &Game{
		cfg:        cfg,
		grid:       grid,
		rng:        rng,
		spawner:    manager.NewSpawnManager(grid, rng),
		collisions: manager.NewCollisionManager(grid, cfg.WrapWalls),
		state:      manager.NewStateManager(cfg.BaseInterval, cfg.MinInterval, cfg.SpeedScaling),
		stats:      newGameStats(),
	}
	g.powerups = manager.NewPowerupManager(g.spawner, rng, cfg.PowerupsEnabled,
		cfg.SpawnDelayMin, cfg.SpawnDelayMax, cfg.PowerupTTL, cfg.EffectDuration)
	g.resetRound()
	return g, nil
}

// resetRound rebuilds all round-scoped entities: snake at spawn length in
// the grid center heading right, fresh food, empty powerup slot, score 0.
func (g *Game) resetRound() {
	start := types.Point{
		X: max(types.SpawnLength, g.grid.Width/2+1),
		Y: g.grid.Height/2 + 1,
	}
	g.snake = entity.NewSnake(start, types.DirRight, types.SpawnLength)
	g.current = types.DirRight
	g.desired = types.DirRight
	g.score = 0
	g.hasFood = false
	g.state.Reset()
	g.powerups.Reset()
	g.spawnFood()
	g.stats.beginRound()
}

// RequestDirection buffers a direction change for the next tick boundary.
// The exact reverse of the committed direction is silently ignored, which
// rules out instant 180-degree self-collisions. The first accepted request
// starts a NotStarted round.
func (g *Game) RequestDirection(d types.Direction) {
	if g.state.State() == types.RoundEnded {
		return
	}
	if d == g.current.Opposite() {
		return
	}
	g.desired = d
	g.state.Start()
}

// TogglePause flips Running and Paused; other states are unaffected.
func (g *Game) TogglePause() {
	g.state.TogglePause()
}

// Restart performs a full reset back to NotStarted from any state,
// discarding partially accumulated tick time.
func (g *Game) Restart() {
	g.resetRound()
}

// State returns the current round state.
func (g *Game) State() types.RoundState {
	return g.state.State()
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.score
}

// Advance feeds elapsed real time into the fixed-step scheduler and runs
// every whole tick that fits. The interval is recomputed after each tick
// because a collected or expired Slow effect changes it, and draining
// stops early once the round ends. Simulation speed is therefore
// independent of how often Advance is called.
func (g *Game) Advance(elapsed time.Duration) {
	if g.state.State() != types.RoundRunning {
		return
	}
	g.state.Accumulate(elapsed)
	for {
		interval := g.state.Interval(g.score, g.powerups.SlowActive())
		if !g.state.TryConsume(interval) {
			return
		}
		g.step(interval)
		if g.state.State() != types.RoundRunning {
			return
		}
	}
}

// shieldCharge is the single per-tick shield budget. Both hazard checks of
// a tick draw from the same charge, so the shield is consumed at most once
// per tick.
type shieldCharge struct {
	powerups *manager.PowerupManager
	spent    bool
}

func (c *shieldCharge) use() bool {
	if c.spent || !c.powerups.HasShield() {
		return false
	}
	c.powerups.ConsumeShield()
	c.spent = true
	return true
}

// step runs one simulation tick. Order is load-bearing: commit direction,
// resolve walls, check food, resolve self-collision, advance, pick up
// powerups, then grow or truncate.
func (g *Game) step(interval time.Duration) {
	// Countdowns advance first, so a powerup whose ttl ran out this tick
	// is gone before the head could land on it.
	g.powerups.Tick(interval, g.snake, g.food, g.hasFood)

	g.current = g.desired
	newHead := g.snake.Head().Add(g.current.ToPoint())

	charge := &shieldCharge{powerups: g.powerups}

	resolved, wallHit := g.collisions.ResolveWall(newHead)
	if wallHit {
		if !charge.use() {
			g.endRound()
			return
		}
		if resolved == g.snake.Head() {
			// The clamped cell is the one the head already occupies: the
			// shield absorbed the whole move and the snake holds position
			// for this tick.
			return
		}
	}
	newHead = resolved

	willEat := g.hasFood && newHead == g.food

	if g.collisions.IsSelfCollision(g.snake, newHead, willEat, g.powerups.GhostActive()) {
		if !charge.use() {
			g.endRound()
			return
		}
	}

	g.snake.PushHead(newHead)

	g.powerups.CollectAt(newHead)

	if willEat {
		gain := 1
		if g.powerups.DoubleActive() {
			gain = 2
		}
		g.score += gain
		g.spawnFood()
	} else {
		g.snake.PopTail()
	}
}

func (g *Game) endRound() {
	g.state.End()
	g.stats.endRound(g.score)
}

func (g *Game) spawnFood() {
	var pu *entity.Powerup
	if p, ok := g.powerups.Powerup(); ok {
		pu = &p
	}
	g.food = g.spawner.SpawnFood(g.snake, pu)
	g.hasFood = true
}
