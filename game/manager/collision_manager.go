package manager

import (
	"snakesim/game/entity"
	"snakesim/game/types"
)

// CollisionManager evaluates wall and self-collision hazards for a
// candidate head cell. Shield consumption is decided by the caller, which
// holds the single per-tick shield budget shared by both hazard checks.
type CollisionManager struct {
	grid      types.Grid
	wrapWalls bool
}

func NewCollisionManager(grid types.Grid, wrapWalls bool) *CollisionManager {
	return &CollisionManager{
		grid:      grid,
		wrapWalls: wrapWalls,
	}
}

// ResolveWall normalizes a candidate head cell against the walls. With
// wrapping enabled the cell is wrapped and never counts as a hit. Without
// wrapping, an out-of-bounds cell is a hit and is returned clamped to the
// nearest in-bounds cell so a shield-saved move has somewhere to land.
func (cm *CollisionManager) ResolveWall(pos types.Point) (types.Point, bool) {
	if cm.wrapWalls {
		return cm.grid.Wrap(pos), false
	}
	if !cm.grid.Contains(pos) {
		return cm.grid.Clamp(pos), true
	}
	return pos, false
}

// IsSelfCollision tests the candidate head cell against the body. The tail
// segment is excluded only when the snake will not grow this tick, because
// only then does the tail vacate its cell. An active Ghost effect disables
// the check entirely.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake, pos types.Point, willEat, ghost bool) bool {
	if ghost {
		return false
	}
	return snake.Occupies(pos, !willEat)
}
