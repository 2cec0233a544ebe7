package manager

import (
	"golang.org/x/exp/rand"

	"snakesim/game/entity"
	"snakesim/game/types"
)

// FoodFallback is the cell food lands on when rejection sampling finds no
// free cell (grid effectively full). A deterministic policy, not a failure.
var FoodFallback = types.Point{X: 1, Y: 1}

// SpawnManager places food and powerups on free cells via rejection
// sampling bounded by the grid cell count.
type SpawnManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand) *SpawnManager {
	return &SpawnManager{
		grid: grid,
		rng:  rng,
	}
}

func (sm *SpawnManager) randomCell() types.Point {
	return types.Point{
		X: sm.rng.Intn(sm.grid.Width) + 1,
		Y: sm.rng.Intn(sm.grid.Height) + 1,
	}
}

// SpawnFood picks a uniformly random cell not occupied by the snake and not
// claimed by the current powerup. On exhaustion it falls back to
// FoodFallback rather than looping forever.
func (sm *SpawnManager) SpawnFood(snake *entity.Snake, powerup *entity.Powerup) types.Point {
	for i := 0; i < sm.grid.Cells(); i++ {
		cell := sm.randomCell()
		if snake.Occupies(cell, false) {
			continue
		}
		if powerup != nil && cell == powerup.Pos {
			continue
		}
		return cell
	}
	return FoodFallback
}

// SpawnPowerup picks a uniformly random free cell, avoiding the snake and
// the food. It reports failure when sampling is exhausted; the lifecycle
// machine then reschedules a later attempt.
func (sm *SpawnManager) SpawnPowerup(snake *entity.Snake, food types.Point, hasFood bool) (types.Point, bool) {
	for i := 0; i < sm.grid.Cells(); i++ {
		cell := sm.randomCell()
		if snake.Occupies(cell, false) {
			continue
		}
		if hasFood && cell == food {
			continue
		}
		return cell, true
	}
	return types.Point{}, false
}

// PickKind draws a uniformly random powerup kind.
func (sm *SpawnManager) PickKind() types.PowerupKind {
	return types.PowerupKind(sm.rng.Intn(types.NumPowerupKinds))
}
