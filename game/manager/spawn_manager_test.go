package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snakesim/game/entity"
	"snakesim/game/types"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestSpawnFoodAvoidsSnakeAndPowerup(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	sm := NewSpawnManager(grid, newTestRNG())
	snake := entity.NewSnake(types.Point{X: 3, Y: 2}, types.DirRight, 3)
	powerup := &entity.Powerup{Kind: types.PowerupGhost, Pos: types.Point{X: 4, Y: 4}}

	for i := 0; i < 50; i++ {
		food := sm.SpawnFood(snake, powerup)
		if !grid.Contains(food) {
			t.Fatalf("food %v out of bounds", food)
		}
		if snake.Occupies(food, false) {
			t.Fatalf("food %v spawned on the snake", food)
		}
		if food == powerup.Pos {
			t.Fatalf("food %v spawned on the powerup cell", food)
		}
	}
}

func TestSpawnFoodFallbackOnFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	sm := NewSpawnManager(grid, newTestRNG())

	// Snake covering every cell
	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, types.DirRight, 1)
	snake.PushHead(types.Point{X: 2, Y: 1})
	snake.PushHead(types.Point{X: 2, Y: 2})
	snake.PushHead(types.Point{X: 1, Y: 2})

	food := sm.SpawnFood(snake, nil)
	if food != FoodFallback {
		t.Errorf("food = %v, want fallback %v on a full grid", food, FoodFallback)
	}
}

func TestSpawnPowerupAvoidsFood(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	sm := NewSpawnManager(grid, newTestRNG())
	snake := entity.NewSnake(types.Point{X: 3, Y: 2}, types.DirRight, 3)
	food := types.Point{X: 4, Y: 4}

	for i := 0; i < 50; i++ {
		pos, ok := sm.SpawnPowerup(snake, food, true)
		if !ok {
			t.Fatal("spawn failed on a mostly free grid")
		}
		if !grid.Contains(pos) {
			t.Fatalf("powerup %v out of bounds", pos)
		}
		if snake.Occupies(pos, false) {
			t.Fatalf("powerup %v spawned on the snake", pos)
		}
		if pos == food {
			t.Fatalf("powerup %v spawned on the food cell", pos)
		}
	}
}

func TestSpawnPowerupFailsOnFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	sm := NewSpawnManager(grid, newTestRNG())

	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, types.DirRight, 1)
	snake.PushHead(types.Point{X: 2, Y: 1})
	snake.PushHead(types.Point{X: 2, Y: 2})
	snake.PushHead(types.Point{X: 1, Y: 2})

	if _, ok := sm.SpawnPowerup(snake, types.Point{}, false); ok {
		t.Error("spawn must report failure when no cell is free")
	}
}

func TestPickKindRange(t *testing.T) {
	sm := NewSpawnManager(types.Grid{Width: 4, Height: 4}, newTestRNG())
	seen := make(map[types.PowerupKind]bool)
	for i := 0; i < 200; i++ {
		k := sm.PickKind()
		if k < 0 || k >= types.NumPowerupKinds {
			t.Fatalf("kind %d out of range", k)
		}
		seen[k] = true
	}
	if len(seen) != types.NumPowerupKinds {
		t.Errorf("only %d of %d kinds drawn in 200 samples", len(seen), types.NumPowerupKinds)
	}
}
