package manager

import (
	"testing"

	"snakesim/game/entity"
	"snakesim/game/types"
)

func TestResolveWallWrapping(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5}, true)

	pos, hit := cm.ResolveWall(types.Point{X: 6, Y: 3})
	if hit {
		t.Error("wrapping grid must never report a wall hit")
	}
	if pos != (types.Point{X: 1, Y: 3}) {
		t.Errorf("wrapped position = %v, want (1,3)", pos)
	}
}

func TestResolveWallBounded(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5}, false)

	pos, hit := cm.ResolveWall(types.Point{X: 3, Y: 3})
	if hit || pos != (types.Point{X: 3, Y: 3}) {
		t.Errorf("in-bounds cell reported as hit (%v, %t)", pos, hit)
	}

	pos, hit = cm.ResolveWall(types.Point{X: 6, Y: 3})
	if !hit {
		t.Fatal("out-of-bounds cell must report a wall hit")
	}
	if pos != (types.Point{X: 5, Y: 3}) {
		t.Errorf("clamped position = %v, want (5,3)", pos)
	}
}

func TestSelfCollisionTailExclusion(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 8, Height: 8}, false)

	// Body in a hook so the head can reach the tail cell:
	// (2,3) head, (2,2), (3,2), (3,3) tail
	s := entity.NewSnake(types.Point{X: 3, Y: 3}, types.DirRight, 1)
	s.PushHead(types.Point{X: 3, Y: 2})
	s.PushHead(types.Point{X: 2, Y: 2})
	s.PushHead(types.Point{X: 2, Y: 3})
	tail := types.Point{X: 3, Y: 3}

	// Tail vacates when not eating: safe to enter
	if cm.IsSelfCollision(s, tail, false, false) {
		t.Error("tail cell must be safe when the snake will not grow")
	}
	// Growth keeps the tail in place: fatal
	if !cm.IsSelfCollision(s, tail, true, false) {
		t.Error("tail cell must be fatal when the snake grows this tick")
	}
	// Mid-body is always fatal without ghost
	if !cm.IsSelfCollision(s, types.Point{X: 2, Y: 2}, false, false) {
		t.Error("mid body cell must be fatal")
	}
}

func TestGhostDisablesSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 8, Height: 8}, false)
	s := entity.NewSnake(types.Point{X: 4, Y: 4}, types.DirRight, 3)

	if cm.IsSelfCollision(s, types.Point{X: 3, Y: 4}, false, true) {
		t.Error("ghost must disable the self-collision check")
	}
}
