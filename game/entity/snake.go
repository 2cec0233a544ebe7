package entity

import (
	"snakesim/game/types"
)

// Snake is the ordered body of the snake, head first. Duplicate cells are
// only possible while a Ghost effect lets the head pass through the body.
type Snake struct {
	body []types.Point
}

// NewSnake builds a snake of the given length with its head at startPos,
// trailing opposite to dir.
func NewSnake(startPos types.Point, dir types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	cell := startPos
	for i := 0; i < length; i++ {
		body[i] = cell
		cell = cell.Add(back)
	}
	return &Snake{body: body}
}

// Head returns the current head cell.
func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// PushHead inserts a new head cell in front of the body.
func (s *Snake) PushHead(p types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = p
}

// PopTail removes the last segment. The body never shrinks below one cell.
func (s *Snake) PopTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Occupies reports whether p is covered by a body segment. With excludeTail
// set, the last segment is skipped; the caller uses that when the tail is
// about to vacate its cell this tick.
func (s *Snake) Occupies(p types.Point, excludeTail bool) bool {
	n := len(s.body)
	if excludeTail {
		n--
	}
	for i := 0; i < n; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}
