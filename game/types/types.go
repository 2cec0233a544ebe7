package types

import "time"

// Point is a grid cell position, 1-indexed on both axes.
type Point struct {
	X, Y int
}

// Add returns the cell offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// ToPoint converts a Direction into a unit displacement vector.
// Y grows downward, matching screen coordinates.
func (d Direction) ToPoint() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180-degree reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return DirRight
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// PowerupKind is the closed set of powerup variants.
type PowerupKind int

const (
	PowerupShield PowerupKind = iota
	PowerupGhost
	PowerupDouble
	PowerupSlow
)

// NumPowerupKinds is the size of the PowerupKind enumeration.
const NumPowerupKinds = 4

// Timed reports whether collecting the kind starts a countdown effect.
// Shield is the only untimed kind; it sets a one-shot flag instead.
func (k PowerupKind) Timed() bool {
	return k != PowerupShield
}

func (k PowerupKind) String() string {
	switch k {
	case PowerupShield:
		return "shield"
	case PowerupGhost:
		return "ghost"
	case PowerupDouble:
		return "double"
	case PowerupSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// RoundState governs whether the scheduler drains ticks.
type RoundState int

const (
	RoundNotStarted RoundState = iota
	RoundRunning
	RoundPaused
	RoundEnded
)

func (s RoundState) String() string {
	switch s {
	case RoundNotStarted:
		return "not started"
	case RoundRunning:
		return "running"
	case RoundPaused:
		return "paused"
	case RoundEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Grid represents the game grid dimensions. Cells are addressed
// 1..Width by 1..Height.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 1 && p.X <= g.Width && p.Y >= 1 && p.Y <= g.Height
}

// Wrap normalizes p onto the grid, wrapping each axis independently.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: mod1(p.X, g.Width),
		Y: mod1(p.Y, g.Height),
	}
}

// Clamp moves p to the nearest in-bounds cell.
func (g Grid) Clamp(p Point) Point {
	if p.X < 1 {
		p.X = 1
	} else if p.X > g.Width {
		p.X = g.Width
	}
	if p.Y < 1 {
		p.Y = 1
	} else if p.Y > g.Height {
		p.Y = g.Height
	}
	return p
}

// Cells returns the total number of grid cells. It bounds the spawner's
// rejection sampling loop.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// mod1 wraps v into 1..n.
func mod1(v, n int) int {
	v = (v - 1) % n
	if v < 0 {
		v += n
	}
	return v + 1
}

// Game constants
const (
	SpawnLength = 3 // Snake length at round start

	// SpeedStepPerPoint is the linear tick interval reduction applied per
	// score point when speed scaling is enabled.
	SpeedStepPerPoint = 2 * time.Millisecond
)
