package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snakesim/game"
	"snakesim/game/types"
)

const (
	borderPadding = 10 // Padding around game area
)

// Renderer draws one engine snapshot per frame: grid, snake, food, the
// powerup on the grid, and a side panel with score and effect state.
type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	statsPanel      int32
	gameWidth       int32
	gameHeight      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window
	r.statsPanel = r.screenWidth / 5
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

// kindColor maps a powerup kind to its draw color.
func kindColor(k types.PowerupKind) rl.Color {
	switch k {
	case types.PowerupShield:
		return rl.SkyBlue
	case types.PowerupGhost:
		return rl.Purple
	case types.PowerupDouble:
		return rl.Gold
	case types.PowerupSlow:
		return rl.Violet
	default:
		return rl.White
	}
}

// Draw renders a full frame from the snapshot.
func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Fit the grid into the available game area
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2
	cellW := availableWidth / int32(snap.Grid.Width)
	cellH := availableHeight / int32(snap.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Color{R: 20, G: 20, B: 20, A: 255})

	if snap.Food != nil {
		r.drawCell(*snap.Food, rl.Red)
	}
	if snap.Powerup != nil {
		r.drawCell(snap.Powerup.Pos, kindColor(snap.Powerup.Kind))
	}
	for i, cell := range snap.Cells {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		r.drawCell(cell, color)
	}

	r.drawStatsPanel(snap)
	r.drawOverlay(snap)

	rl.EndDrawing()
}

// drawCell fills one grid cell, converting from 1-indexed grid coordinates.
func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X-1)*r.cellSize+1,
		r.offsetY+int32(p.Y-1)*r.cellSize+1,
		r.cellSize-2,
		r.cellSize-2,
		color,
	)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot) {
	x := r.gameWidth + 10
	fontSize := min(r.screenHeight/40, r.statsPanel/10)
	lineHeight := fontSize + fontSize/2
	y := int32(borderPadding)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, fontSize, color)
		y += lineHeight
	}

	line(fmt.Sprintf("State: %s", snap.State), rl.White)
	line(fmt.Sprintf("Score: %d", snap.Score), rl.White)
	line(fmt.Sprintf("High: %d", snap.SessionHigh), rl.White)
	line(fmt.Sprintf("Rounds: %d", snap.RoundsPlayed), rl.Gray)

	y += lineHeight / 2
	if snap.Shield {
		line("Shield: ready", rl.SkyBlue)
	} else {
		line("Shield: -", rl.Gray)
	}
	if snap.Effect != nil {
		line(fmt.Sprintf("%s: %.1fs", snap.Effect.Kind, snap.Effect.Remaining.Seconds()),
			kindColor(snap.Effect.Kind))
	} else {
		line("Effect: -", rl.Gray)
	}
	if snap.Powerup != nil {
		line(fmt.Sprintf("On grid: %s %.1fs", snap.Powerup.Kind, snap.Powerup.TTL.Seconds()),
			kindColor(snap.Powerup.Kind))
	}

	y = r.screenHeight - lineHeight*2
	id := snap.RoundID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	rl.DrawText(fmt.Sprintf("Round %s", id), x, y, fontSize, rl.DarkGray)
}

// drawOverlay prints the round-state banner centered over the grid.
func (r *Renderer) drawOverlay(snap game.Snapshot) {
	var text string
	switch snap.State {
	case types.RoundNotStarted:
		text = "Press an arrow key to start"
	case types.RoundPaused:
		text = "Paused"
	case types.RoundEnded:
		text = "Game over - R to restart"
	default:
		return
	}
	fontSize := r.screenHeight / 25
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-width)/2,
		r.offsetY+r.totalGridHeight/2-fontSize/2,
		fontSize, rl.RayWhite)
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
