package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snakesim/ai"
	"snakesim/game"
	"snakesim/game/types"
	"snakesim/ui"
)

func main() {
	width := flag.Int("width", 32, "Grid width in cells")
	height := flag.Int("height", 24, "Grid height in cells")
	speed := flag.Int("speed", 120, "Base tick interval in milliseconds")
	wrap := flag.Bool("wrap", false, "Wrap around walls instead of dying")
	noPowerups := flag.Bool("no-powerups", false, "Disable powerup spawning")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent play")
	qtable := flag.String("qtable", "data/qtable.json", "Q-table file for the autopilot")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 for time-based")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.GridWidth = *width
	cfg.GridHeight = *height
	cfg.BaseInterval = time.Duration(*speed) * time.Millisecond
	cfg.WrapWalls = *wrap
	cfg.PowerupsEnabled = !*noPowerups
	cfg.Seed = *seed
	if cfg.MinInterval > cfg.BaseInterval {
		cfg.MinInterval = cfg.BaseInterval
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var agent *ai.Agent
	if *autopilot {
		agent = ai.NewAgent(*seed)
		if err := agent.Load(*qtable); err == nil {
			log.Printf("loaded q-table from %s (%d games played)", *qtable, agent.GamesPlayed)
		}
	}

	rl.InitWindow(1280, 800, "snakesim")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastFrame := time.Now()

	var prevState ai.State
	var prevAction ai.Action
	prevScore := 0
	observed := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			g.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.Restart()
			prevScore = 0
			observed = false
		}

		if agent != nil {
			snap := g.Snapshot()
			if snap.State == types.RoundEnded {
				if observed {
					agent.Learn(prevState, prevAction, ai.Reward(0, true), ai.Observe(snap))
					observed = false
				}
				agent.GamesPlayed++
				g.Restart()
				prevScore = 0
			}
			snap = g.Snapshot()
			st := ai.Observe(snap)
			if observed {
				agent.Learn(prevState, prevAction, ai.Reward(snap.Score-prevScore, false), st)
			}
			action := agent.ChooseAction(st)
			g.RequestDirection(action.Direction())
			prevState, prevAction, prevScore = st, action, snap.Score
			observed = true
		} else {
			switch {
			case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyW):
				g.RequestDirection(types.DirUp)
			case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyS):
				g.RequestDirection(types.DirDown)
			case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyA):
				g.RequestDirection(types.DirLeft)
			case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyD):
				g.RequestDirection(types.DirRight)
			}
		}

		now := time.Now()
		g.Advance(now.Sub(lastFrame))
		lastFrame = now

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}
		renderer.Draw(g.Snapshot())
	}

	if agent != nil {
		if err := agent.Save(*qtable); err != nil {
			log.Printf("could not save q-table: %v", err)
		}
	}
}
