package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/ui"
)

func main() {
	cfg := config.Register(flag.CommandLine, false)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, closer, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	queue := game.NewFrameQueue()
	engine := game.NewEngine(append(cfg.EngineOptions(logger), game.WithScheduler(queue))...)
	cfg.Apply(engine)

	rl.InitWindow(960, 600, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() {
		if ui.HandleInput(engine) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		// Pause is a no-op unless a game is running
		if !rl.IsWindowFocused() {
			engine.Pause()
		}
		queue.Pump(time.Now())
		renderer.Draw(engine.Snapshot(), engine.History())
	}

	logger.Printf("exiting with high score %d", engine.HighScore())
}
