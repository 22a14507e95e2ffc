package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/ui/ebitenui"
)

func main() {
	cfg := config.Register(flag.CommandLine, true)
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

	if !cfg.Mute {
		engine.AddListener(ebitenui.NewSounds())
	}

	w, h := ebitenui.ScreenSize()
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ebitenui.NewGame(engine, queue)); err != nil {
		logger.Printf("ebiten: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Printf("exiting with high score %d", engine.HighScore())
}
