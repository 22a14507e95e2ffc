package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/audio"
	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui/term"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableFocus()
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()
	defer screen.Fini()

	queue := game.NewFrameQueue()
	renderer := term.NewRenderer(screen)
	engine := game.NewEngine(append(cfg.EngineOptions(logger),
		game.WithScheduler(queue),
		game.WithRenderer(renderer),
	)...)
	cfg.Apply(engine)

	var sounds term.Muter
	if !cfg.Mute {
		if sm := startAudio(logger); sm != nil {
			defer sm.Cleanup()
			engine.AddListener(sm)
			sounds = sm
		}
	}

	run(screen, engine, queue, renderer, sounds)
	logger.Printf("exiting with high score %d", engine.HighScore())
}

// startAudio returns nil when no audio device is usable
func startAudio(logger *log.Logger) *audio.SoundManager {
	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Printf("audio: %v, continuing without audio", err)
		return nil
	}
	return sounds
}

// run owns the engine until the player quits. sounds may be nil.
func run(screen tcell.Screen, engine *game.Engine, queue *game.FrameQueue, renderer *term.Renderer, sounds term.Muter) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	// PollEvent blocks, so it gets its own goroutine; the engine is only
	// touched from this loop
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	renderer.Draw(engine.Snapshot())
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if term.HandleEvent(engine, ev, sounds) {
				return
			}
			if engine.Phase() != types.Playing {
				renderer.Draw(engine.Snapshot())
			}

		case now := <-ticker.C:
			// while playing the engine renders after each drained frame
			queue.Pump(now)
		}
	}
}
