// Package config holds the command-line settings shared by every host binary.
package config

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/store"
	"snake-classic/ui/palette"
)

const DefaultDataPath = "data/snake.json"

type Config struct {
	Difficulty string
	Theme      string
	DataPath   string
	Seed       uint64
	LogPath    string
	Mute       bool
}

// Register binds the host flags on fs. Audio hosts also get -mute.
func Register(fs *flag.FlagSet, audio bool) *Config {
	c := &Config{}
	fs.StringVar(&c.Difficulty, "difficulty", "", "easy, medium, hard or expert (default: last used)")
	fs.StringVar(&c.Theme, "theme", "", "classic, neon, dark or nature (default: last used)")
	fs.StringVar(&c.DataPath, "data", DefaultDataPath, "save file; .msgpack selects the binary format, empty keeps scores in memory")
	fs.Uint64Var(&c.Seed, "seed", 0, "food placement seed, 0 for time based")
	fs.StringVar(&c.LogPath, "log", "", "log file, - for stderr")
	if audio {
		fs.BoolVar(&c.Mute, "mute", false, "disable sound")
	}
	return c
}

// Validate rejects unknown difficulty and theme names
func (c *Config) Validate() error {
	if c.Difficulty != "" {
		if _, ok := types.ParseDifficulty(c.Difficulty); !ok {
			return errors.Errorf("unknown difficulty %q", c.Difficulty)
		}
	}
	if c.Theme != "" && !palette.Exists(c.Theme) {
		return errors.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenLog returns the logger selected by -log. Close the returned closer on exit.
func (c *Config) OpenLog() (*log.Logger, io.Closer, error) {
	switch c.LogPath {
	case "":
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	case "-":
		return log.New(os.Stderr, "snake: ", log.LstdFlags), nopCloser{}, nil
	}

	if dir := filepath.Dir(c.LogPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, errors.Wrap(err, "create log dir")
		}
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log")
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f, nil
}

// Store opens the save file, or an in-memory store when -data is empty
func (c *Config) Store() store.Store {
	if c.DataPath == "" {
		return store.NewMemoryStore()
	}
	return store.NewFileStore(c.DataPath)
}

// EngineOptions translates the flags into engine options
func (c *Config) EngineOptions(logger *log.Logger) []game.Option {
	return []game.Option{
		game.WithStore(c.Store()),
		game.WithSeed(c.Seed),
		game.WithLogger(logger),
	}
}

// Apply overrides the saved difficulty and theme with any given on the command line
func (c *Config) Apply(e *game.Engine) {
	if d, ok := types.ParseDifficulty(c.Difficulty); ok {
		e.SetDifficulty(d)
	}
	if c.Theme != "" {
		e.SetTheme(c.Theme)
	}
}
