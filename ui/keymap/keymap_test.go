package keymap

import (
	"testing"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/store"
)

func TestForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Action
	}{
		{'w', MoveUp},
		{'W', MoveUp},
		{'l', MoveRight},
		{' ', TogglePause},
		{'3', Hard},
		{'q', Quit},
		{'z', None},
	}
	for _, tt := range tests {
		if got := ForRune(tt.r); got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	e := game.NewEngine(game.WithStore(store.NewMemoryStore()), game.WithSeed(7))

	Apply(e, MoveUp)
	if e.Phase() != types.Waiting {
		t.Fatal("moving should not start the game")
	}
	Apply(e, Start)
	if e.Phase() != types.Playing {
		t.Fatalf("expected playing, got %s", e.Phase())
	}
	Apply(e, TogglePause)
	if e.Phase() != types.Paused {
		t.Fatalf("expected paused, got %s", e.Phase())
	}
	Apply(e, Expert)
	if e.Difficulty() != types.Expert {
		t.Errorf("difficulty: got %s", e.Difficulty())
	}
	Apply(e, NextTheme)
	if e.Theme() == "classic" {
		t.Error("theme should have changed")
	}
	Apply(e, Reset)
	if e.Phase() != types.Waiting {
		t.Errorf("expected waiting after reset, got %s", e.Phase())
	}
	if !Apply(e, Quit) {
		t.Error("quit should be reported")
	}
}
