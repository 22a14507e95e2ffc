package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
	"snake-classic/ui/keymap"
)

var keys = []struct {
	key    int32
	action keymap.Action
}{
	{rl.KeyUp, keymap.MoveUp},
	{rl.KeyW, keymap.MoveUp},
	{rl.KeyDown, keymap.MoveDown},
	{rl.KeyS, keymap.MoveDown},
	{rl.KeyLeft, keymap.MoveLeft},
	{rl.KeyA, keymap.MoveLeft},
	{rl.KeyRight, keymap.MoveRight},
	{rl.KeyD, keymap.MoveRight},
	{rl.KeyEnter, keymap.Start},
	{rl.KeyN, keymap.Start},
	{rl.KeySpace, keymap.TogglePause},
	{rl.KeyP, keymap.TogglePause},
	{rl.KeyR, keymap.Reset},
	{rl.KeyT, keymap.NextTheme},
	{rl.KeyOne, keymap.Easy},
	{rl.KeyTwo, keymap.Medium},
	{rl.KeyThree, keymap.Hard},
	{rl.KeyFour, keymap.Expert},
	{rl.KeyX, keymap.ResetHighScore},
	{rl.KeyQ, keymap.Quit},
}

// HandleInput applies this frame's key presses to the engine in a fixed
// order. It returns true when the player asked to quit.
func HandleInput(e *game.Engine) bool {
	for _, k := range keys {
		if rl.IsKeyPressed(k.key) && keymap.Apply(e, k.action) {
			return true
		}
	}
	return false
}
