// Package keymap turns host key presses into engine commands.
package keymap

import (
	"unicode"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui/palette"
)

type Action int

const (
	None Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Start
	TogglePause
	Reset
	NextTheme
	Easy
	Medium
	Hard
	Expert
	ResetHighScore
	Quit
)

var runes = map[rune]Action{
	'w': MoveUp,
	'k': MoveUp,
	's': MoveDown,
	'j': MoveDown,
	'a': MoveLeft,
	'h': MoveLeft,
	'd': MoveRight,
	'l': MoveRight,
	' ': TogglePause,
	'p': TogglePause,
	'n': Start,
	'r': Reset,
	't': NextTheme,
	'1': Easy,
	'2': Medium,
	'3': Hard,
	'4': Expert,
	'x': ResetHighScore,
	'q': Quit,
}

// ForRune maps a typed character; case is ignored
func ForRune(r rune) Action {
	return runes[unicode.ToLower(r)]
}

var directions = map[Action]types.Direction{
	MoveUp:    types.Up,
	MoveDown:  types.Down,
	MoveLeft:  types.Left,
	MoveRight: types.Right,
}

var difficulties = map[Action]types.Difficulty{
	Easy:   types.Easy,
	Medium: types.Medium,
	Hard:   types.Hard,
	Expert: types.Expert,
}

// Apply runs a on e and reports whether the host should quit
func Apply(e *game.Engine, a Action) bool {
	if dir, ok := directions[a]; ok {
		e.QueueDirection(dir)
		return false
	}
	if d, ok := difficulties[a]; ok {
		e.SetDifficulty(d)
		return false
	}

	switch a {
	case Start:
		e.Start()
	case TogglePause:
		e.TogglePause()
	case Reset:
		e.Reset()
	case NextTheme:
		e.SetTheme(palette.Next(e.Theme()))
	case ResetHighScore:
		if !e.Phase().Active() {
			e.ResetHighScore()
		}
	case Quit:
		return true
	}
	return false
}

// Help lists the bindings shown by hosts
var Help = []string{
	"arrows/WASD  move",
	"enter/N  start",
	"space/P  pause",
	"R  reset",
	"1-4  difficulty",
	"T  theme",
	"X  clear high score",
	"Q  quit",
}
