package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/ui/keymap"
)

var keys = map[tcell.Key]keymap.Action{
	tcell.KeyUp:     keymap.MoveUp,
	tcell.KeyDown:   keymap.MoveDown,
	tcell.KeyLeft:   keymap.MoveLeft,
	tcell.KeyRight:  keymap.MoveRight,
	tcell.KeyEnter:  keymap.Start,
	tcell.KeyEscape: keymap.Quit,
	tcell.KeyCtrlC:  keymap.Quit,
}

// ActionFor maps a tcell key event to an action
func ActionFor(key tcell.Key, r rune) keymap.Action {
	if key == tcell.KeyRune {
		return keymap.ForRune(r)
	}
	return keys[key]
}

// Muter is toggled by the m key
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// HandleEvent applies one terminal event to e and reports whether the host
// should quit. A running game is paused when the terminal loses focus.
// sound may be nil.
func HandleEvent(e *game.Engine, ev tcell.Event, sound Muter) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'm' {
			if sound != nil {
				sound.SetMuted(!sound.Muted())
			}
			return false
		}
		return keymap.Apply(e, ActionFor(ev.Key(), ev.Rune()))
	case *tcell.EventFocus:
		if !ev.Focused {
			e.Pause()
		}
	}
	return false
}
