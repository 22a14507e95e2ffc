package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/store"
	"snake-classic/ui/keymap"
)

// mockScreen records SetContent calls; every other method panics through
// the nil embedded interface
type mockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shown         int
}

func newMockScreen(w, h int) *mockScreen {
	return &mockScreen{width: w, height: h, cells: map[[2]int]rune{}}
}

func (m *mockScreen) Size() (int, int) { return m.width, m.height }
func (m *mockScreen) Clear()           { m.cells = map[[2]int]rune{} }
func (m *mockScreen) Show()            { m.shown++ }

func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *mockScreen) at(x, y int) rune {
	return m.cells[[2]int{x, y}]
}

func (m *mockScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if r, ok := m.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (m *mockScreen) contains(s string) bool {
	for y := 0; y < m.height; y++ {
		if strings.Contains(m.row(y), s) {
			return true
		}
	}
	return false
}

func newEngine() (*game.Engine, *game.ManualClock, *game.FrameQueue) {
	clock := game.NewManualClock(time.Unix(0, 0))
	queue := game.NewFrameQueue()
	e := game.NewEngine(
		game.WithClock(clock),
		game.WithScheduler(queue),
		game.WithStore(store.NewMemoryStore()),
		game.WithSeed(3),
	)
	return e, clock, queue
}

func TestDrawWaiting(t *testing.T) {
	e, _, _ := newEngine()
	w, h := MinSize(types.DefaultGrid)
	screen := newMockScreen(w, h)

	NewRenderer(screen).Draw(e.Snapshot())

	if screen.shown != 1 {
		t.Errorf("expected one Show, got %d", screen.shown)
	}
	if screen.at(boardX, boardY) != '┌' {
		t.Errorf("missing board corner, got %q", screen.at(boardX, boardY))
	}
	if !screen.contains("Press ENTER to begin!") {
		t.Error("waiting prompt not drawn")
	}
	if !screen.contains("high score  0") {
		t.Error("panel not drawn")
	}
	if !screen.contains("M  mute") {
		t.Error("mute binding missing from help")
	}
}

func TestDrawPlaying(t *testing.T) {
	e, clock, queue := newEngine()
	w, h := MinSize(types.DefaultGrid)
	screen := newMockScreen(w, h)
	e.SetRenderer(NewRenderer(screen))

	e.Start()
	queue.Pump(clock.Advance(150 * time.Millisecond))

	s := e.Snapshot()
	head, _ := s.Head()
	if got := screen.at(boardX+1+head.X*cellWidth, boardY+1+head.Y); got != '▶' {
		t.Errorf("head glyph: got %q", got)
	}
	if s.HasFood {
		if got := screen.at(boardX+1+s.Food.Position.X*cellWidth, boardY+1+s.Food.Position.Y); got != '●' {
			t.Errorf("food glyph: got %q", got)
		}
	}
	if screen.contains("Press ENTER") {
		t.Error("no overlay expected while playing")
	}
}

func TestDrawTooSmall(t *testing.T) {
	e, _, _ := newEngine()
	screen := newMockScreen(20, 5)

	NewRenderer(screen).Draw(e.Snapshot())

	if !strings.HasPrefix(screen.row(0), "terminal too small") {
		t.Errorf("unexpected first row %q", screen.row(0))
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want keymap.Action
	}{
		{tcell.KeyUp, 0, keymap.MoveUp},
		{tcell.KeyLeft, 0, keymap.MoveLeft},
		{tcell.KeyEnter, 0, keymap.Start},
		{tcell.KeyEscape, 0, keymap.Quit},
		{tcell.KeyRune, 'd', keymap.MoveRight},
		{tcell.KeyRune, ' ', keymap.TogglePause},
		{tcell.KeyF5, 0, keymap.None},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.key, tt.r); got != tt.want {
			t.Errorf("key %v %q: got %d, want %d", tt.key, tt.r, got, tt.want)
		}
	}
}

type fakeMuter struct{ muted bool }

func (f *fakeMuter) SetMuted(m bool) { f.muted = m }
func (f *fakeMuter) Muted() bool     { return f.muted }

func TestFocusLossPauses(t *testing.T) {
	e, clock, queue := newEngine()
	e.Start()
	queue.Pump(clock.Advance(150 * time.Millisecond))

	if HandleEvent(e, tcell.NewEventFocus(false), nil) {
		t.Fatal("focus loss must not quit")
	}
	if e.Phase() != types.Paused {
		t.Fatalf("phase after focus loss: %s", e.Phase())
	}

	// regaining focus leaves resuming to the player
	HandleEvent(e, tcell.NewEventFocus(true), nil)
	if e.Phase() != types.Paused {
		t.Errorf("phase after focus gain: %s", e.Phase())
	}

	waiting, _, _ := newEngine()
	HandleEvent(waiting, tcell.NewEventFocus(false), nil)
	if waiting.Phase() != types.Waiting {
		t.Errorf("focus loss changed a waiting game to %s", waiting.Phase())
	}
}

func TestHandleEventKeys(t *testing.T) {
	e, _, _ := newEngine()
	sound := &fakeMuter{}

	HandleEvent(e, tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), sound)
	if !sound.muted {
		t.Error("m did not mute")
	}
	HandleEvent(e, tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModNone), sound)
	if sound.muted {
		t.Error("M did not unmute")
	}
	if HandleEvent(e, tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), nil) {
		t.Error("mute without sound must not quit")
	}

	HandleEvent(e, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil)
	if e.Phase() != types.Playing {
		t.Errorf("enter: phase %s", e.Phase())
	}
	if !HandleEvent(e, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), nil) {
		t.Error("q should quit")
	}
}
