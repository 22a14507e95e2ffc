// Package ebitenui runs the engine inside an ebiten window.
package ebitenui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/ui/keymap"
	"snake-classic/ui/palette"
)

const (
	panelWidth  = 220
	padding     = 10
	lineHeight  = 16
	graphHeight = 70
	graphGames  = 50
)

var keys = []struct {
	key    ebiten.Key
	action keymap.Action
}{
	{ebiten.KeyArrowUp, keymap.MoveUp},
	{ebiten.KeyW, keymap.MoveUp},
	{ebiten.KeyArrowDown, keymap.MoveDown},
	{ebiten.KeyS, keymap.MoveDown},
	{ebiten.KeyArrowLeft, keymap.MoveLeft},
	{ebiten.KeyA, keymap.MoveLeft},
	{ebiten.KeyArrowRight, keymap.MoveRight},
	{ebiten.KeyD, keymap.MoveRight},
	{ebiten.KeyEnter, keymap.Start},
	{ebiten.KeyN, keymap.Start},
	{ebiten.KeySpace, keymap.TogglePause},
	{ebiten.KeyP, keymap.TogglePause},
	{ebiten.KeyR, keymap.Reset},
	{ebiten.KeyT, keymap.NextTheme},
	{ebiten.KeyDigit1, keymap.Easy},
	{ebiten.KeyDigit2, keymap.Medium},
	{ebiten.KeyDigit3, keymap.Hard},
	{ebiten.KeyDigit4, keymap.Expert},
	{ebiten.KeyX, keymap.ResetHighScore},
	{ebiten.KeyQ, keymap.Quit},
	{ebiten.KeyEscape, keymap.Quit},
}

// Game adapts an engine to ebiten.Game. Update pumps the frame queue, so
// the engine runs on ebiten's update goroutine only.
type Game struct {
	engine *game.Engine
	queue  *game.FrameQueue
}

func NewGame(engine *game.Engine, queue *game.FrameQueue) *Game {
	return &Game{engine: engine, queue: queue}
}

func (g *Game) Update() error {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) && keymap.Apply(g.engine, k.action) {
			return ebiten.Termination
		}
	}
	if !ebiten.IsFocused() {
		g.engine.Pause()
	}
	g.queue.Pump(time.Now())
	return nil
}

// ScreenSize is the logical size: the classic 400x400 canvas plus a side panel
func ScreenSize() (int, int) {
	return types.CanvasWidth + panelWidth, types.CanvasHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize()
}

func rgba(c palette.Color) color.RGBA {
	// ebiten expects premultiplied alpha
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

// cellRect returns the pixel rectangle of grid point p, inset by gap on each side
func cellRect(p types.Point, cell, gap float32) (x, y, w, h float32) {
	return float32(p.X)*cell + gap, float32(p.Y)*cell + gap, cell - 2*gap, cell - 2*gap
}

type segment struct {
	index      int
	x, y, w, h float32
}

// snakeRects lists body cells tail first, skipping any outside the grid
// (the head after a wall hit)
func snakeRects(s game.Snapshot, cell float32) []segment {
	segs := make([]segment, 0, len(s.Body))
	for i := len(s.Body) - 1; i >= 0; i-- {
		if !s.Grid.InBounds(s.Body[i]) {
			continue
		}
		x, y, w, h := cellRect(s.Body[i], cell, 1)
		segs = append(segs, segment{i, x, y, w, h})
	}
	return segs
}

type vec struct{ x, y float32 }

// scoreGraph maps the scores of the last graphGames games into the box at
// (x, y) sized w by h. It returns the polyline and the height of the average
// line; ok is false with fewer than two games.
func scoreGraph(history []manager.GameRecord, x, y, w, h float32) (pts []vec, avgY float32, ok bool) {
	if len(history) > graphGames {
		history = history[len(history)-graphGames:]
	}
	if len(history) < 2 {
		return nil, 0, false
	}

	maxScore, total := 1, 0
	for _, rec := range history {
		maxScore = max(maxScore, rec.Score)
		total += rec.Score
	}
	py := func(score float32) float32 {
		return y + h - h*score/float32(maxScore)
	}

	pts = make([]vec, len(history))
	for i, rec := range history {
		pts[i] = vec{x + w*float32(i)/float32(graphGames-1), py(float32(rec.Score))}
	}
	return pts, py(float32(total) / float32(len(history))), true
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.engine.Snapshot()
	theme := palette.Lookup(s.Theme)
	cell := float32(types.CanvasWidth) / float32(s.Grid.Width)

	screen.Fill(rgba(theme.Background))

	lines := rgba(theme.Grid.WithAlpha(0.2))
	for x := 0; x <= s.Grid.Width; x++ {
		vector.StrokeLine(screen, float32(x)*cell, 0, float32(x)*cell, float32(types.CanvasHeight), 1, lines, false)
	}
	for y := 0; y <= s.Grid.Height; y++ {
		vector.StrokeLine(screen, 0, float32(y)*cell, float32(types.CanvasWidth), float32(y)*cell, 1, lines, false)
	}

	if s.HasFood {
		fc := rgba(palette.FoodColor(s.Food.Tier))
		cx := float32(s.Food.Position.X)*cell + cell/2
		cy := float32(s.Food.Position.Y)*cell + cell/2
		if theme.Glow {
			vector.DrawFilledCircle(screen, cx, cy, cell/2+3, rgba(palette.FoodColor(s.Food.Tier).WithAlpha(0.3)), true)
		}
		vector.DrawFilledCircle(screen, cx, cy, cell/2-2, fc, true)
	}

	for _, seg := range snakeRects(s, cell) {
		vector.DrawFilledRect(screen, seg.x, seg.y, seg.w, seg.h, rgba(theme.Segment(seg.index)), false)
	}

	vector.StrokeRect(screen, 0, 0, float32(types.CanvasWidth), float32(types.CanvasHeight), 2, rgba(theme.Border), false)

	g.drawOverlay(screen, s, theme)
	g.drawPanel(screen, s, theme)
}

func (g *Game) drawOverlay(screen *ebiten.Image, s game.Snapshot, theme palette.Palette) {
	var lines []string
	switch s.Phase {
	case types.Waiting:
		lines = []string{"Press ENTER to begin!"}
	case types.Paused:
		lines = []string{"PAUSED", "Space to resume"}
	case types.GameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", s.Score)}
		if s.NewRecord {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "Enter to play again")
	default:
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(types.CanvasWidth), float32(types.CanvasHeight), rgba(theme.Background.WithAlpha(0.7)), false)

	startY := (types.CanvasHeight - len(lines)*lineHeight) / 2
	for i, line := range lines {
		// the debug font is 6px wide
		x := (types.CanvasWidth - len(line)*6) / 2
		ebitenutil.DebugPrintAt(screen, line, x, startY+i*lineHeight)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, s game.Snapshot, theme palette.Palette) {
	x := types.CanvasWidth + padding
	vector.DrawFilledRect(screen, float32(types.CanvasWidth), 0, panelWidth, float32(types.CanvasHeight), color.RGBA{24, 24, 28, 255}, false)

	history := g.engine.History()
	rows := []string{
		fmt.Sprintf("Score:      %d", s.Score),
		fmt.Sprintf("High score: %d", s.HighScore),
		fmt.Sprintf("Length:     %d", len(s.Body)),
		fmt.Sprintf("Difficulty: %s", s.Difficulty),
		fmt.Sprintf("Theme:      %s", theme.Title),
		"",
	}
	if sum := manager.Summarize(history); sum.Games > 0 {
		rows = append(rows,
			fmt.Sprintf("Games:      %d", s.GamesPlayed),
			fmt.Sprintf("Average:    %.1f", sum.AverageScore),
			fmt.Sprintf("Best:       %d", sum.MaxScore),
			"",
		)
	}
	rows = append(rows, keymap.Help...)
	for i, row := range rows {
		ebitenutil.DebugPrintAt(screen, row, x, padding+i*lineHeight)
	}

	g.drawScoreGraph(screen, history, theme)
}

// drawScoreGraph plots recent scores at the bottom of the panel with a
// dashed average line
func (g *Game) drawScoreGraph(screen *ebiten.Image, history []manager.GameRecord, theme palette.Palette) {
	x := float32(types.CanvasWidth + padding)
	y := float32(types.CanvasHeight - padding - graphHeight)
	w := float32(panelWidth - 2*padding)

	pts, avgY, ok := scoreGraph(history, x, y, w, graphHeight)
	if !ok {
		return
	}
	ebitenutil.DebugPrintAt(screen, "Recent games", int(x), int(y)-lineHeight-2)
	vector.StrokeRect(screen, x, y, w, graphHeight, 1, rgba(theme.Grid.WithAlpha(0.5)), false)

	line := rgba(theme.Snake)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen, pts[i-1].x, pts[i-1].y, pts[i].x, pts[i].y, 1, line, true)
	}
	for dx := x; dx < x+w; dx += 5 {
		vector.StrokeLine(screen, dx, avgY, dx+2, avgY, 1, line, false)
	}
}
