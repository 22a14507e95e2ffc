// Package term draws the game in a terminal with tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui/keymap"
	"snake-classic/ui/palette"
)

const (
	cellWidth  = 2 // terminal cells per grid column, keeps the board roughly square
	boardX     = 1
	boardY     = 1
	panelGap   = 3
	panelWidth = 24
)

var headGlyphs = map[types.Direction]rune{
	types.Up:    '▲',
	types.Down:  '▼',
	types.Left:  '◀',
	types.Right: '▶',
}

// Renderer draws snapshots on a tcell screen. It implements game.Renderer.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func tc(c palette.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) Render(s game.Snapshot) {
	r.Draw(s)
}

// MinSize is the terminal size needed for a grid
func MinSize(g types.Grid) (int, int) {
	return boardX + g.Width*cellWidth + 2 + panelGap + panelWidth, boardY + g.Height + 2
}

func (r *Renderer) Draw(s game.Snapshot) {
	theme := palette.Lookup(s.Theme)
	bg := tcell.StyleDefault.Background(tc(theme.Background)).Foreground(tc(theme.Text))

	r.screen.Clear()
	w, h := r.screen.Size()
	if minW, minH := MinSize(s.Grid); w < minW || h < minH {
		r.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", minW, minH), tcell.StyleDefault)
		r.screen.Show()
		return
	}

	r.drawBoard(s, theme, bg)
	if s.HasFood {
		food := bg.Foreground(tc(palette.FoodColor(s.Food.Tier)))
		r.cell(s.Food.Position, '●', ' ', food)
	}
	r.drawSnake(s, theme)
	r.drawOverlay(s, bg)
	r.drawPanel(s, theme)

	r.screen.Show()
}

func (r *Renderer) drawBoard(s game.Snapshot, theme palette.Palette, bg tcell.Style) {
	border := bg.Foreground(tc(theme.Border))
	right := boardX + s.Grid.Width*cellWidth + 1
	bottom := boardY + s.Grid.Height + 1

	for x := boardX; x <= right; x++ {
		r.screen.SetContent(x, boardY, '─', nil, border)
		r.screen.SetContent(x, bottom, '─', nil, border)
	}
	for y := boardY; y <= bottom; y++ {
		r.screen.SetContent(boardX, y, '│', nil, border)
		r.screen.SetContent(right, y, '│', nil, border)
	}
	r.screen.SetContent(boardX, boardY, '┌', nil, border)
	r.screen.SetContent(right, boardY, '┐', nil, border)
	r.screen.SetContent(boardX, bottom, '└', nil, border)
	r.screen.SetContent(right, bottom, '┘', nil, border)

	for _, p := range s.Grid.Cells() {
		r.cell(p, ' ', ' ', bg)
	}
}

func (r *Renderer) drawSnake(s game.Snapshot, theme palette.Palette) {
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !s.Grid.InBounds(p) {
			continue
		}
		c := theme.Segment(i).Over(theme.Background)
		style := tcell.StyleDefault.Background(tc(c)).Foreground(tc(theme.Background))
		if i == 0 {
			r.cell(p, headGlyphs[s.Direction], ' ', style)
			continue
		}
		r.cell(p, ' ', ' ', style)
	}
}

func (r *Renderer) drawOverlay(s game.Snapshot, style tcell.Style) {
	var lines []string
	switch s.Phase {
	case types.Waiting:
		lines = []string{"Press ENTER to begin!"}
	case types.Paused:
		lines = []string{"PAUSED", "space to resume"}
	case types.GameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", s.Score)}
		if s.NewRecord {
			lines = append(lines, "new high score!")
		}
		lines = append(lines, "enter to play again")
	default:
		return
	}

	width := s.Grid.Width * cellWidth
	y := boardY + 1 + (s.Grid.Height-len(lines))/2
	for i, line := range lines {
		st := style
		if i == 0 {
			st = st.Bold(true)
		}
		x := boardX + 1 + (width-len([]rune(line)))/2
		r.text(x, y+i, line, st)
	}
}

type row struct {
	text  string
	style tcell.Style
}

func (r *Renderer) drawPanel(s game.Snapshot, theme palette.Palette) {
	x := boardX + s.Grid.Width*cellWidth + 2 + panelGap
	y := boardY
	style := tcell.StyleDefault
	bold := style.Bold(true)

	rows := []row{
		{"SNAKE", bold},
		{"", style},
		{fmt.Sprintf("score       %d", s.Score), style},
		{fmt.Sprintf("high score  %d", s.HighScore), style},
		{fmt.Sprintf("length      %d", len(s.Body)), style},
		{fmt.Sprintf("difficulty  %s", s.Difficulty), style},
		{fmt.Sprintf("theme       %s", theme.Title), style},
		{"", style},
	}
	for _, h := range keymap.Help {
		rows = append(rows, row{h, style.Dim(true)})
	}
	rows = append(rows, row{"M  mute", style.Dim(true)})

	for i, rw := range rows {
		r.text(x, y+i, rw.text, rw.style)
	}
}

// cell fills the terminal cells of grid point p
func (r *Renderer) cell(p types.Point, left, right rune, style tcell.Style) {
	x := boardX + 1 + p.X*cellWidth
	y := boardY + 1 + p.Y
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
