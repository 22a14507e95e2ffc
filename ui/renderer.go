package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/ui/keymap"
	"snake-classic/ui/palette"
)

const (
	maxScores     = 50 // history entries shown in the graph
	borderPadding = 10
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 3
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 6
}

func color(c palette.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw renders one frame from a snapshot and the finished-game history
func (r *Renderer) Draw(s game.Snapshot, history []manager.GameRecord) {
	r.UpdateDimensions()
	theme := palette.Lookup(s.Theme)

	rl.BeginDrawing()
	rl.ClearBackground(color(theme.Background))

	fontSize := min(r.screenHeight/36, r.statsPanel/14)
	lineHeight := fontSize + 4

	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2
	r.cellSize = min(availableWidth/int32(s.Grid.Width), availableHeight/int32(s.Grid.Height))

	r.totalGridWidth = r.cellSize * int32(s.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(s.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	r.drawGrid(s.Grid, theme)
	if s.HasFood {
		r.drawFood(s, theme)
	}
	r.drawSnake(s, theme)
	r.drawOverlay(s, theme, fontSize)
	r.drawStatsPanel(s, history, theme, fontSize, lineHeight)

	rl.EndDrawing()
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawGrid(g types.Grid, theme palette.Palette) {
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, color(theme.Border))

	lines := color(theme.Grid.WithAlpha(0.1))
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			cx, cy := r.cell(types.Point{X: x, Y: y})
			rl.DrawRectangleLines(cx, cy, r.cellSize, r.cellSize, lines)
		}
	}
}

func (r *Renderer) drawFood(s game.Snapshot, theme palette.Palette) {
	x, y := r.cell(s.Food.Position)
	c := color(palette.FoodColor(s.Food.Tier))
	half := float32(r.cellSize) / 2

	if theme.Glow {
		rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, half+3, rl.Fade(c, 0.3))
	}
	rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, half-2, c)
}

func (r *Renderer) drawSnake(s game.Snapshot, theme palette.Palette) {
	// tail first so the head ends up on top
	for i := len(s.Body) - 1; i >= 0; i-- {
		if !s.Grid.InBounds(s.Body[i]) {
			continue
		}
		x, y := r.cell(s.Body[i])
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color(theme.Segment(i)))
	}

	// after a wall hit the head is off the board
	head, ok := s.Head()
	if !ok || !s.Grid.InBounds(head) {
		return
	}
	headX, headY := r.cell(head)
	size := float32(r.cellSize)
	x, y := float32(headX), float32(headY)
	half := size / 2
	indicator := color(theme.Background)

	switch s.Direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + size, Y: y + half},
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x + half, Y: y + size},
			indicator)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + half, Y: y},
			indicator)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Vector2{X: x, Y: y + half},
			indicator)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + size, Y: y + half},
			indicator)
	}
}

func (r *Renderer) drawOverlay(s game.Snapshot, theme palette.Palette, fontSize int32) {
	var lines []string
	switch s.Phase {
	case types.Waiting:
		lines = []string{"Press ENTER to begin!"}
	case types.Paused:
		lines = []string{"Paused", "SPACE to resume"}
	case types.GameOver:
		lines = []string{"Game Over!", fmt.Sprintf("Score: %d", s.Score)}
		if s.NewRecord {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "ENTER to play again")
	default:
		return
	}

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(color(theme.Background), 0.7))

	big := fontSize * 2
	y := r.offsetY + r.totalGridHeight/2 - int32(len(lines))*big/2
	for i, line := range lines {
		size := fontSize
		if i == 0 {
			size = big
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, r.offsetX+(r.totalGridWidth-w)/2, y, size, color(theme.Text))
		y += size + size/2
	}
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, history []manager.GameRecord, theme palette.Palette, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)
	text := color(theme.Text)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, color(theme.Grid.WithAlpha(0.15)))

	rows := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("High Score: %d", s.HighScore),
		fmt.Sprintf("Length: %d", len(s.Body)),
		"",
		fmt.Sprintf("Difficulty: %s", s.Difficulty),
		fmt.Sprintf("Theme: %s", palette.Lookup(s.Theme).Title),
		"",
	}
	if sum := manager.Summarize(history); sum.Games > 0 {
		rows = append(rows,
			fmt.Sprintf("Games: %d", s.GamesPlayed),
			fmt.Sprintf("Average: %.1f  Median: %.1f", sum.AverageScore, sum.MedianScore),
			fmt.Sprintf("Longest: %s", sum.MaxDuration.Round(time.Second)),
			"",
		)
	}
	rows = append(rows, keymap.Help...)
	for _, row := range rows {
		if row != "" {
			rl.DrawText(row, statsX, statsY, fontSize, text)
		}
		statsY += lineHeight
	}

	r.drawScoreGraph(history, statsX, fontSize, theme)
}

// drawScoreGraph plots the scores of recent games with a dashed average line
func (r *Renderer) drawScoreGraph(history []manager.GameRecord, graphX, fontSize int32, theme palette.Palette) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2
	text := color(theme.Text)

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, text)
	rl.DrawText("Recent games", graphX, graphY-fontSize-5, fontSize, text)

	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}
	rl.DrawText(fmt.Sprintf("Last %d games", len(history)), graphX, r.screenHeight-fontSize-5, fontSize, text)
	if len(history) < 2 {
		return
	}

	maxScore, total := 1, 0
	for _, rec := range history {
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
		total += rec.Score
	}
	avg := float32(total) / float32(len(history))

	line := color(theme.Snake)
	px := func(i int) int32 {
		return graphX + int32(float32(r.graphWidth)*float32(i)/float32(maxScores-1))
	}
	py := func(score float32) int32 {
		return graphY + graphHeight - int32(float32(graphHeight)*score/float32(maxScore))
	}

	for j := 1; j < len(history); j++ {
		rl.DrawLine(px(j-1), py(float32(history[j-1].Score)), px(j), py(float32(history[j].Score)), line)
	}

	avgY := py(avg)
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, line)
	}
}
