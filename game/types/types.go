package types

// Canvas and cell sizes the grid is derived from
const (
	CanvasWidth  = 400
	CanvasHeight = 400
	CellSize     = 20

	InitialSnakeLength = 3
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the fixed playing field (canvas pixels / cell size)
var DefaultGrid = Grid{
	Width:  CanvasWidth / CellSize,
	Height: CanvasHeight / CellSize,
}

// InBounds reports whether p lies inside the grid
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns every cell of the grid, column by column
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// Center returns the cell the snake starts from
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

type Point struct {
	X, Y int
}

func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add moves p one cell in direction d
func (p Point) Add(d Direction) Point {
	v := d.Vector()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}
