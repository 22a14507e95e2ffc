package entity

import (
	"snake-classic/game/types"
)

// Snake owns the body cells (head first) and its movement state
type Snake struct {
	body      []types.Point
	direction types.Direction // applied on the last advance
	pending   types.Direction // latest accepted intent, committed on the next advance
	growing   bool
}

// NewSnake creates a snake laid out horizontally from the grid centre, moving right
func NewSnake(grid types.Grid) *Snake {
	s := &Snake{}
	s.Reset(grid)
	return s
}

// NewSnakeFromBody creates a snake from explicit cells (head first) moving in dir
func NewSnakeFromBody(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		body:      b,
		direction: dir,
		pending:   dir,
	}
}

func (s *Snake) Reset(grid types.Grid) {
	center := grid.Center()
	s.body = make([]types.Point, 0, types.InitialSnakeLength)
	for i := 0; i < types.InitialSnakeLength; i++ {
		s.body = append(s.body, types.Point{X: center.X - i, Y: center.Y})
	}
	s.direction = types.Right
	s.pending = types.Right
	s.growing = false
}

// Advance performs one step: commit direction, push new head, drop tail unless growing
func (s *Snake) Advance() {
	if !s.pending.IsOpposite(s.direction) {
		s.direction = s.pending
	}

	head := s.Head().Add(s.direction)
	s.pushFront(head)

	if s.growing {
		s.growing = false
		return
	}
	s.popBack()
}

// Grow marks the snake to keep its tail on the next Advance
func (s *Snake) Grow() {
	s.growing = true
}

// ChangeDirection records dir as the pending direction unless it reverses the
// committed one. Returns false when the request is ignored.
func (s *Snake) ChangeDirection(dir types.Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.direction) {
		return false
	}
	s.pending = dir
	return true
}

func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg.Equal(head) {
			return true
		}
	}
	return false
}

func (s *Snake) CheckWallCollision(grid types.Grid) bool {
	return !grid.InBounds(s.Head())
}

func (s *Snake) CheckFoodCollision(food Food) bool {
	return s.Head().Equal(food.Position)
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) PendingDirection() types.Direction {
	return s.pending
}

func (s *Snake) Growing() bool {
	return s.growing
}

// Body returns a copy of the cells, head first
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupied returns the set of cells covered by the body
func (s *Snake) Occupied() map[types.Point]struct{} {
	cells := make(map[types.Point]struct{}, len(s.body))
	for _, p := range s.body {
		cells[p] = struct{}{}
	}
	return cells
}

func (s *Snake) pushFront(p types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = p
}

func (s *Snake) popBack() {
	if len(s.body) > 0 {
		s.body = s.body[:len(s.body)-1]
	}
}
