package types

// Direction is one of the four unit moves on the grid
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

var directionVectors = map[Direction]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Vector returns the unit offset for d, or the zero point for an invalid value
func (d Direction) Vector() Point {
	return directionVectors[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// IsOpposite reports whether d and o point exactly away from each other
func (d Direction) IsOpposite(o Direction) bool {
	return d.Valid() && d.Opposite() == o
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
