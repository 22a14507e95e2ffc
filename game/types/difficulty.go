package types

import "time"

// Difficulty selects the tick interval and score multiplier
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"

	DefaultDifficulty = Medium
)

// DifficultySettings is one row of the difficulty table
type DifficultySettings struct {
	TickInterval    time.Duration
	ScoreMultiplier float64
}

var difficulties = map[Difficulty]DifficultySettings{
	Easy:   {TickInterval: 200 * time.Millisecond, ScoreMultiplier: 1},
	Medium: {TickInterval: 150 * time.Millisecond, ScoreMultiplier: 1.5},
	Hard:   {TickInterval: 100 * time.Millisecond, ScoreMultiplier: 2},
	Expert: {TickInterval: 70 * time.Millisecond, ScoreMultiplier: 3},
}

// Difficulties lists the table entries from slowest to fastest
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert}
}

// Settings returns the table row for d. Unknown values get the default row.
func (d Difficulty) Settings() DifficultySettings {
	if s, ok := difficulties[d]; ok {
		return s
	}
	return difficulties[DefaultDifficulty]
}

func (d Difficulty) Valid() bool {
	_, ok := difficulties[d]
	return ok
}

// ParseDifficulty maps a name to a Difficulty. ok is false for unknown names.
func ParseDifficulty(name string) (Difficulty, bool) {
	d := Difficulty(name)
	return d, d.Valid()
}

