package game

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// Snapshot is a read-only copy of everything presentation needs
type Snapshot struct {
	Grid       types.Grid
	Body       []types.Point // head first
	Direction  types.Direction
	Food       entity.Food
	HasFood    bool
	Phase      types.Phase
	Score      int
	HighScore  int
	NewRecord  bool
	Difficulty types.Difficulty
	Theme      string
	SessionID  string

	GamesPlayed int
}

func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Body) == 0 {
		return types.Point{}, false
	}
	return s.Body[0], true
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:       e.grid,
		Body:       e.snake.Body(),
		Direction:  e.snake.Direction(),
		Food:       e.food,
		HasFood:    e.hasFood,
		Phase:      e.state.Phase(),
		Score:      e.state.Score(),
		HighScore:  e.state.HighScore(),
		NewRecord:  e.state.NewRecord(),
		Difficulty: e.state.Difficulty(),
		Theme:      e.state.Theme(),
		SessionID:  e.sessionID,

		GamesPlayed: e.state.GamesPlayed(),
	}
}
