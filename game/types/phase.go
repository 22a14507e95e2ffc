package types

// Phase is the state of the game state machine
type Phase uint8

const (
	// initial phase, waiting for start
	Waiting Phase = iota + 1

	// simulation running
	Playing

	// simulation suspended, resumable
	Paused

	// fatal collision, waiting for restart
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "gameOver"
	}
	return "unknown"
}

// Active reports whether a game is in progress (playing or paused)
func (p Phase) Active() bool {
	return p == Playing || p == Paused
}
