package game

import (
	"snake-classic/game/entity"
	"snake-classic/game/manager"
)

type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventPaused
	EventResumed
	EventFoodEaten
	EventGameOver
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventFoodEaten:
		return "foodEaten"
	case EventGameOver:
		return "gameOver"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event is emitted after the engine has finished the change it describes
type Event struct {
	Kind      EventKind
	SessionID string

	// EventFoodEaten
	Tier    entity.Tier
	Awarded int

	// EventGameOver
	Cause     manager.CollisionType
	Score     int
	NewRecord bool
}

// Listener reacts to engine events (sound cues, notifications).
// It must not call engine commands synchronously.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Renderer consumes a snapshot once per drained frame
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) {
	f(s)
}
