package game

import (
	"time"

	"snake-classic/game/manager"
)

func (e *Engine) startLoop() {
	e.stopLoop()
	e.lastTime = e.clock.Now()
	e.accumulator = 0
	e.frameID = e.scheduler.RequestFrame(e.update)
}

func (e *Engine) stopLoop() {
	if e.frameID != 0 {
		e.scheduler.CancelFrame(e.frameID)
		e.frameID = 0
	}
}

// update is the frame callback: bank elapsed time, drain it in fixed ticks,
// render once, then ask for the next frame while still playing
func (e *Engine) update(now time.Time) {
	// a callback queued before pause/game over must not touch state
	if !e.state.IsPlaying() {
		return
	}
	e.frameID = 0

	delta := now.Sub(e.lastTime)
	if delta < 0 {
		delta = 0
	}
	e.lastTime = now
	e.accumulator += delta

	interval := e.state.TickInterval()
	for e.accumulator >= interval {
		e.step()
		e.accumulator -= interval

		if !e.state.IsPlaying() {
			break
		}
	}

	e.render()

	if e.state.IsPlaying() {
		e.frameID = e.scheduler.RequestFrame(e.update)
	}
}

// step advances the simulation by exactly one tick
func (e *Engine) step() {
	if dir, ok := e.input.Pop(); ok {
		e.snake.ChangeDirection(dir)
	}

	e.snake.Advance()

	switch c := e.collisions.CheckCollision(e.snake, e.food); {
	case c.Fatal():
		e.gameOver(c)
	case c == manager.FoodCollision:
		e.eat()
	}
}

func (e *Engine) eat() {
	eaten := e.food
	e.snake.Grow()
	awarded := e.state.AddScore(eaten.Points())
	e.spawnFood()

	e.emit(Event{
		Kind:      EventFoodEaten,
		SessionID: e.sessionID,
		Tier:      eaten.Tier,
		Awarded:   awarded,
	})
}
