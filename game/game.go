package game

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/store"
)

// Engine owns the snake, the food and the game state, and runs the
// fixed-timestep loop on top of an injected Scheduler.
// All methods must be called from the host's main loop.
type Engine struct {
	grid       types.Grid
	state      *manager.StateManager
	snake      *entity.Snake
	food       entity.Food
	hasFood    bool
	foods      *manager.FoodManager
	collisions *manager.CollisionManager
	input      *manager.InputBuffer

	clock       Clock
	scheduler   Scheduler
	frameID     FrameID
	lastTime    time.Time
	accumulator time.Duration

	renderer  Renderer
	listeners []Listener
	logger    *log.Logger

	sessionID string
	startTime time.Time
}

type config struct {
	grid      types.Grid
	seed      uint64
	store     store.Store
	logger    *log.Logger
	clock     Clock
	scheduler Scheduler
	renderer  Renderer
	listeners []Listener
}

type Option func(*config)

func WithGrid(g types.Grid) Option     { return func(c *config) { c.grid = g } }
func WithSeed(seed uint64) Option      { return func(c *config) { c.seed = seed } }
func WithStore(s store.Store) Option   { return func(c *config) { c.store = s } }
func WithLogger(l *log.Logger) Option  { return func(c *config) { c.logger = l } }
func WithClock(clk Clock) Option       { return func(c *config) { c.clock = clk } }
func WithScheduler(s Scheduler) Option { return func(c *config) { c.scheduler = s } }
func WithRenderer(r Renderer) Option   { return func(c *config) { c.renderer = r } }
func WithListener(l Listener) Option   { return func(c *config) { c.listeners = append(c.listeners, l) } }

// NewEngine builds an engine in the Waiting phase with saved settings loaded
func NewEngine(opts ...Option) *Engine {
	cfg := config{
		grid:      types.DefaultGrid,
		clock:     SystemClock{},
		scheduler: NewFrameQueue(),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		grid:       cfg.grid,
		state:      manager.NewStateManager(cfg.store, cfg.logger),
		snake:      entity.NewSnake(cfg.grid),
		foods:      manager.NewFoodManager(cfg.grid, cfg.seed),
		collisions: manager.NewCollisionManager(cfg.grid),
		input:      manager.NewInputBuffer(),
		clock:      cfg.clock,
		scheduler:  cfg.scheduler,
		renderer:   cfg.renderer,
		listeners:  cfg.listeners,
		logger:     cfg.logger,
	}
	return e
}

// Start begins a new game from Waiting or GameOver
func (e *Engine) Start() bool {
	if !e.state.IsWaiting() && !e.state.IsGameOver() {
		return false
	}

	e.stopLoop()
	e.snake.Reset(e.grid)
	e.state.ResetScore()
	e.input.Clear()

	e.state.Transition(types.Playing)
	e.sessionID = uuid.NewString()
	e.startTime = e.clock.Now()
	e.spawnFood()
	e.startLoop()

	e.logger.Printf("game: session %s started (difficulty %s)", e.sessionID, e.state.Difficulty())
	e.emit(Event{Kind: EventStarted, SessionID: e.sessionID})
	return true
}

// Pause suspends the loop; only legal while playing
func (e *Engine) Pause() bool {
	if !e.state.IsPlaying() {
		return false
	}
	e.state.Transition(types.Paused)
	e.stopLoop()
	e.emit(Event{Kind: EventPaused, SessionID: e.sessionID})
	return true
}

// Resume restarts the loop from a fresh accumulator; only legal while paused
func (e *Engine) Resume() bool {
	if !e.state.IsPaused() {
		return false
	}
	e.state.Transition(types.Playing)
	e.startLoop()
	e.emit(Event{Kind: EventResumed, SessionID: e.sessionID})
	return true
}

func (e *Engine) TogglePause() bool {
	switch {
	case e.state.IsPlaying():
		return e.Pause()
	case e.state.IsPaused():
		return e.Resume()
	}
	return false
}

// Reset abandons the current game and returns to Waiting
func (e *Engine) Reset() {
	e.stopLoop()
	e.snake.Reset(e.grid)
	e.state.ResetScore()
	e.state.Transition(types.Waiting)
	e.input.Clear()
	e.hasFood = false

	e.emit(Event{Kind: EventReset, SessionID: e.sessionID})
	e.render()
}

// QueueDirection buffers a direction intent; ignored unless playing
func (e *Engine) QueueDirection(dir types.Direction) bool {
	if !e.state.IsPlaying() || !dir.Valid() {
		return false
	}
	e.input.Push(dir)
	return true
}

func (e *Engine) SetDifficulty(d types.Difficulty) bool {
	return e.state.SetDifficulty(d)
}

func (e *Engine) SetTheme(theme string) {
	e.state.SetTheme(theme)
}

func (e *Engine) ResetHighScore() {
	e.state.ResetHighScore()
}

func (e *Engine) Phase() types.Phase            { return e.state.Phase() }
func (e *Engine) Score() int                    { return e.state.Score() }
func (e *Engine) HighScore() int                { return e.state.HighScore() }
func (e *Engine) Difficulty() types.Difficulty  { return e.state.Difficulty() }
func (e *Engine) Theme() string                 { return e.state.Theme() }
func (e *Engine) History() []manager.GameRecord { return e.state.History() }
func (e *Engine) GamesPlayed() int              { return e.state.GamesPlayed() }
func (e *Engine) SessionID() string             { return e.sessionID }

// AddListener registers l for subsequent events
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

func (e *Engine) gameOver(cause manager.CollisionType) {
	if !e.state.Transition(types.GameOver) {
		return
	}
	e.stopLoop()
	e.input.Clear()

	e.state.RecordGame(manager.GameRecord{
		SessionID:  e.sessionID,
		Score:      e.state.Score(),
		Difficulty: e.state.Difficulty(),
		StartTime:  e.startTime,
		EndTime:    e.clock.Now(),
	})

	e.logger.Printf("game: session %s over (%s), score %d, high score %d",
		e.sessionID, cause, e.state.Score(), e.state.HighScore())
	e.emit(Event{
		Kind:      EventGameOver,
		SessionID: e.sessionID,
		Cause:     cause,
		Score:     e.state.Score(),
		NewRecord: e.state.NewRecord(),
	})
}

func (e *Engine) spawnFood() {
	e.food = e.foods.Spawn(e.snake.Occupied())
	e.hasFood = true
}

func (e *Engine) render() {
	if e.renderer != nil {
		e.renderer.Render(e.Snapshot())
	}
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}
