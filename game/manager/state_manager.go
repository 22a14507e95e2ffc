package manager

import (
	"io"
	"log"
	"math"
	"time"

	"snake-classic/game/types"
	"snake-classic/store"
)

// Storage keys
const (
	HighScoreKey = "snakeHighScore"
	SettingsKey  = "snakeSettings"
	HistoryKey   = "snakeHistory"
	PlayedKey    = "snakeGamesPlayed"
)

const (
	DefaultTheme = "classic"
	maxHistory   = 50
)

// Settings is the persisted player configuration
type Settings struct {
	Difficulty types.Difficulty `json:"difficulty" msgpack:"difficulty"`
	Theme      string           `json:"theme" msgpack:"theme"`
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty: types.DefaultDifficulty,
		Theme:      DefaultTheme,
	}
}

// GameRecord describes one finished game
type GameRecord struct {
	SessionID  string           `json:"sessionId" msgpack:"sessionId"`
	Score      int              `json:"score" msgpack:"score"`
	Difficulty types.Difficulty `json:"difficulty" msgpack:"difficulty"`
	StartTime  time.Time        `json:"startTime" msgpack:"startTime"`
	EndTime    time.Time        `json:"endTime" msgpack:"endTime"`
}

// legal phase changes; Waiting is reachable from anywhere through a reset
var transitions = map[types.Phase][]types.Phase{
	types.Waiting:  {types.Playing},
	types.Playing:  {types.Paused, types.GameOver},
	types.Paused:   {types.Playing},
	types.GameOver: {types.Playing},
}

// StateManager tracks the phase, score and persisted settings.
// Store failures never surface: they are logged and defaults are kept.
type StateManager struct {
	store  store.Store
	logger *log.Logger

	phase     types.Phase
	score     int
	highScore int
	newRecord bool
	settings  Settings
	history   []GameRecord
	played    int // lifetime finished games; history only keeps the latest
}

// NewStateManager loads saved state from st. A nil store keeps everything in memory.
func NewStateManager(st store.Store, logger *log.Logger) *StateManager {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	sm := &StateManager{
		store:    st,
		logger:   logger,
		phase:    types.Waiting,
		settings: DefaultSettings(),
		history:  make([]GameRecord, 0),
	}
	sm.LoadSettings()
	return sm
}

// LoadSettings reads high score, settings and history, keeping defaults for
// anything missing or unreadable
func (sm *StateManager) LoadSettings() {
	var hs int
	if err := sm.store.Load(HighScoreKey, &hs); err != nil {
		sm.logLoadError(HighScoreKey, err)
		hs = 0
	}
	if hs < 0 {
		hs = 0
	}
	sm.highScore = hs

	settings := DefaultSettings()
	if err := sm.store.Load(SettingsKey, &settings); err != nil {
		sm.logLoadError(SettingsKey, err)
		settings = DefaultSettings()
	}
	if !settings.Difficulty.Valid() {
		sm.logger.Printf("state: unknown difficulty %q, using %s", settings.Difficulty, types.DefaultDifficulty)
		settings.Difficulty = types.DefaultDifficulty
	}
	if settings.Theme == "" {
		settings.Theme = DefaultTheme
	}
	sm.settings = settings

	var history []GameRecord
	if err := sm.store.Load(HistoryKey, &history); err != nil {
		sm.logLoadError(HistoryKey, err)
		history = nil
	}
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	sm.history = append(make([]GameRecord, 0, len(history)), history...)

	played := 0
	if err := sm.store.Load(PlayedKey, &played); err != nil {
		sm.logLoadError(PlayedKey, err)
	}
	// saves from before the counter existed only know their history
	sm.played = max(played, len(sm.history))
}

// SaveSettings writes the high score and settings
func (sm *StateManager) SaveSettings() {
	if err := sm.store.Save(HighScoreKey, sm.highScore); err != nil {
		sm.logger.Printf("state: save %s: %v", HighScoreKey, err)
	}
	if err := sm.store.Save(SettingsKey, sm.settings); err != nil {
		sm.logger.Printf("state: save %s: %v", SettingsKey, err)
	}
}

func (sm *StateManager) logLoadError(key string, err error) {
	if store.IsNotFound(err) {
		return
	}
	sm.logger.Printf("state: load %s: %v (using default)", key, err)
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

// CanTransition reports whether the state machine allows moving to next
func (sm *StateManager) CanTransition(next types.Phase) bool {
	if next == types.Waiting {
		return true
	}
	for _, p := range transitions[sm.phase] {
		if p == next {
			return true
		}
	}
	return false
}

// Transition moves to next if legal. Illegal requests leave the phase unchanged.
func (sm *StateManager) Transition(next types.Phase) bool {
	if !sm.CanTransition(next) {
		sm.logger.Printf("state: ignoring %s -> %s", sm.phase, next)
		return false
	}
	sm.phase = next
	return true
}

func (sm *StateManager) IsPlaying() bool  { return sm.phase == types.Playing }
func (sm *StateManager) IsPaused() bool   { return sm.phase == types.Paused }
func (sm *StateManager) IsGameOver() bool { return sm.phase == types.GameOver }
func (sm *StateManager) IsWaiting() bool  { return sm.phase == types.Waiting }

// AddScore adds floor(points * multiplier) and returns the amount awarded.
// A new high score is saved immediately.
func (sm *StateManager) AddScore(points int) int {
	awarded := int(math.Floor(float64(points) * sm.ScoreMultiplier()))
	sm.score += awarded

	if sm.score > sm.highScore {
		sm.highScore = sm.score
		sm.newRecord = true
		sm.SaveSettings()
	}
	return awarded
}

func (sm *StateManager) ResetScore() {
	sm.score = 0
	sm.newRecord = false
}

func (sm *StateManager) ResetHighScore() {
	sm.highScore = 0
	sm.newRecord = false
	sm.SaveSettings()
}

// NewRecord reports whether the current game has beaten the previous high score
func (sm *StateManager) NewRecord() bool {
	return sm.newRecord
}

// SetDifficulty selects d; unknown values are ignored
func (sm *StateManager) SetDifficulty(d types.Difficulty) bool {
	if !d.Valid() {
		return false
	}
	sm.settings.Difficulty = d
	sm.SaveSettings()
	return true
}

func (sm *StateManager) SetTheme(theme string) {
	sm.settings.Theme = theme
	sm.SaveSettings()
}

// RecordGame appends a finished game to the bounded history and saves it
func (sm *StateManager) RecordGame(rec GameRecord) {
	sm.history = append(sm.history, rec)
	if len(sm.history) > maxHistory {
		sm.history = sm.history[len(sm.history)-maxHistory:]
	}
	if err := sm.store.Save(HistoryKey, sm.history); err != nil {
		sm.logger.Printf("state: save %s: %v", HistoryKey, err)
	}

	sm.played++
	if err := sm.store.Save(PlayedKey, sm.played); err != nil {
		sm.logger.Printf("state: save %s: %v", PlayedKey, err)
	}
}

// GamesPlayed counts every finished game, including those dropped from History
func (sm *StateManager) GamesPlayed() int {
	return sm.played
}

func (sm *StateManager) History() []GameRecord {
	h := make([]GameRecord, len(sm.history))
	copy(h, sm.history)
	return h
}

func (sm *StateManager) Score() int                   { return sm.score }
func (sm *StateManager) HighScore() int               { return sm.highScore }
func (sm *StateManager) Settings() Settings           { return sm.settings }
func (sm *StateManager) Difficulty() types.Difficulty { return sm.settings.Difficulty }
func (sm *StateManager) Theme() string                { return sm.settings.Theme }

func (sm *StateManager) TickInterval() time.Duration {
	return sm.settings.Difficulty.Settings().TickInterval
}

func (sm *StateManager) ScoreMultiplier() float64 {
	return sm.settings.Difficulty.Settings().ScoreMultiplier
}
