package manager

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"snake-classic/game/entity"
	"snake-classic/game/types"
	"snake-classic/store"
)

func TestCollisionOrdering(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	far := entity.NewFood(types.Point{X: 9, Y: 9}, entity.Normal)

	tests := []struct {
		name string
		body []types.Point
		food entity.Food
		want CollisionType
	}{
		{"clear", []types.Point{{5, 5}, {4, 5}}, far, NoCollision},
		{"wall", []types.Point{{10, 5}, {9, 5}}, far, WallCollision},
		{"self", []types.Point{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {5, 5}}, far, SelfCollision},
		// head outside the grid and on a body cell at once: wall wins
		{"wall and self", []types.Point{{-1, 0}, {0, 0}, {-1, 0}}, far, WallCollision},
		{"food", []types.Point{{9, 9}, {8, 9}}, far, FoodCollision},
		{"self beats food", []types.Point{{9, 9}, {8, 9}, {9, 9}}, far, SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSnakeFromBody(tt.body, types.Right)
			if got := cm.CheckCollision(s, tt.food); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInputBufferFIFO(t *testing.T) {
	b := NewInputBuffer()
	b.Push(types.Up)
	b.Push(types.Left)

	if d, ok := b.Pop(); !ok || d != types.Up {
		t.Errorf("expected up first, got %v %v", d, ok)
	}
	if d, ok := b.Pop(); !ok || d != types.Left {
		t.Errorf("expected left second, got %v %v", d, ok)
	}
	if _, ok := b.Pop(); ok {
		t.Error("expected empty buffer")
	}
}

func TestInputBufferEvictsOldest(t *testing.T) {
	b := NewInputBuffer()
	for _, d := range []types.Direction{types.Up, types.Left, types.Down, types.Right} {
		b.Push(d)
	}
	if b.Len() != InputBufferSize {
		t.Fatalf("expected %d entries, got %d", InputBufferSize, b.Len())
	}

	want := []types.Direction{types.Left, types.Down, types.Right}
	for i, w := range want {
		if d, _ := b.Pop(); d != w {
			t.Errorf("pop %d: got %v, want %v", i, d, w)
		}
	}
}

func TestInputBufferClearAndInvalid(t *testing.T) {
	b := NewInputBuffer()
	b.Push(types.Direction(0))
	if b.Len() != 0 {
		t.Error("invalid direction buffered")
	}
	b.Push(types.Up)
	b.Clear()
	if b.Len() != 0 {
		t.Error("clear left entries behind")
	}
}

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager(nil, nil)
	if sm.Phase() != types.Waiting {
		t.Fatalf("initial phase %s", sm.Phase())
	}

	// invalid requests are no-ops
	if sm.Transition(types.Paused) || sm.Transition(types.GameOver) {
		t.Error("illegal transition from waiting accepted")
	}
	if sm.Phase() != types.Waiting {
		t.Errorf("phase changed to %s", sm.Phase())
	}

	steps := []struct {
		to types.Phase
		ok bool
	}{
		{types.Playing, true},
		{types.Playing, false},
		{types.Paused, true},
		{types.GameOver, false},
		{types.Playing, true},
		{types.GameOver, true},
		{types.Paused, false},
		{types.Playing, true},
		{types.Waiting, true},
	}
	for i, s := range steps {
		if got := sm.Transition(s.to); got != s.ok {
			t.Errorf("step %d to %s: got %v, want %v", i, s.to, got, s.ok)
		}
	}
}

func TestAddScoreUsesMultiplier(t *testing.T) {
	sm := NewStateManager(nil, nil)
	sm.SetDifficulty(types.Medium)

	if got := sm.AddScore(10); got != 15 {
		t.Errorf("awarded %d, want 15", got)
	}
	if sm.Score() != 15 {
		t.Errorf("score %d, want 15", sm.Score())
	}

	sm.SetDifficulty(types.Expert)
	sm.AddScore(50)
	if sm.Score() != 165 {
		t.Errorf("score %d, want 165", sm.Score())
	}
}

func TestHighScorePersistedImmediately(t *testing.T) {
	st := store.NewMemoryStore()
	if err := st.Save(HighScoreKey, 20); err != nil {
		t.Fatal(err)
	}

	sm := NewStateManager(st, nil)
	if sm.HighScore() != 20 {
		t.Fatalf("loaded high score %d", sm.HighScore())
	}
	sm.SetDifficulty(types.Easy)

	sm.AddScore(10)
	if sm.NewRecord() {
		t.Error("10 does not beat 20")
	}
	sm.AddScore(50)
	if !sm.NewRecord() || sm.HighScore() != 60 {
		t.Fatalf("expected new record 60, got %d", sm.HighScore())
	}

	fresh := NewStateManager(st, nil)
	if fresh.HighScore() != 60 {
		t.Errorf("fresh load sees %d, want 60", fresh.HighScore())
	}

	// clearing the high score also clears the record banner
	sm.ResetHighScore()
	if sm.HighScore() != 0 || sm.NewRecord() {
		t.Errorf("after reset: high score %d, new record %v", sm.HighScore(), sm.NewRecord())
	}
}

func TestSettingsPersistence(t *testing.T) {
	st := store.NewMemoryStore()
	sm := NewStateManager(st, nil)

	if sm.Difficulty() != types.Medium || sm.Theme() != DefaultTheme {
		t.Fatalf("unexpected defaults %s/%s", sm.Difficulty(), sm.Theme())
	}
	if sm.SetDifficulty("impossible") {
		t.Error("unknown difficulty accepted")
	}
	sm.SetDifficulty(types.Hard)
	sm.SetTheme("neon")

	fresh := NewStateManager(st, nil)
	if fresh.Difficulty() != types.Hard || fresh.Theme() != "neon" {
		t.Errorf("reloaded %s/%s", fresh.Difficulty(), fresh.Theme())
	}
	if fresh.TickInterval() != types.Hard.Settings().TickInterval {
		t.Errorf("tick interval %v", fresh.TickInterval())
	}
}

func TestCorruptStorageFallsBackToDefaults(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetRaw(HighScoreKey, []byte("\"lots\""))
	st.SetRaw(SettingsKey, []byte("{broken"))
	st.SetRaw(HistoryKey, []byte("42"))

	var buf bytes.Buffer
	sm := NewStateManager(st, log.New(&buf, "", 0))

	if sm.HighScore() != 0 {
		t.Errorf("high score %d", sm.HighScore())
	}
	if sm.Settings() != DefaultSettings() {
		t.Errorf("settings %+v", sm.Settings())
	}
	if len(sm.History()) != 0 {
		t.Errorf("history %v", sm.History())
	}
	if !strings.Contains(buf.String(), SettingsKey) {
		t.Errorf("expected the corrupt entry to be logged, got %q", buf.String())
	}
}

type failingStore struct{}

func (failingStore) Load(string, any) error { return errors.New("disk on fire") }
func (failingStore) Save(string, any) error { return errors.New("disk on fire") }

func TestUnavailableStorageKeepsPlaying(t *testing.T) {
	sm := NewStateManager(failingStore{}, nil)
	sm.Transition(types.Playing)
	sm.AddScore(100)
	if sm.HighScore() != sm.Score() {
		t.Errorf("in-memory high score %d, score %d", sm.HighScore(), sm.Score())
	}
	sm.RecordGame(GameRecord{Score: sm.Score()})
	if len(sm.History()) != 1 {
		t.Error("history should still be kept in memory")
	}
}

func TestHistoryIsCapped(t *testing.T) {
	st := store.NewMemoryStore()
	sm := NewStateManager(st, nil)
	for i := 0; i < maxHistory+10; i++ {
		sm.RecordGame(GameRecord{Score: i})
	}

	h := NewStateManager(st, nil).History()
	if len(h) != maxHistory {
		t.Fatalf("history length %d", len(h))
	}
	if h[0].Score != 10 || h[len(h)-1].Score != maxHistory+9 {
		t.Errorf("kept wrong window: first %d last %d", h[0].Score, h[len(h)-1].Score)
	}
}

func TestGamesPlayedOutlivesHistory(t *testing.T) {
	st := store.NewMemoryStore()
	sm := NewStateManager(st, nil)
	for i := 0; i < maxHistory+5; i++ {
		sm.RecordGame(GameRecord{Score: i})
	}
	if sm.GamesPlayed() != maxHistory+5 {
		t.Errorf("played %d, want %d", sm.GamesPlayed(), maxHistory+5)
	}
	if got := NewStateManager(st, nil).GamesPlayed(); got != maxHistory+5 {
		t.Errorf("reloaded played %d, want %d", got, maxHistory+5)
	}

	// older saves carry history but no counter
	old := store.NewMemoryStore()
	if err := old.Save(HistoryKey, []GameRecord{{Score: 1}, {Score: 2}}); err != nil {
		t.Fatal(err)
	}
	if got := NewStateManager(old, nil).GamesPlayed(); got != 2 {
		t.Errorf("counter from history: got %d, want 2", got)
	}
}

func TestResetHighScore(t *testing.T) {
	st := store.NewMemoryStore()
	sm := NewStateManager(st, nil)
	sm.AddScore(100)
	sm.ResetHighScore()

	if NewStateManager(st, nil).HighScore() != 0 {
		t.Error("reset high score not persisted")
	}
}
