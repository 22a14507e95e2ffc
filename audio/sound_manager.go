// Package audio plays short synthesised cues in response to engine events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"snake-classic/game"
)

const (
	sampleRate    = beep.SampleRate(48000)
	defaultVolume = 0.4
)

// SoundManager owns the speaker and a mixer that cues are added to.
// It implements game.Listener.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the speaker. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues cue c on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := NewSound(c, sm.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) OnEvent(e game.Event) {
	sm.Play(CueFor(e))
}

// CueFor maps an engine event to its sound
func CueFor(e game.Event) Cue {
	switch e.Kind {
	case game.EventStarted:
		return CueStart
	case game.EventFoodEaten:
		return EatCue(e.Tier)
	case game.EventPaused, game.EventResumed:
		return CuePause
	case game.EventGameOver:
		return CueGameOver
	}
	return CueNone
}
