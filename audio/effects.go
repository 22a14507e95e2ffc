package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"snake-classic/game/entity"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite tone of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is handled as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Cue names one of the game's sound effects
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueEat
	CueBonus
	CueSuper
	CuePause
	CueGameOver
)

// EatCue picks the pickup sound for a food tier
func EatCue(t entity.Tier) Cue {
	switch t {
	case entity.Bonus:
		return CueBonus
	case entity.Super:
		return CueSuper
	}
	return CueEat
}

// NewSound builds a fresh finite streamer for c at volume vol (0..1).
// It returns nil for CueNone.
func NewSound(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueStart:
		s = beep.Seq(
			note(523.25, 80*time.Millisecond, WaveSquare, rate),
			note(783.99, 120*time.Millisecond, WaveSquare, rate),
		)
	case CueEat:
		s = note(660, 70*time.Millisecond, WaveSine, rate)
	case CueBonus:
		s = beep.Seq(
			note(880, 60*time.Millisecond, WaveSine, rate),
			note(1318.51, 90*time.Millisecond, WaveSine, rate),
		)
	case CueSuper:
		s = beep.Seq(
			note(987.77, 60*time.Millisecond, WaveSquare, rate),
			note(1318.51, 60*time.Millisecond, WaveSquare, rate),
			note(1975.53, 120*time.Millisecond, WaveSquare, rate),
		)
	case CuePause:
		sine, err := generators.SineTone(rate, 440)
		if err != nil {
			sine = NewOscillator(440, 50*time.Millisecond, WaveSine, rate)
		}
		s = beep.Take(rate.N(50*time.Millisecond), sine)
	case CueGameOver:
		s = beep.Seq(
			note(220, 150*time.Millisecond, WaveSaw, rate),
			note(164.81, 150*time.Millisecond, WaveSaw, rate),
			note(110, 400*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}
