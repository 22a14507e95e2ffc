package ebitenui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"snake-classic/game"
	"snake-classic/game/entity"
)

const sampleRate = 44100

type tone struct {
	freq  float64
	dur   time.Duration
	decay float64
}

var cues = map[game.EventKind][]tone{
	game.EventStarted: {{523.25, 80 * time.Millisecond, 3}, {783.99, 120 * time.Millisecond, 3}},
	game.EventPaused:  {{440, 50 * time.Millisecond, 3}},
	game.EventResumed: {{440, 50 * time.Millisecond, 3}},
	game.EventGameOver: {
		{220, 150 * time.Millisecond, 2},
		{164.81, 150 * time.Millisecond, 2},
		{110, 400 * time.Millisecond, 2},
	},
}

var eatCues = map[entity.Tier][]tone{
	entity.Normal: {{880, 100 * time.Millisecond, 3}},
	entity.Bonus:  {{880, 60 * time.Millisecond, 3}, {1318.51, 90 * time.Millisecond, 3}},
	entity.Super:  {{987.77, 60 * time.Millisecond, 3}, {1318.51, 60 * time.Millisecond, 3}, {1975.53, 120 * time.Millisecond, 3}},
}

// pcm renders tones back to back as 16-bit little-endian stereo
func pcm(tones []tone) []byte {
	var buf []byte
	for _, t := range tones {
		n := int(float64(sampleRate) * t.dur.Seconds())
		for i := 0; i < n; i++ {
			sec := float64(i) / sampleRate
			v := int16(math.Sin(2*math.Pi*t.freq*sec) * 4000 * math.Exp(-t.decay*sec))
			for ch := 0; ch < 2; ch++ {
				buf = append(buf, byte(v), byte(v>>8))
			}
		}
	}
	return buf
}

// Sounds plays a pre-rendered clip per event. It implements game.Listener.
type Sounds struct {
	ctx     *audio.Context
	players map[game.EventKind]*audio.Player
	eat     map[entity.Tier]*audio.Player
}

func NewSounds() *Sounds {
	s := &Sounds{
		ctx:     audio.NewContext(sampleRate),
		players: make(map[game.EventKind]*audio.Player),
		eat:     make(map[entity.Tier]*audio.Player),
	}
	for kind, tones := range cues {
		s.players[kind] = s.ctx.NewPlayerFromBytes(pcm(tones))
	}
	for tier, tones := range eatCues {
		s.eat[tier] = s.ctx.NewPlayerFromBytes(pcm(tones))
	}
	return s
}

func (s *Sounds) OnEvent(e game.Event) {
	p := s.players[e.Kind]
	if e.Kind == game.EventFoodEaten {
		p = s.eat[e.Tier]
	}
	if p == nil {
		return
	}
	if err := p.SetPosition(0); err != nil {
		return
	}
	p.Play()
}
