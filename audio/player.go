package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/events"
)

const sampleRate = beep.SampleRate(44100)

// Player consumes the audio event queue and plays tones through the
// speaker. The core never depends on its state; a nil or disabled player
// just drains the queue.
type Player struct {
	enabled bool
	volume  float64

	lastEngineTone time.Time
}

// NewPlayer initializes the speaker. A failed init is non-fatal: the game
// runs silent and events are still drained so the queue cannot grow.
func NewPlayer() (*Player, error) {
	p := &Player{volume: 1}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// Process drains this frame's audio events
// Runs outside the scheduler, after gameplay systems have published
func (p *Player) Process(w *engine.World) {
	queue := engine.EnsureResource(w.Resources, events.NewQueue[Event])
	queue.Consume(p.handle)
}

func (p *Player) handle(ev Event) {
	switch ev.Kind {
	case EventPlaySound:
		p.playTone(soundFreq(ev.Sound), 60*time.Millisecond)
	case EventStopSound, EventStopMusic:
		if p.enabled {
			speaker.Clear()
		}
	case EventSetVolume:
		p.volume = ev.Volume
	case EventPlayMusic:
		// No music tracks shipped; a long low tone marks the slot
		p.playTone(110, 2*time.Second)
	}
}

// EngineTone plays a short tone pitched by engine rpm, rate-limited so the
// drone does not saturate the mixer
func (p *Player) EngineTone(rpm float64) {
	if time.Since(p.lastEngineTone) < 120*time.Millisecond {
		return
	}
	p.lastEngineTone = time.Now()
	p.playTone(60+rpm/40, 100*time.Millisecond)
}

func (p *Player) playTone(freq float64, dur time.Duration) {
	if !p.enabled || p.volume <= 0 {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(dur), tone))
}

func soundFreq(s Sound) float64 {
	switch s {
	case SoundGearShift:
		return 660
	case SoundSkid:
		return 220
	case SoundCollision:
		return 110
	case SoundCheckpoint:
		return 880
	case SoundCountdown:
		return 440
	}
	return 440
}
