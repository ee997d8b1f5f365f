package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ugaemi/frogger-server/internal/game"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// DefaultVolume is the linear gain applied to every effect.
const DefaultVolume = 0.3

// Player plays game sounds through the speaker. A Player that failed to
// initialise, or was never initialised, stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Open returns an initialised player, or a silent one when audio is disabled
// or the device cannot be opened.
func Open(enabled bool) *Player {
	p := NewPlayer()
	if !enabled {
		return p
	}
	if err := p.Init(); err != nil {
		slog.Warn("audio unavailable, continuing silently", "error", err)
	}
	return p
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a sound effect. It never blocks on playback.
func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Effect(s, SampleRate, p.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// PlayEvents plays the sound of every sound event.
func (p *Player) PlayEvents(events []game.Event) {
	for _, e := range events {
		if e.Type == game.EventSound {
			p.Play(e.Sound)
		}
	}
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
