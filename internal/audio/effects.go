package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/ugaemi/frogger-server/internal/game"
)

const (
	attack  = 5 * time.Millisecond
	release = 30 * time.Millisecond
)

type note struct {
	from, to float64
	length   time.Duration
	wave     Wave
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	return Envelope(Sweep(n.from, n.to, n.length, n.wave, rate), n.length, attack, release, rate)
}

func tone(freq float64, d time.Duration, wave Wave) note {
	return note{freq, freq, d, wave}
}

// phrases lists the notes played in order for each sound.
var phrases = map[game.Sound][]note{
	game.SoundBump: {tone(110, 80*time.Millisecond, WaveSquare)},
	game.SoundVehicleHit: {
		tone(0, 60*time.Millisecond, WaveNoise),
		note{180, 60, 200 * time.Millisecond, WaveSquare},
	},
	game.SoundDrown:   {note{600, 150, 400 * time.Millisecond, WaveSine}},
	game.SoundTimeout: {tone(440, 150*time.Millisecond, WaveSquare), tone(330, 200*time.Millisecond, WaveSquare)},
	game.SoundGoalLanding: {
		tone(660, 100*time.Millisecond, WaveSine),
		tone(880, 140*time.Millisecond, WaveSine),
	},
	game.SoundGameOver: {
		tone(392, 200*time.Millisecond, WaveSquare),
		tone(330, 200*time.Millisecond, WaveSquare),
		tone(262, 200*time.Millisecond, WaveSquare),
		tone(196, 400*time.Millisecond, WaveSquare),
	},
	game.SoundLevelComplete: {
		tone(523, 120*time.Millisecond, WaveSine),
		tone(659, 120*time.Millisecond, WaveSine),
		tone(784, 120*time.Millisecond, WaveSine),
		tone(1047, 240*time.Millisecond, WaveSine),
	},
	game.SoundPowerUp: {note{400, 1200, 150 * time.Millisecond, WaveSine}},
}

// Effect returns a fresh streamer for a sound, or nil for SoundNone and
// unknown ids.
func Effect(s game.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := phrases[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// Length returns how long a sound plays.
func Length(s game.Sound) time.Duration {
	var total time.Duration
	for _, n := range phrases[s] {
		total += n.length
	}
	return total
}
