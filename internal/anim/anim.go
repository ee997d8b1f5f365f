// Package anim plays the frog's death and jump sequences as frame state
// machines on their own clock, separate from the simulation tick.
package anim

import (
	"sync"
	"time"

	"github.com/ugaemi/frogger-server/internal/game"
)

// Default frame durations.
const (
	DefaultDeathFrame = 250 * time.Millisecond
	DefaultJumpFrame  = 60 * time.Millisecond
)

// Frame is one image of a clip and how long it stays on screen.
type Frame struct {
	Sprite   game.SpriteRef
	Duration time.Duration
}

// Clip is an ordered sequence of frames played once.
type Clip []Frame

// Length returns the total running time of the clip.
func (c Clip) Length() time.Duration {
	var total time.Duration
	for _, f := range c {
		total += f.Duration
	}
	return total
}

// DeathClip returns the death sequence ending on the crossbones.
func DeathClip(frame time.Duration) Clip {
	return Clip{
		{game.SpriteDeath1, frame},
		{game.SpriteDeath2, frame},
		{game.SpriteDeath3, frame},
		{game.SpriteCrossbones, frame},
	}
}

// JumpClip returns the leg sequence shown during a hop.
func JumpClip(frame time.Duration) Clip {
	return Clip{
		{game.SpriteJumpingLegs, frame},
		{game.SpriteStationaryLegs, frame},
	}
}

type state int

const (
	stateIdle state = iota
	stateDeath
	stateJump
)

// Player drives the death and jump clips. It implements game.Animator and
// game.SpriteSource and is safe for concurrent use.
type Player struct {
	mu sync.Mutex

	death Clip
	jump  Clip

	state   state
	frame   int
	elapsed time.Duration
	facing  game.Direction
}

// NewPlayer creates an idle player with the default clips.
func NewPlayer() *Player {
	return NewPlayerWithClips(DeathClip(DefaultDeathFrame), JumpClip(DefaultJumpFrame))
}

// NewPlayerWithClips creates an idle player with custom clips.
func NewPlayerWithClips(death, jump Clip) *Player {
	return &Player{death: death, jump: jump}
}

// StartDeathAnimation starts the death clip from its first frame. It
// pre-empts a jump in progress.
func (p *Player) StartDeathAnimation() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start(stateDeath, p.death)
}

// StartJumpAnimation starts the jump clip unless the frog is dying.
func (p *Player) StartJumpAnimation(dir game.Direction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == stateDeath {
		return
	}
	p.facing = dir
	p.start(stateJump, p.jump)
}

func (p *Player) start(s state, clip Clip) {
	if len(clip) == 0 {
		p.state = stateIdle
		return
	}
	p.state = s
	p.frame = 0
	p.elapsed = 0
}

func (p *Player) clip() Clip {
	switch p.state {
	case stateDeath:
		return p.death
	case stateJump:
		return p.jump
	default:
		return nil
	}
}

// Update advances the active clip by dt. A clip that runs past its last
// frame returns the player to idle.
func (p *Player) Update(dt time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	clip := p.clip()
	if clip == nil || dt <= 0 {
		return
	}

	p.elapsed += dt
	for p.state != stateIdle && p.elapsed >= clip[p.frame].Duration {
		p.elapsed -= clip[p.frame].Duration
		p.frame++
		if p.frame >= len(clip) {
			p.state = stateIdle
			p.frame = 0
			p.elapsed = 0
		}
	}
}

// IsDeathAnimationPlaying reports whether the death clip is running.
func (p *Player) IsDeathAnimationPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == stateDeath
}

// IsJumpAnimationPlaying reports whether the jump clip is running.
func (p *Player) IsJumpAnimationPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == stateJump
}

// Sprite returns the frame to draw, or the plain frog when idle.
func (p *Player) Sprite() game.SpriteRef {
	p.mu.Lock()
	defer p.mu.Unlock()
	clip := p.clip()
	if clip == nil {
		return game.SpriteFrog
	}
	return clip[p.frame].Sprite
}

// Facing returns the direction of the last jump.
func (p *Player) Facing() game.Direction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.facing
}

// Reset stops any clip.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = stateIdle
	p.frame = 0
	p.elapsed = 0
}
