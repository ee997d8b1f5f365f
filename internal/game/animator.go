package game

// Animator plays the player's death and jump sequences on its own clock.
// The engine starts sequences and polls the flags once per tick; it never
// advances frames itself.
type Animator interface {
	StartDeathAnimation()
	StartJumpAnimation(dir Direction)
	IsDeathAnimationPlaying() bool
	IsJumpAnimationPlaying() bool
}

// SpriteSource is implemented by animators that can report the frame they
// are currently showing.
type SpriteSource interface {
	Sprite() SpriteRef
}
