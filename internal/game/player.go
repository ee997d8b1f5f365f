package game

// Player is the controlled actor. It is created once per game and
// repositioned between lives and levels.
type Player struct {
	Entity

	Dying   bool
	Jumping bool
	CanMove bool
	Sprite  SpriteRef
}

// NewPlayer creates the actor at the start position with movement enabled.
func NewPlayer(s Settings) *Player {
	p := &Player{
		Entity: Entity{
			Kind:   KindPlayer,
			Width:  s.PlayerWidth,
			Height: s.PlayerHeight,
			Facing: DirectionUp,
		},
		CanMove: true,
		Sprite:  SpriteFrog,
	}
	p.ResetPosition(s)
	return p
}

// ResetPosition moves the actor to bottom-centre facing up.
func (p *Player) ResetPosition(s Settings) {
	p.X = s.RoadWidth/2 - p.Width/2
	p.Y = s.BottomRowY()
	p.Facing = DirectionUp
	p.SpeedX = 0
	p.SpeedY = 0
}

// Kill marks the actor as dying and freezes it.
func (p *Player) Kill() {
	p.Dying = true
	p.Jumping = false
	p.CanMove = false
	p.Sprite = SpriteDeath1
}

// Revive clears the dying flag and restores the idle sprite. Movement stays
// as it is until the caller re-enables it.
func (p *Player) Revive() {
	p.Dying = false
	p.Jumping = false
	p.Sprite = SpriteFrog
}
