package game

import "encoding/json"

// SpriteRef names the image a renderer should draw for the player.
type SpriteRef int

const (
	SpriteFrog SpriteRef = iota
	SpriteJumpingLegs
	SpriteStationaryLegs
	SpriteDeath1
	SpriteDeath2
	SpriteDeath3
	SpriteCrossbones
	SpriteLanded
)

func (s SpriteRef) String() string {
	switch s {
	case SpriteFrog:
		return "frog"
	case SpriteJumpingLegs:
		return "jumping_legs"
	case SpriteStationaryLegs:
		return "stationary_legs"
	case SpriteDeath1:
		return "death_1"
	case SpriteDeath2:
		return "death_2"
	case SpriteDeath3:
		return "death_3"
	case SpriteCrossbones:
		return "crossbones"
	case SpriteLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes SpriteRef as a string.
func (s SpriteRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
