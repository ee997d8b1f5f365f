package game

import "encoding/json"

type SessionState int

const (
	StateWaiting SessionState = iota
	StatePlaying
	StateEnded
)

func (s SessionState) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome classifies how the player's attempt ended on a given tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHit
	OutcomeDrowned
	OutcomeTimeout
	OutcomeWall
	OutcomeLanded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeDrowned:
		return "drowned"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeWall:
		return "wall"
	case OutcomeLanded:
		return "landed"
	default:
		return "none"
	}
}

// MarshalJSON serializes Outcome as a string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Sound identifies a fire-and-forget sound effect requested by the core.
type Sound int

const (
	SoundNone Sound = iota
	SoundBump
	SoundVehicleHit
	SoundDrown
	SoundTimeout
	SoundGoalLanding
	SoundGameOver
	SoundLevelComplete
	SoundPowerUp
)

func (s Sound) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundVehicleHit:
		return "vehicle_hit"
	case SoundDrown:
		return "drown"
	case SoundTimeout:
		return "timeout"
	case SoundGoalLanding:
		return "goal_landing"
	case SoundGameOver:
		return "game_over"
	case SoundLevelComplete:
		return "level_complete"
	case SoundPowerUp:
		return "power_up"
	default:
		return "none"
	}
}

// MarshalJSON serializes Sound as a string.
func (s Sound) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
