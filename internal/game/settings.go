package game

import (
	"fmt"
	"time"
)

// Settings is the immutable tuning of one game. It is built once at startup
// and passed by value into the road, ledger, countdown and engine.
type Settings struct {
	RoadWidth      float64 `yaml:"roadWidth"`
	RoadHeight     float64 `yaml:"roadHeight"`
	LaneHeight     float64 `yaml:"laneHeight"`
	BottomOffset   float64 `yaml:"bottomOffset"`
	TopEdgeOfLanes float64 `yaml:"topEdgeOfLanes"`

	InitialLives int     `yaml:"initialLives"`
	InitialScore int     `yaml:"initialScore"`
	PlayerSpeed  float64 `yaml:"playerSpeed"`
	PlayerWidth  float64 `yaml:"playerWidth"`
	PlayerHeight float64 `yaml:"playerHeight"`

	TickInterval    time.Duration `yaml:"tickInterval"`
	TicksUntilSpawn int           `yaml:"ticksUntilSpawn"`
	TimeLimit       time.Duration `yaml:"timeLimit"`
	BonusTime       time.Duration `yaml:"bonusTime"`

	ScoreMultiplier float64 `yaml:"scoreMultiplier"`
	ScoreBonus      int     `yaml:"scoreBonus"`

	VehicleSpacing  float64 `yaml:"vehicleSpacing"`
	PlatformSpacing float64 `yaml:"platformSpacing"`
	PowerUpChance   float64 `yaml:"powerUpChance"`
	GoalSlotCushion float64 `yaml:"goalSlotCushion"`
}

// DefaultSettings returns the tuning of the classic three-level game.
func DefaultSettings() Settings {
	return Settings{
		RoadWidth:       DefaultRoadWidth,
		RoadHeight:      DefaultRoadHeight,
		LaneHeight:      DefaultLaneHeight,
		BottomOffset:    DefaultBottomOffset,
		TopEdgeOfLanes:  DefaultTopEdgeOfLanes,
		InitialLives:    DefaultInitialLives,
		InitialScore:    DefaultInitialScore,
		PlayerSpeed:     DefaultPlayerSpeed,
		PlayerWidth:     DefaultPlayerWidth,
		PlayerHeight:    DefaultPlayerHeight,
		TickInterval:    DefaultTickInterval,
		TicksUntilSpawn: DefaultTicksUntilSpawn,
		TimeLimit:       DefaultTimeLimit,
		BonusTime:       DefaultBonusTime,
		ScoreMultiplier: DefaultScoreMultiplier,
		ScoreBonus:      DefaultScoreBonus,
		VehicleSpacing:  DefaultVehicleSpacing,
		PlatformSpacing: DefaultPlatformSpacing,
		PowerUpChance:   DefaultPowerUpChance,
		GoalSlotCushion: DefaultGoalSlotCushion,
	}
}

// TopShoulderY is the y coordinate of the goal slot row.
func (s Settings) TopShoulderY() float64 {
	return s.LaneHeight + s.BottomOffset
}

// BottomRowY is the y coordinate the player starts each attempt on.
func (s Settings) BottomRowY() float64 {
	return s.RoadHeight - s.PlayerHeight - s.BottomOffset
}

// MaxLanes is the number of lanes that fit between the top lane edge and the
// bottom row.
func (s Settings) MaxLanes() int {
	return int((s.BottomRowY() - s.TopEdgeOfLanes) / s.LaneHeight)
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"road width", s.RoadWidth},
		{"road height", s.RoadHeight},
		{"lane height", s.LaneHeight},
		{"player speed", s.PlayerSpeed},
		{"player width", s.PlayerWidth},
		{"player height", s.PlayerHeight},
		{"tick interval", float64(s.TickInterval)},
		{"time limit", float64(s.TimeLimit)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidArgument, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"bottom offset", s.BottomOffset},
		{"top edge of lanes", s.TopEdgeOfLanes},
		{"bonus time", float64(s.BonusTime)},
		{"score multiplier", s.ScoreMultiplier},
		{"score bonus", float64(s.ScoreBonus)},
		{"initial score", float64(s.InitialScore)},
		{"vehicle spacing", s.VehicleSpacing},
		{"platform spacing", s.PlatformSpacing},
		{"goal slot cushion", s.GoalSlotCushion},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidArgument, p.name, p.value)
		}
	}

	if s.InitialLives < 1 {
		return fmt.Errorf("%w: initial lives must be at least 1, got %d", ErrInvalidArgument, s.InitialLives)
	}
	if s.TicksUntilSpawn < 1 {
		return fmt.Errorf("%w: ticks until spawn must be at least 1, got %d", ErrInvalidArgument, s.TicksUntilSpawn)
	}
	if s.PowerUpChance < 0 || s.PowerUpChance > PowerUpChanceCeiling {
		return fmt.Errorf("%w: power-up chance must be within [0, %v], got %v", ErrInvalidArgument, PowerUpChanceCeiling, s.PowerUpChance)
	}
	if s.PlayerWidth*3 > s.RoadWidth {
		return fmt.Errorf("%w: road width %v too narrow for player width %v", ErrInvalidArgument, s.RoadWidth, s.PlayerWidth)
	}
	if s.TopEdgeOfLanes < s.TopShoulderY()+s.PlayerHeight {
		return fmt.Errorf("%w: lanes must start below the goal row", ErrInvalidArgument)
	}
	if s.BottomRowY() <= s.TopEdgeOfLanes {
		return fmt.Errorf("%w: road height %v leaves no room for lanes", ErrInvalidArgument, s.RoadHeight)
	}
	return nil
}
