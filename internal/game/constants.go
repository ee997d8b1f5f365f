package game

import "time"

// Playfield defaults (pixels)
const (
	DefaultRoadWidth      = 650.0
	DefaultRoadHeight     = 410.0
	DefaultLaneHeight     = 50.0
	DefaultBottomOffset   = 5.0
	DefaultTopEdgeOfLanes = 105.0
	LeftEdgeOfRoad        = 0.0
)

// Player defaults
const (
	DefaultInitialLives = 4
	DefaultInitialScore = 0
	DefaultPlayerSpeed  = 50.0
	DefaultPlayerWidth  = 50.0
	DefaultPlayerHeight = 50.0
)

// Timing
const (
	DefaultTickInterval    = 15 * time.Millisecond
	DefaultTicksUntilSpawn = 200
	DefaultTimeLimit       = 10 * time.Second
	DefaultBonusTime       = 5 * time.Second
)

// Scoring
const (
	DefaultScoreMultiplier = 200.0
	DefaultScoreBonus      = 500
)

// Spawning
const (
	DefaultVehicleSpacing  = 25.0
	DefaultPlatformSpacing = 100.0
	DefaultPowerUpChance   = 99.9
	PowerUpChanceCeiling   = 100.0
	DefaultGoalSlotCushion = 20.0
)
