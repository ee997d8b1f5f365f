package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.InDelta(t, 55, s.TopShoulderY(), 0.001)
	assert.InDelta(t, 355, s.BottomRowY(), 0.001)
	assert.Equal(t, 5, s.MaxLanes())
	assert.NoError(t, ValidateLevels(DefaultLevels(), s))
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero road width", func(s *Settings) { s.RoadWidth = 0 }},
		{"negative lane height", func(s *Settings) { s.LaneHeight = -50 }},
		{"zero tick interval", func(s *Settings) { s.TickInterval = 0 }},
		{"negative bonus time", func(s *Settings) { s.BonusTime = -time.Second }},
		{"no lives", func(s *Settings) { s.InitialLives = 0 }},
		{"zero spawn interval", func(s *Settings) { s.TicksUntilSpawn = 0 }},
		{"chance above ceiling", func(s *Settings) { s.PowerUpChance = 101 }},
		{"negative spacing", func(s *Settings) { s.VehicleSpacing = -1 }},
		{"road narrower than three frogs", func(s *Settings) { s.RoadWidth = 120 }},
		{"lanes overlap goal row", func(s *Settings) { s.TopEdgeOfLanes = 60 }},
		{"no room for lanes", func(s *Settings) { s.RoadHeight = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidArgument)
		})
	}
}

func TestDefaultLevels(t *testing.T) {
	levels := DefaultLevels()
	require.Len(t, levels, 3)
	for i, lvl := range levels {
		assert.Len(t, lvl.Lanes, 5, "level %d", i+1)
	}
	assert.True(t, levels[0].Lanes[4].IsWater())
	assert.Equal(t, VehicleOilSemiTruck, levels[0].Lanes[3].Vehicle)
}

func TestValidateLevels_EmptyLevel(t *testing.T) {
	err := ValidateLevels([]Level{{}}, DefaultSettings())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDirectionJSON(t *testing.T) {
	var d Direction
	require.NoError(t, json.Unmarshal([]byte(`"right"`), &d))
	assert.Equal(t, DirectionRight, d)

	assert.Error(t, json.Unmarshal([]byte(`"sideways"`), &d))

	_, err := ParseDirection("diagonal")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
