package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoad(t *testing.T, s Settings, levels []Level) *Road {
	t.Helper()
	r, err := NewRoad(s, levels, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, r.LoadLevel(1))
	return r
}

func TestNewRoad_Errors(t *testing.T) {
	t.Run("nil random source", func(t *testing.T) {
		_, err := NewRoad(DefaultSettings(), DefaultLevels(), nil)
		assert.ErrorIs(t, err, ErrMissingCollaborator)
	})

	t.Run("no levels", func(t *testing.T) {
		_, err := NewRoad(DefaultSettings(), nil, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("non-positive road width", func(t *testing.T) {
		s := DefaultSettings()
		s.RoadWidth = 0
		_, err := NewRoad(s, DefaultLevels(), rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("too many lanes", func(t *testing.T) {
		lanes := make([]LaneSpec, 10)
		for i := range lanes {
			lanes[i] = vehicleLane(VehicleCar, DirectionLeft, 3, 3)
		}
		_, err := NewRoad(DefaultSettings(), []Level{{Lanes: lanes}}, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRoadLoadLevel(t *testing.T) {
	r := newTestRoad(t, DefaultSettings(), DefaultLevels())

	lanes := r.Lanes()
	require.Len(t, lanes, 5)
	for i, l := range lanes {
		assert.InDelta(t, DefaultTopEdgeOfLanes+float64(i)*DefaultLaneHeight, l.Y, 0.001, "lane %d", i)
		assert.Equal(t, 1, l.Len(), "lane %d starts with one entity", i)
	}
	assert.Len(t, r.WaterStrips(), 1)
	assert.Len(t, r.Entities(), 5)
	assert.Equal(t, 1, r.Level())

	require.NoError(t, r.LoadLevel(3))
	assert.Len(t, r.WaterStrips(), 2)
	assert.Equal(t, 3, r.Level())
	assert.Equal(t, 3, r.TotalLevels())

	assert.ErrorIs(t, r.LoadLevel(4), ErrInvalidArgument)
	assert.ErrorIs(t, r.LoadLevel(0), ErrInvalidArgument)
}

func TestRoadLoadLevel_ClearsPowerUps(t *testing.T) {
	r := newTestRoad(t, DefaultSettings(), DefaultLevels())
	r.Lanes()[0].AddPowerUp(NewPowerUp(PowerUpScoreBonus), 200)
	require.Len(t, r.PowerUps(), 1)

	require.NoError(t, r.LoadLevel(2))
	assert.Empty(t, r.PowerUps())
}

func TestRoadCheckToSpawn_Interval(t *testing.T) {
	s := DefaultSettings()
	s.TicksUntilSpawn = 5
	levels := []Level{{Lanes: []LaneSpec{vehicleLane(VehicleCar, DirectionLeft, 4, 3)}}}
	r := newTestRoad(t, s, levels)

	for i := 0; i < 100; i++ {
		r.MoveAll()
	}

	for i := 0; i < 4; i++ {
		assert.Empty(t, r.CheckToSpawn(), "call %d", i+1)
	}
	spawned := r.CheckToSpawn()
	assert.Len(t, spawned, 1)
	assert.Len(t, r.Entities(), 2)

	for i := 0; i < 4; i++ {
		assert.Empty(t, r.CheckToSpawn())
	}
}

func TestRoadResetOneObjectPerLane(t *testing.T) {
	s := DefaultSettings()
	s.TicksUntilSpawn = 1
	r := newTestRoad(t, s, DefaultLevels())

	for i := 0; i < 2000; i++ {
		r.MoveAll()
		r.CheckToSpawn()
	}
	require.Greater(t, len(r.Entities()), len(r.Lanes()))

	r.ResetOneObjectPerLane()
	for _, l := range r.Lanes() {
		assert.Equal(t, 1, l.Len())
	}
}

func TestRoadIsOverWater(t *testing.T) {
	r := newTestRoad(t, DefaultSettings(), DefaultLevels())
	water := r.Lanes()[4]
	require.True(t, water.IsWater())

	assert.True(t, r.IsOverWater(Rect{X: 300, Y: water.Y, Width: 50, Height: 50}))
	assert.False(t, r.IsOverWater(Rect{X: 300, Y: water.Y + DefaultLaneHeight, Width: 50, Height: 50}))
	assert.False(t, r.IsOverWater(Rect{X: 300, Y: r.Lanes()[0].Y, Width: 50, Height: 50}))
}
