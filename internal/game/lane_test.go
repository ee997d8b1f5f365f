package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLane(t *testing.T, spec LaneSpec) *Lane {
	t.Helper()
	l, err := NewLane(spec, DefaultTopEdgeOfLanes, DefaultSettings())
	require.NoError(t, err)
	return l
}

func TestLaneMove_WrapsLeftward(t *testing.T) {
	s := DefaultSettings()
	s.RoadWidth = 300
	l, err := NewLane(vehicleLane(VehicleCar, DirectionLeft, 5, 1), 105, s)
	require.NoError(t, err)

	v := &Entity{Kind: KindVehicle, X: 150, Width: 30, Height: 40, SpeedX: 5, Facing: DirectionLeft}
	l.entities = []*Entity{v}

	wrapped := false
	prev := v.X
	for i := 0; i < 31; i++ {
		l.Move()
		if v.X > prev {
			wrapped = true
		}
		prev = v.X
	}

	assert.True(t, wrapped, "vehicle should have wrapped")
	assert.GreaterOrEqual(t, v.X, 269.0)
	assert.LessOrEqual(t, v.X, 300.0)
}

func TestLaneMove_WrapsRightward(t *testing.T) {
	l := newTestLane(t, waterLane(PlatformRaft, DirectionRight, 5, 1))
	e, ok := l.AddEntity()
	require.True(t, ok)
	assert.InDelta(t, -100, e.X, 0.001)

	prev := e.X
	for i := 0; i < 1000; i++ {
		l.Move()
		if e.X < prev {
			break
		}
		prev = e.X
	}
	assert.Less(t, e.X, 0.0)
	assert.GreaterOrEqual(t, e.X, -e.Width)
}

func TestLane_WrapInvariant(t *testing.T) {
	specs := []LaneSpec{
		vehicleLane(VehicleCar, DirectionLeft, 4, 4),
		vehicleLane(VehicleSemiTruck, DirectionRight, 3.5, 2),
		waterLane(PlatformLog, DirectionLeft, 4.5, 2),
		waterLane(PlatformRaft, DirectionRight, 5, 5),
	}

	for _, spec := range specs {
		t.Run(spec.Direction.String()+"/"+spec.Kind.String(), func(t *testing.T) {
			l := newTestLane(t, spec)
			for tick := 0; tick < 5000; tick++ {
				if tick%DefaultTicksUntilSpawn == 0 {
					l.AddEntity()
				}
				l.Move()
				for _, e := range l.Entities() {
					assert.GreaterOrEqual(t, e.X, -e.Width)
					assert.LessOrEqual(t, e.X, DefaultRoadWidth+e.Width)
				}
			}
		})
	}
}

func TestLane_SpacingInvariant(t *testing.T) {
	specs := []LaneSpec{
		vehicleLane(VehicleCar, DirectionLeft, 4, 5),
		vehicleLane(VehicleCar, DirectionRight, 2, 5),
		vehicleLane(VehicleOilSemiTruck, DirectionLeft, 5, 3),
		waterLane(PlatformRaft, DirectionRight, 5, 5),
		waterLane(PlatformLog, DirectionLeft, 4, 2),
	}

	for _, spec := range specs {
		t.Run(spec.Direction.String()+"/"+spec.Kind.String(), func(t *testing.T) {
			l := newTestLane(t, spec)
			spawns := 0
			for tick := 0; tick < 20000; tick++ {
				if tick%50 == 0 {
					if _, ok := l.AddEntity(); ok {
						spawns++
						assertSpacing(t, l)
					}
				}
				l.Move()
			}
			assert.Greater(t, spawns, 1)
		})
	}
}

func assertSpacing(t *testing.T, l *Lane) {
	t.Helper()
	sorted := append([]*Entity(nil), l.Entities()...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].X - (sorted[i-1].X + sorted[i-1].Width)
		assert.GreaterOrEqual(t, gap, l.spacing, "gap between entities %d and %d", i-1, i)
	}
}

func TestLane_CapacityInvariant(t *testing.T) {
	l := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 6, 3))
	for tick := 0; tick < 10000; tick++ {
		l.AddEntity()
		l.Move()
		assert.LessOrEqual(t, l.Len(), 3)
	}
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.HasRoom())
}

func TestLaneAddEntity_Placement(t *testing.T) {
	t.Run("leftward spawns at road width", func(t *testing.T) {
		l := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 3, 3))
		e, ok := l.AddEntity()
		require.True(t, ok)
		assert.InDelta(t, DefaultRoadWidth, e.X, 0.001)
		assert.InDelta(t, DefaultTopEdgeOfLanes+5, e.Y, 0.001)
		assert.Equal(t, DirectionLeft, e.Facing)
	})

	t.Run("rightward spawns one width off screen", func(t *testing.T) {
		l := newTestLane(t, vehicleLane(VehicleSemiTruck, DirectionRight, 3, 3))
		e, ok := l.AddEntity()
		require.True(t, ok)
		assert.InDelta(t, -150, e.X, 0.001)
	})

	t.Run("deferred while the spawn edge is busy", func(t *testing.T) {
		l := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 3, 3))
		_, ok := l.AddEntity()
		require.True(t, ok)
		_, ok = l.AddEntity()
		assert.False(t, ok)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("water lane spawns platforms", func(t *testing.T) {
		l := newTestLane(t, waterLane(PlatformLog, DirectionLeft, 4, 2))
		e, ok := l.AddEntity()
		require.True(t, ok)
		assert.Equal(t, KindPlatform, e.Kind)
		assert.True(t, e.Landable)
	})
}

func TestLaneTrimToOne_KeepsOldest(t *testing.T) {
	l := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 10, 4))
	first, ok := l.AddEntity()
	require.True(t, ok)
	for l.Len() < 3 {
		l.Move()
		l.AddEntity()
	}

	removed := l.TrimToOne()
	assert.Len(t, removed, 2)
	require.Equal(t, 1, l.Len())
	assert.Same(t, first, l.Entities()[0])
	assert.Nil(t, l.TrimToOne())
}

func TestLaneResetSpeed(t *testing.T) {
	l := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 3, 3))
	e, ok := l.AddEntity()
	require.True(t, ok)
	e.SpeedX = 9
	l.ResetSpeed()
	assert.InDelta(t, 3, e.SpeedX, 0.001)
}

func TestLanePlaceWater(t *testing.T) {
	road := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 3, 3))
	_, ok := road.PlaceWater()
	assert.False(t, ok)

	water := newTestLane(t, waterLane(PlatformRaft, DirectionRight, 5, 5))
	strip, ok := water.PlaceWater()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: DefaultTopEdgeOfLanes, Width: DefaultRoadWidth, Height: DefaultLaneHeight}, strip.Rect())

	_, ok = water.PlaceWater()
	assert.False(t, ok, "strip is placed once per level")

	water.Clear()
	assert.Nil(t, water.Water())
	_, ok = water.PlaceWater()
	assert.True(t, ok)
}

func TestLanePowerUps(t *testing.T) {
	l := newTestLane(t, vehicleLane(VehicleCar, DirectionLeft, 3, 3))
	p := NewPowerUp(PowerUpScoreBonus)
	l.AddPowerUp(p, 640)

	assert.InDelta(t, DefaultRoadWidth-p.Width, p.X, 0.001)
	assert.InDelta(t, DefaultTopEdgeOfLanes+10, p.Y, 0.001)
	assert.Len(t, l.PowerUps(), 1)

	assert.True(t, l.RemovePowerUp(p))
	assert.False(t, l.RemovePowerUp(p))
	assert.Empty(t, l.PowerUps())
}

func TestNewLane_InvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		spec LaneSpec
	}{
		{"vertical direction", vehicleLane(VehicleCar, DirectionUp, 3, 3)},
		{"negative speed", vehicleLane(VehicleCar, DirectionLeft, -1, 3)},
		{"zero capacity", waterLane(PlatformLog, DirectionLeft, 3, 0)},
		{"unknown vehicle", vehicleLane(VehicleType(9), DirectionLeft, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLane(tt.spec, 105, DefaultSettings())
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
