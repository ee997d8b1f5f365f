package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"same box", base, true},
		{"overlap right", Rect{X: 140, Y: 100, Width: 50, Height: 50}, true},
		{"overlap below", Rect{X: 100, Y: 149, Width: 10, Height: 10}, true},
		{"touching right edge", Rect{X: 150, Y: 100, Width: 50, Height: 50}, false},
		{"touching bottom edge", Rect{X: 100, Y: 150, Width: 50, Height: 50}, false},
		{"far away", Rect{X: 400, Y: 400, Width: 10, Height: 10}, false},
		{"contained", Rect{X: 110, Y: 110, Width: 5, Height: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Intersects(tt.other))
		})
	}
}

func TestIsCollisionBetween_Symmetric(t *testing.T) {
	entities := []*Entity{
		{X: 0, Y: 0, Width: 50, Height: 50},
		{X: 25, Y: 25, Width: 75, Height: 40},
		{X: 50, Y: 0, Width: 50, Height: 50},
		{X: -30, Y: 10, Width: 30, Height: 30},
		{X: 200, Y: 200, Width: 150, Height: 40},
	}

	for i, a := range entities {
		for j, b := range entities {
			assert.Equal(t, IsCollisionBetween(a, b), IsCollisionBetween(b, a), "pair %d,%d", i, j)
		}
	}
}

func TestIsCollisionBetweenWithCushion(t *testing.T) {
	slot := &Entity{X: 100, Y: 55, Width: 50, Height: 50}

	tests := []struct {
		name     string
		playerX  float64
		expected bool
	}{
		{"aligned", 100, true},
		{"slightly right", 120, true},
		{"slightly left", 60, true},
		{"overlap only inside cushion", 145, false},
		{"left edge touches", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &Entity{X: tt.playerX, Y: 55, Width: 50, Height: 50}
			assert.Equal(t, tt.expected, IsCollisionBetweenWithCushion(player, slot, 20))
		})
	}
}

func TestRectCushioned(t *testing.T) {
	r := Rect{X: 100, Y: 55, Width: 50, Height: 50}.Cushioned(20)
	assert.Equal(t, Rect{X: 110, Y: 55, Width: 40, Height: 50}, r)
}

func TestClampX(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"inside", 300, 300},
		{"past left edge", -12, 0},
		{"past right edge", 620, 600},
		{"at right limit", 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ClampX(tt.x, 50, 650), 0.001)
		})
	}
}

func TestEntityStep_UnknownDirectionPanics(t *testing.T) {
	e := &Entity{SpeedX: 1, Facing: Direction(42)}
	assert.Panics(t, func() { e.Advance() })
}

func TestEntitySetSpeed_RejectsNegative(t *testing.T) {
	_, err := NewVehicle(VehicleCar, DirectionLeft, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	e := NewPowerUp(PowerUpScoreBonus)
	assert.ErrorIs(t, e.SetSpeed(0, -2), ErrInvalidArgument)
}

func TestEntitySizes(t *testing.T) {
	car, err := NewVehicle(VehicleCar, DirectionLeft, 3)
	assert.NoError(t, err)
	assert.Equal(t, Rect{Width: 75, Height: 40}, car.Rect())

	semi, err := NewVehicle(VehicleSemiTruck, DirectionRight, 3)
	assert.NoError(t, err)
	assert.InDelta(t, 150, semi.Width, 0.001)

	raft, err := NewPlatform(PlatformRaft, DirectionRight, 5)
	assert.NoError(t, err)
	assert.True(t, raft.Landable)
	assert.InDelta(t, 100, raft.Width, 0.001)

	log, err := NewPlatform(PlatformLog, DirectionLeft, 4)
	assert.NoError(t, err)
	assert.Equal(t, "log", log.TypeName())
}
