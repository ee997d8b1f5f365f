package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoulder_Layout(t *testing.T) {
	sh := NewShoulder(DefaultSettings())

	slots := sh.Slots()
	require.Len(t, slots, 5)
	for i, slot := range slots {
		assert.InDelta(t, float64(100*(i+1)), slot.X, 0.001)
		assert.InDelta(t, 55, slot.Y, 0.001)
		assert.False(t, slot.Occupied)
	}
	assert.Len(t, sh.Fillers(), 6)
}

func TestShoulder_Occupancy(t *testing.T) {
	sh := NewShoulder(DefaultSettings())

	slot, ok := sh.EmptySlotAt(300)
	require.True(t, ok)
	assert.True(t, sh.Occupy(slot))
	assert.False(t, sh.Occupy(slot), "an occupied slot cannot be landed on again")

	_, ok = sh.EmptySlotAt(300)
	assert.False(t, ok)
	_, ok = sh.EmptySlotAt(301)
	assert.False(t, ok, "alignment must be exact")

	assert.Equal(t, 1, sh.FilledCount())
	assert.False(t, sh.AllFilled())

	for _, s := range sh.Slots() {
		sh.Occupy(s)
	}
	assert.True(t, sh.AllFilled())

	sh.ClearHomes()
	assert.Equal(t, 0, sh.FilledCount())
	for _, s := range sh.Slots() {
		assert.False(t, s.Occupied)
	}
}

func TestScanSlots(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		name     string
		x, y     float64
		occupied bool
		landed   bool
		wall     bool
	}{
		{"aligned with empty slot", 100, 55, false, true, false},
		{"aligned with filled slot", 100, 55, true, false, true},
		{"touching only inside the cushion", 145, 55, false, false, true},
		{"over filler", 50, 55, false, false, false},
		{"below the shoulder", 100, 105, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := NewShoulder(s)
			sh.Slots()[0].Occupied = tt.occupied
			p := NewPlayer(s)
			p.X, p.Y = tt.x, tt.y

			got := ScanSlots(p, sh, s.GoalSlotCushion)
			assert.Equal(t, tt.landed, got.Landed != nil)
			assert.Equal(t, tt.wall, got.Wall)
		})
	}
}
