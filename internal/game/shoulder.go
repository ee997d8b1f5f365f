package game

// GoalSlot is a landing target on the shoulder.
type GoalSlot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Occupied bool    `json:"occupied"`
}

// Rect returns the slot's bounding box.
func (g *GoalSlot) Rect() Rect {
	return Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}

// Shoulder is the static row at the top of the playfield holding the goal
// slots and the decorative filler between them.
type Shoulder struct {
	Y       float64
	slots   []*GoalSlot
	fillers []Rect
}

// NewShoulder lays out player-width columns across the road, leaving one
// column clear at each edge. Odd columns hold goal slots, even columns hold
// filler.
func NewShoulder(s Settings) *Shoulder {
	sh := &Shoulder{Y: s.TopShoulderY()}
	w := s.PlayerWidth
	columns := int((s.RoadWidth - 2*w) / w)
	for col := 0; col < columns; col++ {
		x := float64(col+1) * w
		if col%2 == 1 {
			sh.slots = append(sh.slots, &GoalSlot{X: x, Y: sh.Y, Width: w, Height: s.PlayerHeight})
		} else {
			sh.fillers = append(sh.fillers, Rect{X: x, Y: sh.Y, Width: w, Height: s.PlayerHeight})
		}
	}
	return sh
}

// Slots returns the goal slots left to right.
func (sh *Shoulder) Slots() []*GoalSlot {
	return sh.slots
}

// Fillers returns the decorative filler cells.
func (sh *Shoulder) Fillers() []Rect {
	return sh.fillers
}

// EmptySlotAt returns the unoccupied slot whose x equals x exactly.
func (sh *Shoulder) EmptySlotAt(x float64) (*GoalSlot, bool) {
	for _, slot := range sh.slots {
		if slot.X == x && !slot.Occupied {
			return slot, true
		}
	}
	return nil, false
}

// Occupy marks a slot as holding a frog. It returns false if the slot was
// already occupied.
func (sh *Shoulder) Occupy(slot *GoalSlot) bool {
	if slot.Occupied {
		return false
	}
	slot.Occupied = true
	return true
}

// FilledCount returns the number of occupied slots.
func (sh *Shoulder) FilledCount() int {
	n := 0
	for _, slot := range sh.slots {
		if slot.Occupied {
			n++
		}
	}
	return n
}

// AllFilled reports whether every goal slot is occupied.
func (sh *Shoulder) AllFilled() bool {
	return len(sh.slots) > 0 && sh.FilledCount() == len(sh.slots)
}

// ClearHomes empties every goal slot.
func (sh *Shoulder) ClearHomes() {
	for _, slot := range sh.slots {
		slot.Occupied = false
	}
}
