package game

import "fmt"

// Lane owns a homogeneous population of vehicles or water platforms moving
// in one direction at one speed.
type Lane struct {
	spec      LaneSpec
	Y         float64
	height    float64
	roadWidth float64
	spacing   float64

	entities []*Entity
	powerUps []*Entity
	water    *Entity

	nextID func() int
}

// NewLane creates an empty lane whose band starts at y.
func NewLane(spec LaneSpec, y float64, s Settings) (*Lane, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if s.RoadWidth <= 0 || s.LaneHeight <= 0 {
		return nil, fmt.Errorf("%w: lane needs a positive road width and lane height", ErrInvalidArgument)
	}

	spacing := s.VehicleSpacing
	if spec.IsWater() {
		spacing = s.PlatformSpacing
	}

	return &Lane{
		spec:      spec,
		Y:         y,
		height:    s.LaneHeight,
		roadWidth: s.RoadWidth,
		spacing:   spacing,
	}, nil
}

// Spec returns the lane definition.
func (l *Lane) Spec() LaneSpec {
	return l.spec
}

// IsWater reports whether the lane carries water platforms.
func (l *Lane) IsWater() bool {
	return l.spec.IsWater()
}

// Entities returns the live vehicles or platforms, oldest first. The slice
// must not be modified by the caller.
func (l *Lane) Entities() []*Entity {
	return l.entities
}

// PowerUps returns the power-ups resting in this lane.
func (l *Lane) PowerUps() []*Entity {
	return l.powerUps
}

// Water returns the lane's water crossing strip, or nil for a road lane or
// before the strip has been placed.
func (l *Lane) Water() *Entity {
	return l.water
}

// Len returns the number of live vehicles or platforms.
func (l *Lane) Len() int {
	return len(l.entities)
}

// HasRoom reports whether another entity may be added.
func (l *Lane) HasRoom() bool {
	return len(l.entities) < l.spec.Capacity
}

// AddEntity spawns one entity just beyond the edge the lane flows in from.
// It returns false without error when the lane is full or an existing entity
// is still too close to a playfield edge; the caller retries next cycle.
func (l *Lane) AddEntity() (*Entity, bool) {
	if !l.HasRoom() {
		return nil, false
	}

	e, err := l.newEntity()
	if err != nil {
		return nil, false
	}
	if !l.clearOfEdges(e.Width) {
		return nil, false
	}

	l.place(e)
	l.entities = append(l.entities, e)
	return e, true
}

func (l *Lane) newEntity() (*Entity, error) {
	var (
		e   *Entity
		err error
	)
	if l.spec.IsWater() {
		e, err = NewPlatform(l.spec.Platform, l.spec.Direction, l.spec.Speed)
	} else {
		e, err = NewVehicle(l.spec.Vehicle, l.spec.Direction, l.spec.Speed)
	}
	if err != nil {
		return nil, err
	}
	if l.nextID != nil {
		e.ID = l.nextID()
	}
	return e, nil
}

func (l *Lane) place(e *Entity) {
	e.Y = l.Y + l.verticalOffset(e.Height)
	switch l.spec.Direction {
	case DirectionLeft:
		e.X = l.roadWidth
	case DirectionRight:
		e.X = LeftEdgeOfRoad - e.Width
	default:
		panic(fmt.Sprintf("game: lane cannot flow %s", l.spec.Direction))
	}
}

func (l *Lane) verticalOffset(h float64) float64 {
	return (l.height - h) / 2
}

// clearOfEdges reports whether every live entity keeps the lane spacing from
// both playfield edges. In a leftward lane an entity leaving through the left
// edge reappears at the spawn point, so it must also clear the width of the
// entity about to be placed there.
func (l *Lane) clearOfEdges(newWidth float64) bool {
	leftClearance := l.spacing
	if l.spec.Direction == DirectionLeft {
		leftClearance += newWidth
	}
	for _, e := range l.entities {
		if e.X-leftClearance < LeftEdgeOfRoad {
			return false
		}
		if e.X+e.Width+l.spacing > l.roadWidth {
			return false
		}
	}
	return true
}

// Move advances every entity by its speed and wraps the ones that left the
// playfield back to the opposite side.
func (l *Lane) Move() {
	for _, e := range l.entities {
		e.Advance()
		l.wrap(e)
	}
}

func (l *Lane) wrap(e *Entity) {
	switch {
	case e.X < LeftEdgeOfRoad && e.Facing == DirectionLeft:
		e.X += l.roadWidth
	case e.X > l.roadWidth && e.Facing == DirectionRight:
		e.X -= l.roadWidth + e.Width
	}
}

// TrimToOne discards every entity but the longest-resident one and returns
// the discarded entities.
func (l *Lane) TrimToOne() []*Entity {
	if len(l.entities) <= 1 {
		return nil
	}
	removed := append([]*Entity(nil), l.entities[1:]...)
	l.entities = l.entities[:1]
	return removed
}

// Clear removes every entity, power-up and the water strip from the lane.
func (l *Lane) Clear() {
	l.entities = nil
	l.powerUps = nil
	l.water = nil
}

// ResetSpeed restores every entity to the lane's base speed.
func (l *Lane) ResetSpeed() {
	for _, e := range l.entities {
		e.SpeedX = l.spec.Speed
	}
}

// PlaceWater places the lane's water crossing strip once per level. It
// returns false for road lanes and when the strip is already in place.
func (l *Lane) PlaceWater() (*Entity, bool) {
	if !l.spec.IsWater() || l.water != nil {
		return nil, false
	}
	l.water = &Entity{
		Kind:   KindWater,
		X:      LeftEdgeOfRoad,
		Y:      l.Y,
		Width:  l.roadWidth,
		Height: l.height,
		Facing: l.spec.Direction,
	}
	if l.nextID != nil {
		l.water.ID = l.nextID()
	}
	return l.water, true
}

// AddPowerUp rests a power-up in the lane at x, centred in the lane band.
func (l *Lane) AddPowerUp(p *Entity, x float64) {
	p.X = ClampX(x, p.Width, l.roadWidth)
	p.Y = l.Y + l.verticalOffset(p.Height)
	l.powerUps = append(l.powerUps, p)
}

// RemovePowerUp takes a collected power-up out of play. It reports whether
// the power-up was found.
func (l *Lane) RemovePowerUp(p *Entity) bool {
	for i, candidate := range l.powerUps {
		if candidate == p {
			l.powerUps = append(l.powerUps[:i], l.powerUps[i+1:]...)
			return true
		}
	}
	return false
}
