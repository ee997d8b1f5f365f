package game

import (
	"fmt"
	"math/rand"
)

// Road aggregates the lanes of the current level. It drives per-tick
// movement, the periodic spawn wave and random power-up placement.
type Road struct {
	settings Settings
	levels   []Level
	rng      *rand.Rand

	lanes  []*Lane
	level  int
	ticks  int
	nextID int
}

// NewRoad creates a road over the given level list. No level is loaded
// until LoadLevel is called.
func NewRoad(s Settings, levels []Level, rng *rand.Rand) (*Road, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: road needs a random source", ErrMissingCollaborator)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateLevels(levels, s); err != nil {
		return nil, err
	}
	return &Road{settings: s, levels: levels, rng: rng}, nil
}

func (r *Road) newID() int {
	r.nextID++
	return r.nextID
}

// LoadLevel clears the outgoing lanes and builds the lanes of the given
// 1-based level top-down from the lane baseline. Every lane starts with one
// entity and water lanes get their crossing strip.
func (r *Road) LoadLevel(level int) error {
	if level < 1 || level > len(r.levels) {
		return fmt.Errorf("%w: level %d out of range 1..%d", ErrInvalidArgument, level, len(r.levels))
	}

	for _, l := range r.lanes {
		l.Clear()
	}

	specs := r.levels[level-1].Lanes
	lanes := make([]*Lane, 0, len(specs))
	for i, spec := range specs {
		y := r.settings.TopEdgeOfLanes + float64(i)*r.settings.LaneHeight
		l, err := NewLane(spec, y, r.settings)
		if err != nil {
			return fmt.Errorf("level %d lane %d: %w", level, i+1, err)
		}
		l.nextID = r.newID
		l.PlaceWater()
		l.AddEntity()
		l.ResetSpeed()
		lanes = append(lanes, l)
	}

	r.lanes = lanes
	r.level = level
	r.ticks = 0
	return nil
}

// Level returns the 1-based level currently loaded, or 0 before the first
// LoadLevel.
func (r *Road) Level() int {
	return r.level
}

// TotalLevels returns the number of level definitions.
func (r *Road) TotalLevels() int {
	return len(r.levels)
}

// Lanes returns the lanes of the current level, top lane first.
func (r *Road) Lanes() []*Lane {
	return r.lanes
}

// MoveAll advances every entity in every lane.
func (r *Road) MoveAll() {
	for _, l := range r.lanes {
		l.Move()
	}
}

// CheckToSpawn counts one tick. When the count reaches the spawn interval
// every lane attempts one spawn and the count restarts. It returns the
// entities spawned this call.
func (r *Road) CheckToSpawn() []*Entity {
	r.ticks++
	if r.ticks < r.settings.TicksUntilSpawn {
		return nil
	}
	r.ticks = 0

	var spawned []*Entity
	for _, l := range r.lanes {
		if e, ok := l.AddEntity(); ok {
			spawned = append(spawned, e)
		}
	}
	return spawned
}

// ResetOneObjectPerLane trims every lane back to its longest-resident entity.
func (r *Road) ResetOneObjectPerLane() {
	for _, l := range r.lanes {
		l.TrimToOne()
	}
}

// Entities returns the flattened vehicles and platforms of every lane.
func (r *Road) Entities() []*Entity {
	var all []*Entity
	for _, l := range r.lanes {
		all = append(all, l.Entities()...)
	}
	return all
}

// PowerUps returns the power-ups resting on the road.
func (r *Road) PowerUps() []*Entity {
	var all []*Entity
	for _, l := range r.lanes {
		all = append(all, l.PowerUps()...)
	}
	return all
}

// RemovePowerUp takes a power-up out of whichever lane holds it.
func (r *Road) RemovePowerUp(p *Entity) bool {
	for _, l := range r.lanes {
		if l.RemovePowerUp(p) {
			return true
		}
	}
	return false
}

// WaterStrips returns the water crossing strips of the current level.
func (r *Road) WaterStrips() []*Entity {
	var strips []*Entity
	for _, l := range r.lanes {
		if w := l.Water(); w != nil {
			strips = append(strips, w)
		}
	}
	return strips
}

// IsOverWater reports whether rect overlaps any water crossing strip.
func (r *Road) IsOverWater(rect Rect) bool {
	for _, l := range r.lanes {
		if w := l.Water(); w != nil && rect.Intersects(w.Rect()) {
			return true
		}
	}
	return false
}
