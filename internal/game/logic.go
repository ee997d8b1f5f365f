package game

// RoadContact summarises the player's overlap with the road this tick.
type RoadContact struct {
	Hit        bool
	OverWater  bool
	OnPlatform bool
	Carrier    *Entity
}

// ScanRoad records every overlap between p and the road's entities. The
// first platform the player overlaps is its carrier.
func ScanRoad(p *Player, road *Road) RoadContact {
	var c RoadContact
	pr := p.Rect()
	for _, e := range road.Entities() {
		if !pr.Intersects(e.Rect()) {
			continue
		}
		if e.Landable {
			c.OnPlatform = true
			if c.Carrier == nil {
				c.Carrier = e
			}
			continue
		}
		c.Hit = true
	}
	c.OverWater = road.IsOverWater(pr)
	return c
}

// Classify turns the contact into an outcome. A vehicle hit counts only away
// from water; drowning needs water without a platform underneath.
func (c RoadContact) Classify() Outcome {
	switch {
	case c.Hit && !c.OverWater:
		return OutcomeHit
	case !c.Hit && c.OverWater && !c.OnPlatform:
		return OutcomeDrowned
	default:
		return OutcomeNone
	}
}

// CarryPlayer moves p along with its carrier platform and keeps it inside
// the playfield.
func CarryPlayer(p *Player, carrier *Entity, roadWidth float64) {
	if carrier == nil {
		return
	}
	dx, _ := carrier.Facing.delta()
	p.X += dx * carrier.SpeedX
	p.X = ClampX(p.X, p.Width, roadWidth)
}

// SlotContact is the result of testing the player against the goal slots.
type SlotContact struct {
	Landed *GoalSlot
	Wall   bool
}

// ScanSlots finds the first slot the player touches. An empty slot inside
// the cushioned tolerance is a landing; a filled slot, or one touched only
// outside the tolerance, is the shoulder wall.
func ScanSlots(p *Player, shoulder *Shoulder, cushion float64) SlotContact {
	pr := p.Rect()
	for _, slot := range shoulder.Slots() {
		sr := slot.Rect()
		if pr.Cushioned(cushion).Intersects(sr) {
			if !slot.Occupied {
				return SlotContact{Landed: slot}
			}
			return SlotContact{Wall: true}
		}
		if pr.Intersects(sr) {
			return SlotContact{Wall: true}
		}
	}
	return SlotContact{}
}
