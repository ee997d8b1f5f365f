package game

// MaybeSpawnPowerUp draws once per tick. When the draw exceeds the
// configured chance a power-up is rested in a random lane at a random x:
// a time bonus in a water lane, a score bonus otherwise.
func (r *Road) MaybeSpawnPowerUp() (*Entity, bool) {
	if len(r.lanes) == 0 {
		return nil, false
	}
	if r.rng.Float64()*PowerUpChanceCeiling <= r.settings.PowerUpChance {
		return nil, false
	}

	lane := r.lanes[r.rng.Intn(len(r.lanes))]
	kind := PowerUpScoreBonus
	if lane.IsWater() {
		kind = PowerUpTimeBonus
	}

	p := NewPowerUp(kind)
	p.ID = r.newID()
	lane.AddPowerUp(p, r.randomX(p.Width))
	return p, true
}

// randomX picks an x in [LeftEdgeOfRoad, roadWidth-width).
func (r *Road) randomX(width float64) float64 {
	span := r.settings.RoadWidth - width - LeftEdgeOfRoad
	if span <= 0 {
		return LeftEdgeOfRoad
	}
	return LeftEdgeOfRoad + r.rng.Float64()*span
}
