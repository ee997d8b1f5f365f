package game

// CollectPowerUps removes every power-up the player overlaps from the road
// and returns them in pickup order.
func CollectPowerUps(p *Player, road *Road) []*Entity {
	var collected []*Entity
	for _, pu := range road.PowerUps() {
		if IsCollisionBetween(&p.Entity, pu) {
			collected = append(collected, pu)
		}
	}
	for _, pu := range collected {
		road.RemovePowerUp(pu)
	}
	return collected
}
