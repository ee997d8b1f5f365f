package game

// MovementGate validates and executes player moves against the playfield
// boundaries and goal-slot occupancy.
type MovementGate struct {
	settings Settings
	shoulder *Shoulder
}

// NewMovementGate creates a gate over the given shoulder.
func NewMovementGate(s Settings, shoulder *Shoulder) *MovementGate {
	return &MovementGate{settings: s, shoulder: shoulder}
}

// CanMove reports whether p may move in dir right now.
func (g *MovementGate) CanMove(p *Player, dir Direction) bool {
	if p.Dying || !p.CanMove {
		return false
	}
	switch dir {
	case DirectionLeft:
		return p.X > LeftEdgeOfRoad
	case DirectionRight:
		return p.X < g.settings.RoadWidth-p.Width
	case DirectionUp:
		if !g.AtTopRow(p) {
			return true
		}
		_, ok := g.shoulder.EmptySlotAt(p.X)
		return ok
	case DirectionDown:
		return p.Y+p.Height < g.settings.RoadHeight-g.settings.BottomOffset
	default:
		return false
	}
}

// AtTopRow reports whether p is on the top lane row, directly under the
// shoulder.
func (g *MovementGate) AtTopRow(p *Player) bool {
	return p.Y <= g.settings.TopEdgeOfLanes
}

// Move steps p one cell in dir if the gate allows it. Horizontal moves are
// clamped to the playfield so a frog that drifted off the grid lines up
// against the edge again.
func (g *MovementGate) Move(p *Player, dir Direction) bool {
	if !g.CanMove(p, dir) {
		return false
	}
	p.SpeedX = g.settings.PlayerSpeed
	p.SpeedY = g.settings.PlayerSpeed
	p.Facing = dir
	p.Step(dir)
	if dir.IsHorizontal() {
		p.X = ClampX(p.X, p.Width, g.settings.RoadWidth)
	}
	return true
}
