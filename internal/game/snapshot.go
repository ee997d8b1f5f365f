package game

import "time"

// EntityView is a render-ready copy of one entity.
type EntityView struct {
	ID     int       `json:"id"`
	Kind   Kind      `json:"kind"`
	Type   string    `json:"type"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Facing Direction `json:"facing"`
}

func viewOf(e *Entity) EntityView {
	return EntityView{
		ID:     e.ID,
		Kind:   e.Kind,
		Type:   e.TypeName(),
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		Facing: e.Facing,
	}
}

// PlayerView is a render-ready copy of the player actor.
type PlayerView struct {
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Facing  Direction `json:"facing"`
	Sprite  SpriteRef `json:"sprite"`
	Dying   bool      `json:"dying"`
	CanMove bool      `json:"can_move"`
}

// LaneView is a render-ready copy of one lane.
type LaneView struct {
	Y         float64      `json:"y"`
	Water     bool         `json:"water"`
	Direction Direction    `json:"direction"`
	Entities  []EntityView `json:"entities"`
}

// Snapshot is a value copy of everything a renderer or remote client needs.
type Snapshot struct {
	Player        PlayerView   `json:"player"`
	Lives         int          `json:"lives"`
	Score         int          `json:"score"`
	Level         int          `json:"level"`
	TimeRemaining float64      `json:"time_remaining"`
	GameOver      bool         `json:"game_over"`
	Running       bool         `json:"running"`
	Lanes         []LaneView   `json:"lanes"`
	PowerUps      []EntityView `json:"power_ups"`
	Slots         []GoalSlot   `json:"slots"`
	Fillers       []Rect       `json:"fillers"`
	Water         []Rect       `json:"water"`
}

// Snapshot copies the current game state.
func (e *Engine) Snapshot() Snapshot {
	p := e.player
	sprite := p.Sprite
	if src, ok := e.animator.(SpriteSource); ok &&
		(e.animator.IsDeathAnimationPlaying() || e.animator.IsJumpAnimationPlaying()) {
		sprite = src.Sprite()
	}

	snap := Snapshot{
		Player: PlayerView{
			X:       p.X,
			Y:       p.Y,
			Width:   p.Width,
			Height:  p.Height,
			Facing:  p.Facing,
			Sprite:  sprite,
			Dying:   p.Dying,
			CanMove: p.CanMove,
		},
		Lives:         e.ledger.Lives,
		Score:         e.ledger.Score,
		Level:         e.ledger.LevelReached(),
		TimeRemaining: e.countdown.Remaining().Seconds(),
		GameOver:      e.ledger.GameOver,
		Running:       e.running,
		Fillers:       append([]Rect(nil), e.shoulder.Fillers()...),
	}

	for _, l := range e.road.Lanes() {
		lv := LaneView{Y: l.Y, Water: l.IsWater(), Direction: l.Spec().Direction}
		for _, ent := range l.Entities() {
			lv.Entities = append(lv.Entities, viewOf(ent))
		}
		snap.Lanes = append(snap.Lanes, lv)
	}
	for _, pu := range e.road.PowerUps() {
		snap.PowerUps = append(snap.PowerUps, viewOf(pu))
	}
	for _, slot := range e.shoulder.Slots() {
		snap.Slots = append(snap.Slots, *slot)
	}
	for _, w := range e.road.WaterStrips() {
		snap.Water = append(snap.Water, w.Rect())
	}
	return snap
}

// TimeRemaining returns the time left on the countdown.
func (e *Engine) TimeRemaining() time.Duration {
	return e.countdown.Remaining()
}
