package game

import (
	"fmt"
	"math/rand"
)

// Engine is the simulation driver. Each Tick advances the road, evaluates
// collisions, resolves the player's life cycle and decays the countdown.
// An Engine is not safe for concurrent use; callers serialise Tick and Move.
type Engine struct {
	settings  Settings
	road      *Road
	shoulder  *Shoulder
	player    *Player
	gate      *MovementGate
	ledger    *Ledger
	countdown *Countdown
	animator  Animator
	events    EventQueue
	running   bool
}

// NewEngine builds a game at level 1 and starts it running.
func NewEngine(s Settings, levels []Level, animator Animator, rng *rand.Rand) (*Engine, error) {
	if animator == nil {
		return nil, fmt.Errorf("%w: engine needs an animator", ErrMissingCollaborator)
	}
	road, err := NewRoad(s, levels, rng)
	if err != nil {
		return nil, err
	}
	ledger, err := NewLedger(s, len(levels))
	if err != nil {
		return nil, err
	}
	countdown, err := NewCountdown(s.TimeLimit, s.TickInterval)
	if err != nil {
		return nil, err
	}
	if err := road.LoadLevel(ledger.Level); err != nil {
		return nil, err
	}

	shoulder := NewShoulder(s)
	return &Engine{
		settings:  s,
		road:      road,
		shoulder:  shoulder,
		player:    NewPlayer(s),
		gate:      NewMovementGate(s, shoulder),
		ledger:    ledger,
		countdown: countdown,
		animator:  animator,
		running:   true,
	}, nil
}

// Running reports whether the engine still accepts ticks.
func (e *Engine) Running() bool {
	return e.running
}

// Stop halts the engine. Further ticks and moves are ignored.
func (e *Engine) Stop() {
	e.running = false
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.ledger.Score
}

// LevelReached returns the highest level played, capped at the last level.
func (e *Engine) LevelReached() int {
	return e.ledger.LevelReached()
}

// Settings returns the tuning the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Tick runs one simulation step and returns the events raised since the
// previous tick.
func (e *Engine) Tick() []Event {
	if !e.running {
		return e.events.Drain()
	}

	e.player.Jumping = e.animator.IsJumpAnimationPlaying()
	e.road.MoveAll()
	if !e.ledger.Dying {
		e.road.CheckToSpawn()
	}
	e.road.MaybeSpawnPowerUp()

	if !e.ledger.Dying && !e.ledger.GameOver {
		e.checkCollisions()
	}

	if e.ledger.Dying && !e.animator.IsDeathAnimationPlaying() {
		e.resolve()
	}

	if e.running {
		e.countdown.Decrease()
		if e.countdown.Expired() && !e.ledger.Dying {
			e.loseLife(OutcomeTimeout)
		}
	}

	return e.events.Drain()
}

// Move applies a directional intent through the movement gate. The events it
// raises are delivered with the next tick.
func (e *Engine) Move(dir Direction) bool {
	if !e.running {
		return false
	}
	if !e.gate.Move(e.player, dir) {
		e.playSound(SoundBump)
		return false
	}
	e.player.Jumping = true
	e.animator.StartJumpAnimation(dir)
	d := dir
	e.events.Push(Event{Type: EventPlayerMoved, Direction: &d})
	return true
}

func (e *Engine) checkCollisions() {
	for _, pu := range CollectPowerUps(e.player, e.road) {
		e.applyPowerUp(pu)
	}

	contact := ScanRoad(e.player, e.road)
	CarryPlayer(e.player, contact.Carrier, e.settings.RoadWidth)
	if outcome := contact.Classify(); outcome != OutcomeNone {
		e.loseLife(outcome)
		return
	}

	slots := ScanSlots(e.player, e.shoulder, e.settings.GoalSlotCushion)
	switch {
	case slots.Landed != nil:
		e.land(slots.Landed)
		return
	case slots.Wall:
		e.loseLife(OutcomeWall)
		return
	}

	if e.player.Y <= e.settings.TopShoulderY() {
		e.loseLife(OutcomeWall)
	}
}

func (e *Engine) applyPowerUp(pu *Entity) {
	switch pu.PowerUp {
	case PowerUpTimeBonus:
		e.countdown.Extend(e.settings.BonusTime)
	case PowerUpScoreBonus:
		e.ledger.AddBonus(e.settings.ScoreBonus)
	}
	e.events.Push(Event{Type: EventPowerUpCollected, PowerUp: pu.PowerUp.String()})
	e.events.Push(Event{Type: EventScoreChanged, Score: e.ledger.Score})
	e.playSound(SoundPowerUp)
}

func (e *Engine) loseLife(cause Outcome) {
	e.player.CanMove = false
	e.ledger.LoseALife()
	e.player.Kill()
	e.animator.StartDeathAnimation()

	e.playSound(deathSound(cause))
	e.events.Push(Event{Type: EventLifeLost, Cause: cause})
	e.events.Push(Event{Type: EventLivesChanged, Lives: e.ledger.Lives})
	e.road.ResetOneObjectPerLane()
}

func deathSound(cause Outcome) Sound {
	switch cause {
	case OutcomeDrowned:
		return SoundDrown
	case OutcomeTimeout:
		return SoundTimeout
	default:
		return SoundVehicleHit
	}
}

func (e *Engine) land(slot *GoalSlot) {
	e.shoulder.Occupy(slot)
	e.playSound(SoundGoalLanding)
	e.events.Push(Event{Type: EventFrogLanded, SlotX: slot.X})

	e.ledger.IncreaseScore(e.countdown.Remaining())
	e.events.Push(Event{Type: EventScoreChanged, Score: e.ledger.Score})
	e.player.CanMove = false
	e.ledger.CheckForLevelCompleted(e.shoulder.AllFilled())
	e.resolve()
}

// resolve decides what follows a finished death or a landing: game over,
// the next level, or another attempt on this one.
func (e *Engine) resolve() {
	switch {
	case e.ledger.GameOver:
		e.running = false
		e.playSound(SoundGameOver)
		e.events.Push(Event{Type: EventGameOver, Score: e.ledger.Score, Level: e.ledger.LevelReached()})

	case e.shoulder.AllFilled():
		e.shoulder.ClearHomes()
		e.player.ResetPosition(e.settings)
		if err := e.road.LoadLevel(e.ledger.Level); err != nil {
			// Levels are validated up front and passing the last one is game over.
			panic(fmt.Sprintf("game: load level %d: %v", e.ledger.Level, err))
		}
		e.revive()
		e.playSound(SoundLevelComplete)
		e.events.Push(Event{Type: EventLevelChanged, Level: e.ledger.Level})

	default:
		e.player.ResetPosition(e.settings)
		e.revive()
	}
}

func (e *Engine) revive() {
	e.ledger.ReviveFrog()
	e.player.Revive()
	e.player.CanMove = true
	e.countdown.Reset()
}

func (e *Engine) playSound(s Sound) {
	e.events.Push(Event{Type: EventSound, Sound: s})
}
