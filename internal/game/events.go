package game

import "encoding/json"

// EventType identifies an outcome notification raised by the engine.
type EventType int

const (
	EventScoreChanged EventType = iota
	EventLivesChanged
	EventLevelChanged
	EventLifeLost
	EventFrogLanded
	EventPowerUpCollected
	EventPlayerMoved
	EventSound
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventScoreChanged:
		return "score_changed"
	case EventLivesChanged:
		return "lives_changed"
	case EventLevelChanged:
		return "level_changed"
	case EventLifeLost:
		return "life_lost"
	case EventFrogLanded:
		return "frog_landed"
	case EventPowerUpCollected:
		return "power_up_collected"
	case EventPlayerMoved:
		return "player_moved"
	case EventSound:
		return "sound"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes EventType as a string.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Event is one outcome notification. Only the fields relevant to Type are set.
// Score, Lives and Level are always serialized so a zero stays readable.
type Event struct {
	Type      EventType  `json:"type"`
	Score     int        `json:"score"`
	Lives     int        `json:"lives"`
	Level     int        `json:"level"`
	Cause     Outcome    `json:"cause,omitempty"`
	Sound     Sound      `json:"sound,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
	SlotX     float64    `json:"slot_x,omitempty"`
	PowerUp   string     `json:"power_up,omitempty"`
}

// EventQueue collects events raised during a tick, or between ticks by
// player moves, until the driver drains it.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns the pending events in order and empties the queue.
func (q *EventQueue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
