package session

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ugaemi/frogger-server/internal/anim"
	"github.com/ugaemi/frogger-server/internal/game"
	"github.com/ugaemi/frogger-server/internal/ws"
)

// AnimInterval is how often the animation clock advances.
const AnimInterval = 50 * time.Millisecond

var (
	ErrNotEnded      = errors.New("session has not ended")
	ErrScoreRecorded = errors.New("score already recorded")
)

// Result is the final outcome of a game.
type Result struct {
	Score int `json:"score"`
	Level int `json:"level"`
}

// Session hosts one running game for an owning client and any watchers.
type Session struct {
	Code    string            `json:"code"`
	State   game.SessionState `json:"state"`
	OwnerID string            `json:"owner_id"`

	engine   *game.Engine
	animator *anim.Player

	// Client mapping: client ID -> ws client, owner included
	clients map[string]*ws.Client

	stopCh        chan struct{}
	result        Result
	scoreRecorded bool

	mu sync.RWMutex
}

// New creates a waiting session owned by owner.
func New(code string, owner *ws.Client, s game.Settings, levels []game.Level, rng *rand.Rand) (*Session, error) {
	animator := anim.NewPlayer()
	engine, err := game.NewEngine(s, levels, animator, rng)
	if err != nil {
		return nil, err
	}
	return &Session{
		Code:     code,
		State:    game.StateWaiting,
		OwnerID:  owner.ID,
		engine:   engine,
		animator: animator,
		clients:  map[string]*ws.Client{owner.ID: owner},
	}, nil
}

// AddWatcher subscribes a client to the session's state broadcasts.
func (s *Session) AddWatcher(client *ws.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client.ID] = client
}

// RemoveClient unsubscribes a client.
func (s *Session) RemoveClient(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, clientID)
}

// HasClient reports whether the client owns or watches the session.
func (s *Session) HasClient(clientID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clients[clientID]
	return ok
}

// IsOwner reports whether the client owns the session.
func (s *Session) IsOwner(clientID string) bool {
	return s.OwnerID == clientID
}

// ClientCount returns the number of subscribed clients.
func (s *Session) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// CurrentState returns the lifecycle state.
func (s *Session) CurrentState() game.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.State
}

// Snapshot returns a copy of the current game state.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Snapshot()
}

// Broadcast sends a message to the owner and every watcher.
func (s *Session) Broadcast(msg ws.Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}

// Start launches the tick loop. It is a no-op unless the session is waiting.
func (s *Session) Start() {
	s.mu.Lock()
	if s.State != game.StateWaiting {
		s.mu.Unlock()
		return
	}
	s.State = game.StatePlaying
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	slog.Info("session started", "session", s.Code, "owner", s.OwnerID)
	go s.loop(stopCh)
}

// Move applies a directional intent. It reports whether the player moved.
func (s *Session) Move(dir game.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State != game.StatePlaying {
		return false
	}
	return s.engine.Move(dir)
}

// Stop ends the session and broadcasts the final result. Calling it again
// has no effect.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.State == game.StateEnded {
		s.mu.Unlock()
		return
	}
	s.State = game.StateEnded
	s.engine.Stop()
	s.result = Result{Score: s.engine.Score(), Level: s.engine.LevelReached()}
	if s.stopCh != nil {
		close(s.stopCh)
	}
	result := s.result
	s.mu.Unlock()

	msg, _ := ws.NewMessage(ws.TypeGameOver, result)
	s.Broadcast(msg)

	slog.Info("session ended", "session", s.Code, "score", result.Score, "level", result.Level)
}

// Result returns the final score and level. ok is false until the session ends.
func (s *Session) Result() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.State == game.StateEnded
}

// ClaimScore reserves the session's single high-score entry and returns the
// result to record.
func (s *Session) ClaimScore() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State != game.StateEnded {
		return Result{}, ErrNotEnded
	}
	if s.scoreRecorded {
		return Result{}, ErrScoreRecorded
	}
	s.scoreRecorded = true
	return s.result, nil
}

// ReleaseScore gives back a claim whose record could not be stored.
func (s *Session) ReleaseScore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoreRecorded = false
}

type gameStateMessage struct {
	Snapshot game.Snapshot `json:"snapshot"`
	Events   []game.Event  `json:"events,omitempty"`
}

func (s *Session) loop(stopCh chan struct{}) {
	simTicker := time.NewTicker(s.engine.Settings().TickInterval)
	defer simTicker.Stop()
	animTicker := time.NewTicker(AnimInterval)
	defer animTicker.Stop()

	lastAnim := time.Now()
	for {
		select {
		case <-stopCh:
			return
		case now := <-animTicker.C:
			s.mu.Lock()
			s.animator.Update(now.Sub(lastAnim))
			s.mu.Unlock()
			lastAnim = now
		case <-simTicker.C:
			s.mu.Lock()
			if s.State != game.StatePlaying {
				s.mu.Unlock()
				return
			}
			events := s.engine.Tick()
			snap := s.engine.Snapshot()
			running := s.engine.Running()
			s.mu.Unlock()

			msg, _ := ws.NewMessage(ws.TypeGameState, gameStateMessage{
				Snapshot: snap,
				Events:   events,
			})
			s.Broadcast(msg)

			if !running {
				s.Stop()
				return
			}
		}
	}
}
