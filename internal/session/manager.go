package session

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ugaemi/frogger-server/internal/game"
	"github.com/ugaemi/frogger-server/internal/ws"
)

// Manager manages all active sessions.
type Manager struct {
	settings game.Settings
	levels   []game.Level

	sessions map[string]*Session // code -> session
	rng      *rand.Rand
	mu       sync.RWMutex
}

// NewManager creates a session manager that builds every game from the same
// settings and levels.
func NewManager(s game.Settings, levels []game.Level) *Manager {
	return &Manager{
		settings: s,
		levels:   levels,
		sessions: make(map[string]*Session),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create registers a new waiting session owned by owner.
func (m *Manager) Create(owner *ws.Client) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.sessions))
	for code := range m.sessions {
		existing[code] = true
	}

	code := GenerateCode(m.rng, existing)
	rng := rand.New(rand.NewSource(m.rng.Int63()))
	s, err := New(code, owner, m.settings, m.levels, rng)
	if err != nil {
		return nil, err
	}
	m.sessions[code] = s

	slog.Info("session created", "code", code, "owner", owner.ID)
	return s, nil
}

// Get returns a session by its code.
func (m *Manager) Get(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[code]
}

// Remove stops and forgets a session.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	s := m.sessions[code]
	delete(m.sessions, code)
	m.mu.Unlock()

	if s != nil {
		s.Stop()
		slog.Info("session removed", "code", code)
	}
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// FindWatched finds the session a client watches without owning it.
func (m *Manager) FindWatched(clientID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.HasClient(clientID) && !s.IsOwner(clientID) {
			return s
		}
	}
	return nil
}

// FindOwned finds the session a client owns.
func (m *Manager) FindOwned(clientID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.IsOwner(clientID) {
			return s
		}
	}
	return nil
}
