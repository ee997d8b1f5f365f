package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/frogger-server/internal/session"
	"github.com/ugaemi/frogger-server/internal/store"
	"github.com/ugaemi/frogger-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	sessions *SessionHandler
	scores   *ScoreHandler
}

// NewRouter creates a new message router.
func NewRouter(sm *session.Manager, scoreStore store.HighScoreStore) *Router {
	return &Router{
		sessions: NewSessionHandler(sm),
		scores:   NewScoreHandler(sm, scoreStore),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Session messages
	case ws.TypeStartGame:
		r.sessions.HandleStartGame(cm.Client, msg)
	case ws.TypePlayerMove:
		r.sessions.HandlePlayerMove(cm.Client, msg)
	case ws.TypeLeaveGame:
		r.sessions.HandleLeaveGame(cm.Client, msg)
	case ws.TypeWatchGame:
		r.sessions.HandleWatchGame(cm.Client, msg)

	// High score messages
	case ws.TypeSubmitScore:
		r.scores.HandleSubmitScore(cm.Client, msg)
	case ws.TypeListScores:
		r.scores.HandleListScores(cm.Client, msg)
	case ws.TypeClearScores:
		r.scores.HandleClearScores(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.sessions.HandleDisconnect(client)
}
