package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/frogger-server/internal/game"
	"github.com/ugaemi/frogger-server/internal/session"
	"github.com/ugaemi/frogger-server/internal/ws"
)

// SessionHandler handles starting, playing, watching and leaving games.
type SessionHandler struct {
	sm *session.Manager
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sm *session.Manager) *SessionHandler {
	return &SessionHandler{sm: sm}
}

type gameStartedResponse struct {
	Code     string `json:"code"`
	Watching bool   `json:"watching,omitempty"`
}

// HandleStartGame starts a new game owned by the client. A finished game the
// client still owns is discarded first.
func (h *SessionHandler) HandleStartGame(client *ws.Client, _ ws.Message) {
	if owned := h.sm.FindOwned(client.ID); owned != nil {
		if owned.CurrentState() == game.StatePlaying {
			client.SendMessage(ws.NewErrorMessage("game already running"))
			return
		}
		h.sm.Remove(owned.Code)
	}
	if watched := h.sm.FindWatched(client.ID); watched != nil {
		watched.RemoveClient(client.ID)
	}

	s, err := h.sm.Create(client)
	if err != nil {
		slog.Error("failed to create session", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("failed to start game"))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeGameStarted, gameStartedResponse{Code: s.Code})
	client.SendMessage(resp)
	s.Start()
}

type playerMoveRequest struct {
	Direction *game.Direction `json:"direction"`
}

// HandlePlayerMove applies a directional intent to the client's game.
func (h *SessionHandler) HandlePlayerMove(client *ws.Client, msg ws.Message) {
	var req playerMoveRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Direction == nil {
		client.SendMessage(ws.NewErrorMessage("invalid direction"))
		return
	}

	s := h.sm.FindOwned(client.ID)
	if s == nil || s.CurrentState() != game.StatePlaying {
		client.SendMessage(ws.NewErrorMessage("no game in progress"))
		return
	}

	// A blocked move is reported through the game_state bump sound.
	s.Move(*req.Direction)
}

// HandleLeaveGame ends the client's game, or stops watching one.
func (h *SessionHandler) HandleLeaveGame(client *ws.Client, _ ws.Message) {
	if !h.leave(client) {
		client.SendMessage(ws.NewErrorMessage("not in a game"))
	}
}

type watchGameRequest struct {
	Code string `json:"code"`
}

// HandleWatchGame subscribes the client to another player's running game.
func (h *SessionHandler) HandleWatchGame(client *ws.Client, msg ws.Message) {
	var req watchGameRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("code is required"))
		return
	}

	s := h.sm.Get(req.Code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("game not found"))
		return
	}
	if s.CurrentState() == game.StateEnded {
		client.SendMessage(ws.NewErrorMessage("game has ended"))
		return
	}
	if s.IsOwner(client.ID) {
		client.SendMessage(ws.NewErrorMessage("cannot watch your own game"))
		return
	}

	// A running game the client owns ends; a finished one stays for submit_score.
	if owned := h.sm.FindOwned(client.ID); owned != nil && owned.CurrentState() == game.StatePlaying {
		h.sm.Remove(owned.Code)
		slog.Info("owner left game", "client", client.ID, "session", owned.Code)
	}
	if watched := h.sm.FindWatched(client.ID); watched != nil && watched != s {
		watched.RemoveClient(client.ID)
	}
	s.AddWatcher(client)

	resp, _ := ws.NewMessage(ws.TypeGameStarted, gameStartedResponse{Code: s.Code, Watching: true})
	client.SendMessage(resp)

	slog.Info("client watching game", "client", client.ID, "session", s.Code)
}

// HandleDisconnect ends any game the client owns and drops it as a watcher.
func (h *SessionHandler) HandleDisconnect(client *ws.Client) {
	h.leave(client)
	slog.Info("client disconnected", "client", client.ID)
}

// leave ends the session the client owns and unwatches the one it watches.
// It reports whether the client was in either.
func (h *SessionHandler) leave(client *ws.Client) bool {
	left := false
	if s := h.sm.FindWatched(client.ID); s != nil {
		s.RemoveClient(client.ID)
		slog.Info("watcher left game", "client", client.ID, "session", s.Code)
		left = true
	}
	if s := h.sm.FindOwned(client.ID); s != nil {
		h.sm.Remove(s.Code)
		slog.Info("owner left game", "client", client.ID, "session", s.Code)
		left = true
	}
	return left
}
