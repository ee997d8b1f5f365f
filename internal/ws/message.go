package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Session
const (
	TypeStartGame   = "start_game"
	TypeGameStarted = "game_started"
	TypeLeaveGame   = "leave_game"
	TypeWatchGame   = "watch_game"
)

// Message types - Gameplay
const (
	TypePlayerMove = "player_move"
	TypeGameState  = "game_state"
	TypeGameOver   = "game_over"
)

// Message types - High scores
const (
	TypeSubmitScore   = "submit_score"
	TypeScoreSaved    = "score_saved"
	TypeListScores    = "list_scores"
	TypeHighScores    = "high_scores"
	TypeClearScores   = "clear_scores"
	TypeScoresCleared = "scores_cleared"
)

// Message types - System
const (
	TypeError = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
