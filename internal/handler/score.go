package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/ugaemi/frogger-server/internal/highscore"
	"github.com/ugaemi/frogger-server/internal/session"
	"github.com/ugaemi/frogger-server/internal/store"
	"github.com/ugaemi/frogger-server/internal/ws"
)

// DefaultListLimit is how many records list_scores returns when no limit is given.
const DefaultListLimit = 10

// ScoreHandler handles the high-score board.
type ScoreHandler struct {
	sm    *session.Manager
	store store.HighScoreStore
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(sm *session.Manager, s store.HighScoreStore) *ScoreHandler {
	return &ScoreHandler{sm: sm, store: s}
}

type submitScoreRequest struct {
	Name string `json:"name"`
}

type scoreSavedResponse struct {
	Record highscore.Record `json:"record"`
}

// HandleSubmitScore records the client's finished game under a name.
func (h *ScoreHandler) HandleSubmitScore(client *ws.Client, msg ws.Message) {
	var req submitScoreRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("name is required"))
		return
	}

	s := h.sm.FindOwned(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("no finished game"))
		return
	}

	result, err := s.ClaimScore()
	switch {
	case errors.Is(err, session.ErrNotEnded):
		client.SendMessage(ws.NewErrorMessage("game still running"))
		return
	case errors.Is(err, session.ErrScoreRecorded):
		client.SendMessage(ws.NewErrorMessage("score already submitted"))
		return
	case err != nil:
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	rec, err := highscore.New(req.Name, result.Score, result.Level)
	if err != nil {
		s.ReleaseScore()
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.store.Add(ctx, rec); err != nil {
		s.ReleaseScore()
		slog.Error("failed to save score", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("failed to save score"))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeScoreSaved, scoreSavedResponse{Record: *rec})
	client.SendMessage(resp)

	slog.Info("score saved", "name", rec.Name, "score", rec.Score, "level", rec.Level, "session", s.Code)
}

type listScoresRequest struct {
	Sort  string `json:"sort"`
	Limit int    `json:"limit"`
}

type highScoresResponse struct {
	Sort   string             `json:"sort"`
	Scores []highscore.Record `json:"scores"`
	Lines  []string           `json:"lines"`
}

// HandleListScores sends the board in the requested order.
func (h *ScoreHandler) HandleListScores(client *ws.Client, msg ws.Message) {
	var req listScoresRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.SendMessage(ws.NewErrorMessage("invalid list request"))
			return
		}
	}

	key, err := highscore.ParseSortKey(req.Sort)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := h.store.List(ctx, key, limit)
	if err != nil {
		slog.Error("failed to list scores", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("failed to load scores"))
		return
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, highscore.Describe(r, key))
	}
	if records == nil {
		records = []highscore.Record{}
	}

	resp, _ := ws.NewMessage(ws.TypeHighScores, highScoresResponse{
		Sort:   key.String(),
		Scores: records,
		Lines:  lines,
	})
	client.SendMessage(resp)
}

// HandleClearScores wipes the board.
func (h *ScoreHandler) HandleClearScores(client *ws.Client, _ ws.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.store.Clear(ctx); err != nil {
		slog.Error("failed to clear scores", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("failed to clear scores"))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeScoresCleared, struct{}{})
	client.SendMessage(resp)

	slog.Info("scores cleared", "client", client.ID)
}
