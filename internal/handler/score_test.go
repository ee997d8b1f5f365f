package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/frogger-server/internal/highscore"
	"github.com/ugaemi/frogger-server/internal/store"
	"github.com/ugaemi/frogger-server/internal/ws"
)

func seedScores(t *testing.T, s store.HighScoreStore) {
	t.Helper()
	for _, r := range []struct {
		name         string
		score, level int
	}{
		{"BOB", 300, 2},
		{"ALICE", 900, 1},
		{"CAROL", 500, 3},
	} {
		rec, err := highscore.New(r.name, r.score, r.level)
		require.NoError(t, err)
		require.NoError(t, s.Add(context.Background(), rec))
	}
}

func TestHandleSubmitScore(t *testing.T) {
	scores := store.NewMemoryStore()
	router, sm := setupTest(t, scores)
	client, ch := newTestClient("owner")

	send(router, client, ws.TypeSubmitScore, map[string]string{"name": "FROG"})
	assert.Equal(t, "no finished game", readError(t, ch))

	code := startGame(t, router, client, ch)
	send(router, client, ws.TypeSubmitScore, map[string]string{"name": "FROG"})
	assert.Equal(t, "game still running", readError(t, ch))

	sm.Get(code).Stop()

	send(router, client, ws.TypeSubmitScore, map[string]string{"name": "   "})
	assert.Equal(t, highscore.ErrEmptyName.Error(), readError(t, ch))

	send(router, client, ws.TypeSubmitScore, map[string]string{"name": " FROG "})
	msg := readResponse(t, ch, ws.TypeScoreSaved)
	var resp scoreSavedResponse
	require.NoError(t, json.Unmarshal(msg.Data, &resp))
	assert.Equal(t, "FROG", resp.Record.Name)
	assert.Equal(t, 1, resp.Record.Level)
	assert.NotEmpty(t, resp.Record.ID)

	send(router, client, ws.TypeSubmitScore, map[string]string{"name": "FROG"})
	assert.Equal(t, "score already submitted", readError(t, ch))

	records, err := scores.List(context.Background(), highscore.ByScore, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestHandleSubmitScore_StoreFailureAllowsRetry(t *testing.T) {
	router, sm := setupTest(t, failingStore{})
	client, ch := newTestClient("owner")

	code := startGame(t, router, client, ch)
	sm.Get(code).Stop()

	send(router, client, ws.TypeSubmitScore, map[string]string{"name": "FROG"})
	assert.Equal(t, "failed to save score", readError(t, ch))

	_, err := sm.Get(code).ClaimScore()
	assert.NoError(t, err, "a failed save should release the claim")
}

func TestHandleListScores(t *testing.T) {
	tests := []struct {
		name      string
		sort      string
		wantFirst string
		wantLine  string
	}{
		{"default", "", "ALICE", "Score: 900   |   Name: ALICE   |   Level: 1"},
		{"by level", "level", "CAROL", "Level: 3   |   Score: 500   |   Name: CAROL"},
		{"by name", "name", "ALICE", "Name: ALICE   |   Score: 900   |   Level: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := store.NewMemoryStore()
			seedScores(t, scores)
			router, _ := setupTest(t, scores)
			client, ch := newTestClient("owner")

			send(router, client, ws.TypeListScores, map[string]string{"sort": tt.sort})
			msg := readResponse(t, ch, ws.TypeHighScores)
			var resp highScoresResponse
			require.NoError(t, json.Unmarshal(msg.Data, &resp))
			require.Len(t, resp.Scores, 3)
			assert.Equal(t, tt.wantFirst, resp.Scores[0].Name)
			assert.Equal(t, tt.wantLine, resp.Lines[0])
		})
	}
}

func TestHandleListScores_Limit(t *testing.T) {
	scores := store.NewMemoryStore()
	seedScores(t, scores)
	router, _ := setupTest(t, scores)
	client, ch := newTestClient("owner")

	send(router, client, ws.TypeListScores, map[string]any{"limit": 2})
	msg := readResponse(t, ch, ws.TypeHighScores)
	var resp highScoresResponse
	require.NoError(t, json.Unmarshal(msg.Data, &resp))
	assert.Len(t, resp.Scores, 2)
	assert.Equal(t, "score", resp.Sort)
}

func TestHandleListScores_UnknownSort(t *testing.T) {
	router, _ := setupTest(t, nil)
	client, ch := newTestClient("owner")

	send(router, client, ws.TypeListScores, map[string]string{"sort": "speed"})
	assert.Contains(t, readError(t, ch), "unknown sort key")
}

func TestHandleClearScores(t *testing.T) {
	scores := store.NewMemoryStore()
	seedScores(t, scores)
	router, _ := setupTest(t, scores)
	client, ch := newTestClient("owner")

	send(router, client, ws.TypeClearScores, nil)
	readResponse(t, ch, ws.TypeScoresCleared)

	send(router, client, ws.TypeListScores, nil)
	msg := readResponse(t, ch, ws.TypeHighScores)
	var resp highScoresResponse
	require.NoError(t, json.Unmarshal(msg.Data, &resp))
	assert.Empty(t, resp.Scores)
	assert.Empty(t, resp.Lines)
}
