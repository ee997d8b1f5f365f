package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/frogger-server/internal/highscore"
)

func getTestDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return url
}

func setupTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := getTestDatabaseURL(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, url)
	require.NoError(t, err)

	// Clean up high_scores table for test isolation
	_, err = s.pool.Exec(ctx, "DELETE FROM high_scores")
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func mustRecord(t *testing.T, name string, score, level int) *highscore.Record {
	t.Helper()
	r, err := highscore.New(name, score, level)
	require.NoError(t, err)
	return r
}

func TestPostgresStore_AddAndList(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, mustRecord(t, "개구리", 500, 1)))
	require.NoError(t, s.Add(ctx, mustRecord(t, "ant", 9000, 2)))
	require.NoError(t, s.Add(ctx, mustRecord(t, "bee", 9000, 3)))

	records, err := s.List(ctx, highscore.ByScore, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "bee", records[0].Name)
	assert.Equal(t, "ant", records[1].Name)
	assert.Equal(t, "개구리", records[2].Name)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestPostgresStore_ListOrdersAndLimit(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, mustRecord(t, "cat", 500, 1)))
	require.NoError(t, s.Add(ctx, mustRecord(t, "Ant", 100, 3)))
	require.NoError(t, s.Add(ctx, mustRecord(t, "bee", 900, 2)))

	byLevel, err := s.List(ctx, highscore.ByLevel, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ant", byLevel[0].Name)

	byName, err := s.List(ctx, highscore.ByName, 2)
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Ant", byName[0].Name)
	assert.Equal(t, "bee", byName[1].Name)
}

func TestPostgresStore_Clear(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, mustRecord(t, "frog", 1, 1)))
	require.NoError(t, s.Clear(ctx))

	records, err := s.List(ctx, highscore.ByScore, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
