package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ugaemi/frogger-server/internal/highscore"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    score INTEGER NOT NULL,
    level INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
`

var orderBy = map[highscore.SortKey]string{
	highscore.ByScore: "score DESC, level DESC, name ASC",
	highscore.ByLevel: "level DESC, score DESC, name ASC",
	highscore.ByName:  "LOWER(name) ASC, score DESC, name ASC",
}

// PostgresStore implements HighScoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Add inserts a new record.
func (s *PostgresStore) Add(ctx context.Context, r *highscore.Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO high_scores (id, name, score, level, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.Name, r.Score, r.Level, r.CreatedAt)
	return err
}

// List returns the board in the requested order.
func (s *PostgresStore) List(ctx context.Context, key highscore.SortKey, limit int) ([]highscore.Record, error) {
	order, ok := orderBy[key]
	if !ok {
		order = orderBy[highscore.ByScore]
	}

	query := `SELECT id, name, score, level, created_at FROM high_scores ORDER BY ` + order
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scan high scores: %w", err)
	}
	return records, nil
}

// Clear deletes every record.
func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM high_scores`)
	return err
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanRecord(row pgx.CollectableRow) (highscore.Record, error) {
	var r highscore.Record
	err := row.Scan(&r.ID, &r.Name, &r.Score, &r.Level, &r.CreatedAt)
	return r, err
}
