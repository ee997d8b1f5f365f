package store

import (
	"context"

	"github.com/ugaemi/frogger-server/internal/highscore"
)

// HighScoreStore defines the interface for the persistent high-score board.
type HighScoreStore interface {
	// Add appends a finished game to the board.
	Add(ctx context.Context, r *highscore.Record) error
	// List returns the board in the given order. A limit of zero or less
	// returns every record.
	List(ctx context.Context, key highscore.SortKey, limit int) ([]highscore.Record, error)
	// Clear removes every record.
	Clear(ctx context.Context) error
	// Close releases storage resources.
	Close() error
}
