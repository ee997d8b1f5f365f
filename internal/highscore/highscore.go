package highscore

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNameLength is the longest name accepted on the board, in characters.
const MaxNameLength = 16

var (
	ErrEmptyName   = errors.New("name must not be empty")
	ErrNameTooLong = fmt.Errorf("name must be at most %d characters", MaxNameLength)
)

// Record is one finished game on the high-score board.
type Record struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Score     int       `json:"score" yaml:"score"`
	Level     int       `json:"level" yaml:"level"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// New creates a record for a finished game. The name is trimmed before it
// is checked.
func New(name string, score, level int) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	return &Record{
		ID:        uuid.New().String(),
		Name:      name,
		Score:     score,
		Level:     level,
		CreatedAt: time.Now(),
	}, nil
}

// SortKey selects the board order.
type SortKey int

const (
	ByScore SortKey = iota
	ByLevel
	ByName
)

func (k SortKey) String() string {
	switch k {
	case ByLevel:
		return "level"
	case ByName:
		return "name"
	default:
		return "score"
	}
}

// ParseSortKey converts a sort key name. An empty name selects ByScore.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "score":
		return ByScore, nil
	case "level":
		return ByLevel, nil
	case "name":
		return ByName, nil
	default:
		return ByScore, fmt.Errorf("unknown sort key %q", s)
	}
}

// Sort orders records in place: by score highest first, by level highest
// first, or by name alphabetically. Ties fall back to score, then level,
// then name.
func Sort(records []Record, key SortKey) {
	slices.SortStableFunc(records, func(a, b Record) int {
		switch key {
		case ByLevel:
			if c := b.Level - a.Level; c != 0 {
				return c
			}
			if c := b.Score - a.Score; c != 0 {
				return c
			}
		case ByName:
			if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
				return c
			}
			if c := b.Score - a.Score; c != 0 {
				return c
			}
		default:
			if c := b.Score - a.Score; c != 0 {
				return c
			}
			if c := b.Level - a.Level; c != 0 {
				return c
			}
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// Describe renders a record as one board line, leading with the sort field.
func Describe(r Record, key SortKey) string {
	switch key {
	case ByLevel:
		return fmt.Sprintf("Level: %d   |   Score: %d   |   Name: %s", r.Level, r.Score, r.Name)
	case ByName:
		return fmt.Sprintf("Name: %s   |   Score: %d   |   Level: %d", r.Name, r.Score, r.Level)
	default:
		return fmt.Sprintf("Score: %d   |   Name: %s   |   Level: %d", r.Score, r.Name, r.Level)
	}
}

// Top returns at most n records of an already sorted board.
func Top(records []Record, n int) []Record {
	if n < 0 || len(records) <= n {
		return records
	}
	return records[:n]
}
