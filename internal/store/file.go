package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/ugaemi/frogger-server/internal/highscore"
)

const (
	boardObject   = "highscores"
	boardProperty = "board"
)

type boardDocument struct {
	Scores []highscore.Record `yaml:"scores"`
}

// FileStore implements HighScoreStore on the local data directory. The whole
// board is kept in memory and written back as one YAML document on every
// change. Without a data manager it runs in memory only.
type FileStore struct {
	mu      sync.Mutex
	data    *gdata.Manager
	records []highscore.Record
}

// NewFileStore opens the per-user data directory for appName and loads any
// saved board.
func NewFileStore(appName string) (*FileStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open data directory: %w", err)
	}
	return newFileStore(m)
}

// NewMemoryStore returns a store that never touches the disk.
func NewMemoryStore() *FileStore {
	return &FileStore{}
}

// OpenLocal opens the on-disk board for appName, falling back to an
// in-memory board when the data directory is unavailable.
func OpenLocal(appName string) *FileStore {
	s, err := NewFileStore(appName)
	if err != nil {
		slog.Warn("high scores will not persist", "app", appName, "error", err)
		return NewMemoryStore()
	}
	return s
}

func newFileStore(m *gdata.Manager) (*FileStore, error) {
	s := &FileStore{data: m}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	if s.data == nil || !s.data.ObjectPropExists(boardObject, boardProperty) {
		return nil
	}

	raw, err := s.data.LoadObjectProp(boardObject, boardProperty)
	if err != nil {
		return fmt.Errorf("load high scores: %w", err)
	}

	var doc boardDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse high scores: %w", err)
	}
	s.records = doc.Scores
	slog.Debug("high scores loaded", "count", len(s.records))
	return nil
}

func (s *FileStore) save() error {
	if s.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(boardDocument{Scores: s.records})
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	if err := s.data.SaveObjectProp(boardObject, boardProperty, raw); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}

// Add appends a record and persists the board.
func (s *FileStore) Add(_ context.Context, r *highscore.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, *r)
	if err := s.save(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// List returns a sorted copy of the board.
func (s *FileStore) List(_ context.Context, key highscore.SortKey, limit int) ([]highscore.Record, error) {
	s.mu.Lock()
	out := append([]highscore.Record(nil), s.records...)
	s.mu.Unlock()

	highscore.Sort(out, key)
	if limit > 0 {
		out = highscore.Top(out, limit)
	}
	return out, nil
}

// Clear empties the board.
func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = nil
	if err := s.save(); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// Close is a no-op; every change is already on disk.
func (s *FileStore) Close() error {
	return nil
}
