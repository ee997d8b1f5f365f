// Package control runs a local single-player game: it feeds input to the
// engine, keeps the fixed tick rate against the frame clock, forwards sounds
// and records the final score. It has no rendering dependencies.
package control

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ugaemi/frogger-server/internal/anim"
	"github.com/ugaemi/frogger-server/internal/game"
	"github.com/ugaemi/frogger-server/internal/highscore"
	"github.com/ugaemi/frogger-server/internal/store"
)

const (
	// BoardSize is how many records the game-over board shows.
	BoardSize = 10

	maxTicksPerStep = 8
)

// SoundPlayer receives the sound events of every step.
type SoundPlayer interface {
	PlayEvents(events []game.Event)
}

type silence struct{}

func (silence) PlayEvents([]game.Event) {}

// Options configures a Controller.
type Options struct {
	Settings   game.Settings
	Levels     []game.Level
	Scores     store.HighScoreStore
	Sounds     SoundPlayer
	PlayerName string
	Seed       int64
}

// Input is what the player asked for during one frame.
type Input struct {
	Moves   []game.Direction
	Restart bool
	Clear   bool
	Sort    *highscore.SortKey
}

// Controller owns one game at a time and the high-score board shown after it.
type Controller struct {
	opts     Options
	rng      *rand.Rand
	engine   *game.Engine
	animator *anim.Player
	backlog  time.Duration

	sortKey  highscore.SortKey
	board    []highscore.Record
	recorded bool
	status   string
}

// New builds a controller and starts the first game.
func New(opts Options) (*Controller, error) {
	if opts.Scores == nil {
		opts.Scores = store.NewMemoryStore()
	}
	if opts.Sounds == nil {
		opts.Sounds = silence{}
	}
	c := &Controller{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	if err := c.Restart(); err != nil {
		return nil, err
	}
	return c, nil
}

// Restart discards the current game and starts a new one at level 1.
func (c *Controller) Restart() error {
	animator := anim.NewPlayer()
	engine, err := game.NewEngine(c.opts.Settings, c.opts.Levels, animator, c.rng)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	c.engine = engine
	c.animator = animator
	c.backlog = 0
	c.board = nil
	c.recorded = false
	c.status = ""
	slog.Info("game started", "player", c.opts.PlayerName)
	return nil
}

// Step advances the game by dt of wall time after applying in.
func (c *Controller) Step(dt time.Duration, in Input) error {
	if !c.engine.Running() {
		return c.stepBoard(in)
	}

	for _, dir := range in.Moves {
		c.engine.Move(dir)
	}
	c.animator.Update(dt)

	tick := c.opts.Settings.TickInterval
	c.backlog += dt
	var events []game.Event
	for n := 0; c.backlog >= tick && n < maxTicksPerStep; n++ {
		c.backlog -= tick
		events = append(events, c.engine.Tick()...)
		if !c.engine.Running() {
			break
		}
	}
	if c.backlog >= tick {
		// Drop what the per-step tick cap could not drain.
		c.backlog = 0
	}
	c.opts.Sounds.PlayEvents(events)

	if !c.engine.Running() {
		c.recordScore()
	}
	return nil
}

func (c *Controller) stepBoard(in Input) error {
	switch {
	case in.Restart:
		return c.Restart()
	case in.Clear:
		c.clearBoard()
	case in.Sort != nil:
		c.sortKey = *in.Sort
		c.loadBoard()
	}
	return nil
}

func (c *Controller) recordScore() {
	if c.recorded {
		return
	}
	c.recorded = true

	score, level := c.engine.Score(), c.engine.LevelReached()
	rec, err := highscore.New(c.opts.PlayerName, score, level)
	if err != nil {
		slog.Warn("score not recorded", "name", c.opts.PlayerName, "error", err)
		c.status = "score not saved: " + err.Error()
		c.loadBoard()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.opts.Scores.Add(ctx, rec); err != nil {
		slog.Error("failed to save score", "error", err)
		c.status = "score not saved"
	} else {
		slog.Info("score saved", "name", rec.Name, "score", score, "level", level)
	}
	c.loadBoard()
}

func (c *Controller) loadBoard() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	records, err := c.opts.Scores.List(ctx, c.sortKey, BoardSize)
	if err != nil {
		slog.Error("failed to load scores", "error", err)
		c.status = "scores unavailable"
		return
	}
	c.board = records
}

func (c *Controller) clearBoard() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.opts.Scores.Clear(ctx); err != nil {
		slog.Error("failed to clear scores", "error", err)
		c.status = "scores not cleared"
		return
	}
	c.board = nil
	slog.Info("scores cleared")
}

// Snapshot returns the state to draw.
func (c *Controller) Snapshot() game.Snapshot {
	return c.engine.Snapshot()
}

// GameOver reports whether the current game has ended.
func (c *Controller) GameOver() bool {
	return !c.engine.Running()
}

// Board returns the high scores shown after a game, in the selected order.
func (c *Controller) Board() []highscore.Record {
	return c.board
}

// BoardLines renders the board in the selected order.
func (c *Controller) BoardLines() []string {
	lines := make([]string, 0, len(c.board))
	for _, r := range c.board {
		lines = append(lines, highscore.Describe(r, c.sortKey))
	}
	return lines
}

// SortKey returns the board order.
func (c *Controller) SortKey() highscore.SortKey {
	return c.sortKey
}

// Status returns the last board problem, if any.
func (c *Controller) Status() string {
	return c.status
}

// Settings returns the game tuning.
func (c *Controller) Settings() game.Settings {
	return c.opts.Settings
}

// TotalLevels returns the number of levels in a game.
func (c *Controller) TotalLevels() int {
	return len(c.opts.Levels)
}
