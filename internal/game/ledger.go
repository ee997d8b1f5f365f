package game

import (
	"fmt"
	"time"
)

// Ledger tracks lives, score, level and the dying and game-over flags.
type Ledger struct {
	Lives       int  `json:"lives"`
	Score       int  `json:"score"`
	Level       int  `json:"level"`
	TotalLevels int  `json:"total_levels"`
	Dying       bool `json:"dying"`
	GameOver    bool `json:"game_over"`

	multiplier float64
}

// NewLedger starts a game at level 1.
func NewLedger(s Settings, totalLevels int) (*Ledger, error) {
	if totalLevels < 1 {
		return nil, fmt.Errorf("%w: total levels must be at least 1, got %d", ErrInvalidArgument, totalLevels)
	}
	if s.InitialLives < 1 {
		return nil, fmt.Errorf("%w: initial lives must be at least 1, got %d", ErrInvalidArgument, s.InitialLives)
	}
	return &Ledger{
		Lives:       s.InitialLives,
		Score:       s.InitialScore,
		Level:       1,
		TotalLevels: totalLevels,
		multiplier:  s.ScoreMultiplier,
	}, nil
}

// LoseALife takes one life and marks the frog as dying. Running out of lives
// ends the game for good.
func (l *Ledger) LoseALife() {
	l.Lives--
	l.Dying = true
	l.GameOver = l.GameOver || l.Lives <= 0
}

// IncreaseScore rewards a landing by the time left and the lives left. It
// returns the points added.
func (l *Ledger) IncreaseScore(timeRemaining time.Duration) int {
	if timeRemaining <= 0 || l.Lives <= 0 {
		return 0
	}
	points := int(timeRemaining.Seconds() * float64(l.Lives) * l.multiplier)
	l.Score += points
	return points
}

// AddBonus adds a fixed number of points. Negative bonuses are ignored.
func (l *Ledger) AddBonus(points int) {
	if points > 0 {
		l.Score += points
	}
}

// CheckForLevelCompleted advances the level when every goal slot is filled.
// Passing the last level ends the game.
func (l *Ledger) CheckForLevelCompleted(allHomesFilled bool) bool {
	if !allHomesFilled {
		return false
	}
	l.Level++
	l.GameOver = l.GameOver || l.Level > l.TotalLevels
	return true
}

// LevelReached returns the current level, capped at the last one for games
// that ended by clearing every level.
func (l *Ledger) LevelReached() int {
	return min(l.Level, l.TotalLevels)
}

// ReviveFrog clears the dying flag.
func (l *Ledger) ReviveFrog() {
	l.Dying = false
}
