package game

import (
	"fmt"
	"time"
)

// Countdown is the per-life time budget.
type Countdown struct {
	budget    time.Duration
	step      time.Duration
	remaining time.Duration
}

// NewCountdown creates a full countdown that loses step on every Decrease.
func NewCountdown(budget, step time.Duration) (*Countdown, error) {
	if budget <= 0 || step <= 0 {
		return nil, fmt.Errorf("%w: countdown budget and step must be positive", ErrInvalidArgument)
	}
	return &Countdown{budget: budget, step: step, remaining: budget}, nil
}

// Decrease takes one tick off the clock, stopping at zero.
func (c *Countdown) Decrease() time.Duration {
	c.remaining -= c.step
	if c.remaining < 0 {
		c.remaining = 0
	}
	return c.remaining
}

// Reset refills the budget.
func (c *Countdown) Reset() {
	c.remaining = c.budget
}

// Extend adds bonus time, capped at the budget.
func (c *Countdown) Extend(bonus time.Duration) {
	if bonus <= 0 {
		return
	}
	c.remaining = min(c.remaining+bonus, c.budget)
}

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Budget returns the full time budget.
func (c *Countdown) Budget() time.Duration {
	return c.budget
}

// Expired reports whether the clock has run out.
func (c *Countdown) Expired() bool {
	return c.remaining <= 0
}
