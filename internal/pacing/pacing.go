package pacing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Delay yields the next pause to insert between two requests.
type Delay interface {
	Next() time.Duration
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// UniformDelay draws pauses uniformly from [Min, Max].
type UniformDelay struct {
	Min time.Duration
	Max time.Duration
}

// NewUniformDelay returns a delay in [min, max]. Bounds are swapped if given
// in the wrong order.
func NewUniformDelay(min, max time.Duration) UniformDelay {
	if min > max {
		min, max = max, min
	}
	return UniformDelay{Min: min, Max: max}
}

// Next returns a random duration between Min and Max inclusive.
func (u UniformDelay) Next() time.Duration {
	span := u.Max - u.Min
	if span <= 0 {
		return u.Min
	}
	return u.Min + time.Duration(rand.Int64N(int64(span)+1))
}

// FixedDelay always yields the same pause. Zero is useful in tests.
type FixedDelay time.Duration

// Next returns the fixed duration.
func (f FixedDelay) Next() time.Duration { return time.Duration(f) }

// Sleep waits for d, returning early with an error if ctx is cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("sleep %v: %w", d, ctx.Err())
	case <-timer.C:
	}
	return nil
}
