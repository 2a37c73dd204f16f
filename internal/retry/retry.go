package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amishk599/jobinsight/internal/pacing"
)

// ErrExhausted is returned once a Budget has absorbed more failures than it allows.
var ErrExhausted = errors.New("max retries reached")

// Budget counts failures for one unit of work against a fixed ceiling and
// pauses for a randomized delay after each absorbed failure. The counter is
// never reset, so the ceiling bounds total failures rather than consecutive ones.
type Budget struct {
	maxRetries int
	used       int
	delay      pacing.Delay
	sleep      pacing.SleepFunc
	logger     *slog.Logger
}

// NewBudget returns a budget that absorbs up to maxRetries failures.
// sleep defaults to pacing.Sleep when nil.
func NewBudget(maxRetries int, delay pacing.Delay, sleep pacing.SleepFunc, logger *slog.Logger) *Budget {
	if sleep == nil {
		sleep = pacing.Sleep
	}
	return &Budget{
		maxRetries: maxRetries,
		delay:      delay,
		sleep:      sleep,
		logger:     logger,
	}
}

// Fail records err against the budget. It returns nil after sleeping when the
// caller may try again, an error wrapping ErrExhausted once the ceiling is
// exceeded, or the context error if err is a cancellation or the pause is
// interrupted.
func (b *Budget) Fail(ctx context.Context, label string, err error) error {
	if !isRetryable(err) {
		return err
	}

	b.used++
	if b.used > b.maxRetries {
		return fmt.Errorf("%w for %s: %w", ErrExhausted, label, err)
	}

	delay := b.delay.Next()
	b.logger.Warn("retrying after error",
		"target", label,
		"attempt", b.used,
		"max_retries", b.maxRetries,
		"delay", delay,
		"error", err,
	)

	if err := b.sleep(ctx, delay); err != nil {
		return fmt.Errorf("retry cancelled: %w", err)
	}
	return nil
}

// Used reports how many failures the budget has absorbed so far.
func (b *Budget) Used() int {
	return b.used
}

// isRetryable reports whether err is worth another attempt. Every failure is,
// except cancellation of the caller's context.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
