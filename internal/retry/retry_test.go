package retry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amishk599/jobinsight/internal/model"
	"github.com/amishk599/jobinsight/internal/pacing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingSleep records requested pauses without blocking.
type recordingSleep struct {
	pauses []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.pauses = append(r.pauses, d)
	return ctx.Err()
}

func TestBudget_AbsorbsUpToMax(t *testing.T) {
	rec := &recordingSleep{}
	b := NewBudget(3, pacing.FixedDelay(7*time.Second), rec.sleep, discardLogger())
	failure := &model.HTTPError{StatusCode: 500, Body: "boom"}

	for i := 1; i <= 3; i++ {
		if err := b.Fail(context.Background(), "Data Engineer", failure); err != nil {
			t.Fatalf("failure %d: unexpected error %v", i, err)
		}
	}
	if len(rec.pauses) != 3 {
		t.Fatalf("expected 3 pauses, got %d", len(rec.pauses))
	}
	for _, p := range rec.pauses {
		if p != 7*time.Second {
			t.Errorf("pause = %v, want 7s", p)
		}
	}

	err := b.Fail(context.Background(), "Data Engineer", failure)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted on 4th failure, got %v", err)
	}
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 500 {
		t.Errorf("expected wrapped HTTPError 500, got %v", err)
	}
	if len(rec.pauses) != 3 {
		t.Errorf("exhausted budget should not pause, got %d pauses", len(rec.pauses))
	}
	if b.Used() != 4 {
		t.Errorf("Used() = %d, want 4", b.Used())
	}
}

func TestBudget_ZeroRetries(t *testing.T) {
	b := NewBudget(0, pacing.FixedDelay(0), (&recordingSleep{}).sleep, discardLogger())
	err := b.Fail(context.Background(), "x", errors.New("network down"))
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestBudget_DoesNotRetryCancellation(t *testing.T) {
	rec := &recordingSleep{}
	b := NewBudget(3, pacing.FixedDelay(0), rec.sleep, discardLogger())

	err := b.Fail(context.Background(), "x", context.Canceled)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if b.Used() != 0 {
		t.Errorf("cancellation should not consume budget, Used() = %d", b.Used())
	}
	if len(rec.pauses) != 0 {
		t.Errorf("cancellation should not pause")
	}
}

func TestBudget_InterruptedPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBudget(3, pacing.FixedDelay(time.Hour), nil, discardLogger())
	err := b.Fail(ctx, "x", errors.New("timeout"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
