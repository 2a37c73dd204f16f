package pacing

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestUniformDelay_StaysInRange(t *testing.T) {
	d := NewUniformDelay(2*time.Second, 10*time.Second)
	for i := 0; i < 1000; i++ {
		got := d.Next()
		if got < 2*time.Second || got > 10*time.Second {
			t.Fatalf("Next() = %v, want within [2s, 10s]", got)
		}
	}
}

func TestUniformDelay_SwapsReversedBounds(t *testing.T) {
	d := NewUniformDelay(15*time.Second, 5*time.Second)
	if d.Min != 5*time.Second || d.Max != 15*time.Second {
		t.Errorf("bounds = [%v, %v], want [5s, 15s]", d.Min, d.Max)
	}
}

func TestUniformDelay_EqualBounds(t *testing.T) {
	d := NewUniformDelay(3*time.Second, 3*time.Second)
	if got := d.Next(); got != 3*time.Second {
		t.Errorf("Next() = %v, want 3s", got)
	}
}

func TestFixedDelay(t *testing.T) {
	if got := FixedDelay(0).Next(); got != 0 {
		t.Errorf("Next() = %v, want 0", got)
	}
	if got := FixedDelay(time.Second).Next(); got != time.Second {
		t.Errorf("Next() = %v, want 1s", got)
	}
}

func TestSleep_Waits(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 50*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	// Allow for timer jitter.
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("expected >= 40ms sleep, got %v", elapsed)
	}
}

func TestSleep_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, 5*time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSleep_ZeroReturnsImmediately(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 0); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 20*time.Millisecond {
		t.Errorf("expected near-instant return, got %v", elapsed)
	}
}
