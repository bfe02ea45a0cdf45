package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-assistant/pkg/retry"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	opErr := errors.New("boom")
	calls := 0
	err := retry.Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return opErr
	})

	if !errors.Is(err, opErr) {
		t.Fatalf("expected op error, got: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 calls, got %d", calls)
	}
}

func TestDo_RecoversMidway(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), 5, time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDo_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- retry.Do(ctx, 3, time.Hour, func(ctx context.Context) error {
			calls++
			return errors.New("fail")
		})
	}()

	// Give the first attempt time to run, then cancel during the delay.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("retry.Do did not return after cancellation")
	}

	if calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", calls)
	}
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = retry.Do(context.Background(), 0, 0, func(ctx context.Context) error {
		calls++
		return nil
	})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
