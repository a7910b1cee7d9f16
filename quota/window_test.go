package quota

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestWindow_AllowsWithinLimit(t *testing.T) {
	w := NewWindow(Config{Name: "test", Limit: 3, Period: time.Minute})

	for i := 0; i < 3; i++ {
		if !w.Allow() {
			t.Errorf("call %d should be admitted", i)
		}
	}
	if w.Allow() {
		t.Error("call over the limit should be rejected")
	}
}

func TestWindow_SlidesOverTime(t *testing.T) {
	w := NewWindow(Config{Name: "test", Limit: 2, Period: time.Minute})

	base := time.Now()
	clock := base
	w.now = func() time.Time { return clock }

	w.Allow()
	clock = base.Add(30 * time.Second)
	w.Allow()

	if w.Allow() {
		t.Error("window full, call should be rejected")
	}

	// The first call falls out of the trailing window.
	clock = base.Add(61 * time.Second)
	if !w.Allow() {
		t.Error("call should be admitted after the oldest slot expires")
	}
	if w.Pending() != 2 {
		t.Errorf("expected 2 calls in window, got %d", w.Pending())
	}
}

func TestWindow_AcquireBlocksUntilSlotOpens(t *testing.T) {
	w := NewWindow(Config{Name: "test", Limit: 1, Period: 50 * time.Millisecond})

	if err := w.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire should not block: %v", err)
	}

	start := time.Now()
	if err := w.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elapsed := time.Since(start)

	if elapsed < 30*time.Millisecond {
		t.Errorf("expected acquire to wait ~50ms, waited %v", elapsed)
	}
}

func TestWindow_AcquireRespectsContext(t *testing.T) {
	w := NewWindow(Config{Name: "test", Limit: 1, Period: time.Minute})
	w.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := w.Acquire(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestWindow_OnWaitCallback(t *testing.T) {
	var mu sync.Mutex
	var waits []time.Duration

	w := NewWindow(Config{
		Name:   "test",
		Limit:  1,
		Period: 20 * time.Millisecond,
		OnWait: func(name string, wait time.Duration) {
			if name != "test" {
				t.Errorf("expected name 'test', got %q", name)
			}
			mu.Lock()
			waits = append(waits, wait)
			mu.Unlock()
		},
	})

	w.Allow()
	if err := w.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(waits) == 0 {
		t.Error("expected OnWait to be called while blocked")
	}
}

func TestWindow_SharedAcrossGoroutines(t *testing.T) {
	// Two concurrent "ingestions" against one window must serialize:
	// with limit 1 and a 20ms period, 4 calls need at least ~60ms.
	w := NewWindow(Config{Name: "shared", Limit: 1, Period: 20 * time.Millisecond})

	var wg sync.WaitGroup
	start := time.Now()
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2; i++ {
				if err := w.Acquire(context.Background()); err != nil {
					t.Errorf("acquire failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected shared window to serialize calls, finished in %v", elapsed)
	}
}

func TestWindow_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig("recognizer")
	if cfg.Limit != 3 || cfg.Period != time.Minute {
		t.Errorf("expected 3 calls per minute, got %d per %v", cfg.Limit, cfg.Period)
	}

	w := NewWindow(Config{Name: "zeros"})
	if w.Limit() != 3 || w.Period() != time.Minute {
		t.Errorf("expected zero config to fall back to 3/minute, got %d/%v", w.Limit(), w.Period())
	}
}
