package quota

import (
	"context"
	"sync"
	"time"
)

// Config configures a sliding-window limiter.
type Config struct {
	// Name identifies this limiter for logging/metrics.
	Name string `yaml:"name" mapstructure:"name"`
	// Limit is the maximum number of calls per rolling period.
	Limit int `yaml:"limit" mapstructure:"limit"`
	// Period is the length of the rolling window.
	Period time.Duration `yaml:"period" mapstructure:"period"`
	// OnWait is called before the limiter blocks, with the expected wait.
	OnWait func(name string, wait time.Duration) `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns the quota of the hosted recognition service:
// 3 calls per rolling minute.
func DefaultConfig(name string) Config {
	return Config{
		Name:   name,
		Limit:  3,
		Period: time.Minute,
	}
}

// Window is a sliding-window call limiter. It tracks the timestamps of the
// most recent calls and admits a new call only when fewer than Limit calls
// occurred within the trailing Period.
//
// A Window is safe for concurrent use; it is the single synchronization
// point shared by all ingestions in the process.
type Window struct {
	cfg Config

	mu    sync.Mutex
	calls []time.Time

	now func() time.Time
}

// NewWindow creates a new sliding-window limiter.
func NewWindow(cfg Config) *Window {
	if cfg.Limit <= 0 {
		cfg.Limit = 3
	}
	if cfg.Period <= 0 {
		cfg.Period = time.Minute
	}
	return &Window{
		cfg: cfg,
		now: time.Now,
	}
}

// Allow admits a call without blocking. It records the call and returns
// true when the window has room, and returns false otherwise.
func (w *Window) Allow() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.prune(now)

	if len(w.calls) < w.cfg.Limit {
		w.calls = append(w.calls, now)
		return true
	}
	return false
}

// Acquire blocks until the window admits a call or the context is done.
// The call is recorded at the moment of admission, not at entry.
func (w *Window) Acquire(ctx context.Context) error {
	for {
		w.mu.Lock()
		now := w.now()
		w.prune(now)

		if len(w.calls) < w.cfg.Limit {
			w.calls = append(w.calls, now)
			w.mu.Unlock()
			return nil
		}

		// The oldest recorded call bounds when a slot opens.
		wait := w.calls[0].Add(w.cfg.Period).Sub(now)
		w.mu.Unlock()

		if w.cfg.OnWait != nil {
			w.cfg.OnWait(w.cfg.Name, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			// Re-check under the lock: another ingestion may have taken
			// the slot while we slept.
		}
	}
}

// Pending returns the number of calls currently inside the window.
func (w *Window) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.prune(w.now())
	return len(w.calls)
}

// Limit returns the configured call limit.
func (w *Window) Limit() int { return w.cfg.Limit }

// Period returns the configured window period.
func (w *Window) Period() time.Duration { return w.cfg.Period }

// prune drops call timestamps older than the window. Callers hold w.mu.
func (w *Window) prune(now time.Time) {
	cutoff := now.Add(-w.cfg.Period)
	i := 0
	for i < len(w.calls) && !w.calls[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.calls = append(w.calls[:0], w.calls[i:]...)
	}
}
