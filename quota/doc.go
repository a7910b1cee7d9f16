// Package quota provides a sliding-window call limiter for external
// services that enforce "at most N calls per rolling period" quotas.
//
// A single Window is constructed at startup and shared by every ingestion
// in the process: the recognition quota is global, so a per-ingestion
// limiter would overrun it as soon as two ingestions run concurrently.
//
//	limiter := quota.NewWindow(quota.Config{Limit: 3, Period: time.Minute})
//	if err := limiter.Acquire(ctx); err != nil {
//	    return err // context cancelled or deadline passed while waiting
//	}
//	// issue the call
package quota
