// Package ratelimit throttles callers per key over a time window.
package ratelimit

import (
	"context"
	"math"
	"time"
)

// Result describes the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfterSeconds returns how long the caller should wait, at least one second.
func (r Result) RetryAfterSeconds(now time.Time) int {
	secs := int(math.Ceil(r.ResetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Limiter counts one hit for key and reports whether it is within the limit.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
