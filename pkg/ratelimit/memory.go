package ratelimit

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryLimiter is a fixed-window limiter for single-instance deployments.
type MemoryLimiter struct {
	cache  *cache.Cache
	limit  int
	window time.Duration
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		cache:  cache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	var hits int64
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		// Add fails when the window is already open; that is expected.
		_ = l.cache.Add(key, int64(0), l.window)
		hits, err = l.cache.IncrementInt64(key, 1)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Result{}, err
	}

	resetAt := time.Now().Add(l.window)
	if _, exp, ok := l.cache.GetWithExpiration(key); ok && !exp.IsZero() {
		resetAt = exp
	}

	remaining := l.limit - int(hits)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   hits <= int64(l.limit),
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
