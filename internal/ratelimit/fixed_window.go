package ratelimit

import (
	"sync"
	"time"
)

const fixedWindowSize = time.Minute

// fixedWindowLimiter is the single-process fallback used when no Redis
// address is configured. Counts reset on every window boundary, so a
// caller can burst up to twice the limit across a boundary; acceptable
// for the deployments this fallback serves.
type fixedWindowLimiter struct {
	mu     sync.Mutex
	window time.Time
	counts map[string]int
}

func newFixedWindowLimiter() *fixedWindowLimiter {
	return &fixedWindowLimiter{counts: make(map[string]int)}
}

func (f *fixedWindowLimiter) allow(now time.Time, key string, limit int) (bool, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	start := now.Truncate(fixedWindowSize)
	if !start.Equal(f.window) {
		f.window = start
		f.counts = make(map[string]int)
	}
	if f.counts[key] >= limit {
		return false, start.Add(fixedWindowSize).Sub(now)
	}
	f.counts[key]++
	return true, 0
}
