package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/harborline/seaquote/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestQuoteLimiterFallsBackWithoutRedis(t *testing.T) {
	l := NewQuoteLimiter(config.Config{}, zap.NewNop())

	assert.Nil(t, l.bucket)
	assert.NotNil(t, l.fallback)

	allowed, retryAfter := l.Allow(context.Background(), "alice")
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestQuoteLimiterNilAllows(t *testing.T) {
	var l *QuoteLimiter

	allowed, _ := l.Allow(context.Background(), "alice")
	assert.True(t, allowed)
}

func TestFixedWindowLimiterEnforcesLimit(t *testing.T) {
	f := newFixedWindowLimiter()
	now := time.Date(2025, 8, 1, 12, 0, 10, 0, time.UTC)

	for i := 0; i < 3; i++ {
		allowed, _ := f.allow(now, "alice", 3)
		assert.True(t, allowed)
	}

	allowed, retryAfter := f.allow(now, "alice", 3)
	assert.False(t, allowed)
	assert.Equal(t, 50*time.Second, retryAfter)

	// Other callers keep their own budget.
	allowed, _ = f.allow(now, "bob", 3)
	assert.True(t, allowed)
}

func TestFixedWindowLimiterResetsOnNewWindow(t *testing.T) {
	f := newFixedWindowLimiter()
	now := time.Date(2025, 8, 1, 12, 0, 10, 0, time.UTC)

	for i := 0; i < 3; i++ {
		f.allow(now, "alice", 3)
	}
	allowed, _ := f.allow(now, "alice", 3)
	assert.False(t, allowed)

	allowed, _ = f.allow(now.Add(fixedWindowSize), "alice", 3)
	assert.True(t, allowed)
}
