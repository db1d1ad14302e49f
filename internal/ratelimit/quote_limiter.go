package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/harborline/seaquote/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyQuoteText = "quote:text:%s"

// Free-text quotes scan the full reference tables per request, so they get
// a tighter budget than the structured endpoint.
const (
	quoteTextRate  = 1.0
	quoteTextBurst = 10

	// Per-minute budget for the in-process fallback, roughly matching
	// the bucket's sustained rate.
	quoteTextWindowLimit = 60
)

// QuoteLimiter throttles free-text quote requests per caller. With Redis
// configured the budget is shared across instances via a token bucket;
// without it a per-process fixed window applies. A nil limiter allows
// everything.
type QuoteLimiter struct {
	bucket   *TokenBucket
	fallback *fixedWindowLimiter
	log      *zap.Logger
}

func NewQuoteLimiter(cfg config.Config, log *zap.Logger) *QuoteLimiter {
	if cfg.RedisAddr == "" {
		return &QuoteLimiter{
			fallback: newFixedWindowLimiter(),
			log:      log.Named("ratelimit"),
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &QuoteLimiter{
		bucket: NewTokenBucket(client),
		log:    log.Named("ratelimit"),
	}
}

// Allow reports whether the caller may run one more free-text quote. Redis
// failures fail open; quoting matters more than the throttle.
func (l *QuoteLimiter) Allow(ctx context.Context, caller string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	if l.bucket == nil {
		return l.fallback.allow(time.Now(), fmt.Sprintf(keyQuoteText, caller), quoteTextWindowLimit)
	}

	res, err := l.bucket.Allow(ctx, fmt.Sprintf(keyQuoteText, caller), quoteTextRate, quoteTextBurst)
	if err != nil {
		l.log.Warn("rate limit check failed", zap.Error(err))
		return true, 0
	}
	return res.Allowed, res.RetryAfter
}
