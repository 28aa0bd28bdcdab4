package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/config"
	"github.com/creatorchain/creatorchain/internal/logger"
)

const (
	// redisRetryDelay is how long the limiter stays on the local fallback after a Redis error
	redisRetryDelay = 10 * time.Second
	// maxLocalBuckets bounds the fallback bucket map; it is reset when full
	maxLocalBuckets = 10000
)

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter throttles requests per key with a token bucket
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes a token for key. It fails open when no bucket can be consulted.
	Allow(ctx context.Context, key string) Decision
}

type limiter struct {
	config      config.RateLimitConfig
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock
	limit       redis_rate.Limit

	// unix nanoseconds before which Redis is skipped
	redisDownUntil atomic.Int64

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter creates a new limiter. rc may be nil to only use the local buckets.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) Limiter {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 60
	}
	if cfg.RefillTokens <= 0 {
		cfg.RefillTokens = cfg.Capacity
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "creatorchain:ratelimit:"
	}

	l := &limiter{
		config: cfg,
		clock:  clock,
		limit: redis_rate.Limit{
			Rate:   cfg.RefillTokens,
			Burst:  cfg.Capacity,
			Period: cfg.RefillInterval,
		},
		local: make(map[string]*rate.Limiter),
	}
	if rc != nil {
		l.distributed = rc.NewRateLimiter()
	}

	return l
}

func (l *limiter) Allow(ctx context.Context, key string) Decision {
	if !l.config.Enabled {
		return Decision{Allowed: true}
	}

	now := l.clock.Now()
	if l.distributed != nil && now.UnixNano() >= l.redisDownUntil.Load() {
		res, err := l.distributed.Allow(ctx, l.config.Prefix+key, l.limit)
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}
		}

		l.redisDownUntil.Store(now.Add(redisRetryDelay).UnixNano())
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back", zap.Error(err), zap.String("key", key))
	}

	if l.config.EnableLocalFallback {
		return l.allowLocal(key, now)
	}

	logger.FailOpenCtx(ctx, "rate limiter unavailable", nil, zap.String("key", key))
	return Decision{Allowed: true}
}

func (l *limiter) allowLocal(key string, now time.Time) Decision {
	l.mu.Lock()
	bucket, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalBuckets {
			l.local = make(map[string]*rate.Limiter)
		}
		every := l.config.RefillInterval / time.Duration(l.config.RefillTokens)
		bucket = rate.NewLimiter(rate.Every(every), l.config.Capacity)
		l.local[key] = bucket
	}
	l.mu.Unlock()

	reservation := bucket.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}

	return Decision{Allowed: true, Remaining: int(bucket.TokensAt(now))}
}
