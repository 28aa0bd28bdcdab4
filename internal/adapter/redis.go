package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient defines the interface for Redis operations to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// NewRateLimiter creates a new rate limiter using this Redis client
	NewRateLimiter() RedisRateLimiter

	// SlidingWindowCount records member at now and returns the number of members within the trailing window
	SlidingWindowCount(ctx context.Context, key string, member string, now time.Time, window time.Duration) (int64, error)

	// CountSince returns the number of sorted set members scored at or after since
	CountSince(ctx context.Context, key string, since time.Time) (int64, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping checks if Redis is reachable
func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// NewRateLimiter creates a new rate limiter using this Redis client
func (r *RealRedisClient) NewRateLimiter() RedisRateLimiter {
	return &RealRateLimiter{limiter: redis_rate.NewLimiter(r.client)}
}

// SlidingWindowCount uses a sorted set scored by unix milliseconds
func (r *RealRedisClient) SlidingWindowCount(ctx context.Context, key string, member string, now time.Time, window time.Duration) (int64, error) {
	nowMs := now.UnixMilli()
	minScore := strconv.FormatInt(nowMs-window.Milliseconds(), 10)

	var card *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "-inf", "("+minScore)
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
		card = pipe.ZCard(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update sliding window: %w", err)
	}

	return card.Val(), nil
}

// CountSince returns the number of sorted set members scored at or after since
func (r *RealRedisClient) CountSince(ctx context.Context, key string, since time.Time) (int64, error) {
	count, err := r.client.ZCount(ctx, key, strconv.FormatInt(since.UnixMilli(), 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sliding window: %w", err)
	}
	return count, nil
}

// Close closes the Redis connection
func (r *RealRedisClient) Close() error {
	return r.client.Close()
}

// RedisRateLimiter defines the interface for distributed rate limiting operations
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisRateLimiter=MockRedisRateLimiter
type RedisRateLimiter interface {
	// Allow consumes one token from the bucket at key
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RealRateLimiter wraps the redis_rate.Limiter
type RealRateLimiter struct {
	limiter *redis_rate.Limiter
}

// Allow consumes one token from the bucket at key
func (r *RealRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}
