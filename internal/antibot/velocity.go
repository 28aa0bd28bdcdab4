package antibot

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/store"
)

const velocityKeyPrefix = "antibot:clicks:"

// VelocityCounter tracks recent clicks per IP address
//
//go:generate mockgen -source=velocity.go -destination=../mocks/velocity.go -package=mocks -mock_names=VelocityCounter=MockVelocityCounter
type VelocityCounter interface {
	// RecordClick registers a click from ip at the given time
	RecordClick(ctx context.Context, ip string, at time.Time) error
	// CountClicks returns the clicks from ip since the given time
	CountClicks(ctx context.Context, ip string, since time.Time) (int64, error)
}

type redisVelocityCounter struct {
	redis  adapter.RedisClient
	window time.Duration
}

// NewRedisVelocityCounter creates a counter backed by a Redis sorted set per IP
func NewRedisVelocityCounter(redis adapter.RedisClient, window time.Duration) VelocityCounter {
	return &redisVelocityCounter{redis: redis, window: window}
}

func (c *redisVelocityCounter) RecordClick(ctx context.Context, ip string, at time.Time) error {
	member := ulid.MustNew(ulid.Timestamp(at), rand.Reader).String()
	if _, err := c.redis.SlidingWindowCount(ctx, velocityKeyPrefix+ip, member, at, c.window); err != nil {
		return fmt.Errorf("failed to record click velocity: %w", err)
	}
	return nil
}

func (c *redisVelocityCounter) CountClicks(ctx context.Context, ip string, since time.Time) (int64, error) {
	count, err := c.redis.CountSince(ctx, velocityKeyPrefix+ip, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count click velocity: %w", err)
	}
	return count, nil
}

type storeVelocityCounter struct {
	store store.Store
}

// NewStoreVelocityCounter creates a counter that reads the click log.
// Clicks are already persisted by the tracker so RecordClick is a no-op.
func NewStoreVelocityCounter(store store.Store) VelocityCounter {
	return &storeVelocityCounter{store: store}
}

func (c *storeVelocityCounter) RecordClick(context.Context, string, time.Time) error {
	return nil
}

func (c *storeVelocityCounter) CountClicks(ctx context.Context, ip string, since time.Time) (int64, error) {
	return c.store.CountClicksByIPSince(ctx, ip, since)
}
