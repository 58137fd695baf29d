package ratelimiter

import (
	"context"
	"studybot/internal/core/domain/logging"
	ratelimiter "studybot/internal/core/domain/rate_limiter"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryAllowsUpToLimitPerKey(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemory(func() time.Time { return now })
	limit := ratelimiter.Limit{Value: 3, Interval: ratelimiter.Minute}
	ctx := context.Background()
	assert := require.New(t)

	for i := 0; i < 3; i++ {
		assert.True(limiter.CheckLimit(ctx, "user::1", limit).IsAllowed)
	}
	denied := limiter.CheckLimit(ctx, "user::1", limit)
	assert.False(denied.IsAllowed)
	assert.InDelta(float64(20*time.Second), float64(denied.RetryAfter), float64(time.Millisecond))
	assert.True(limiter.CheckLimit(ctx, "user::2", limit).IsAllowed)

	now = now.Add(20 * time.Second)
	assert.True(limiter.CheckLimit(ctx, "user::1", limit).IsAllowed)
	assert.False(limiter.CheckLimit(ctx, "user::1", limit).IsAllowed)
}

func TestMemoryZeroLimitBlocks(t *testing.T) {
	limiter := NewMemory(time.Now)
	result := limiter.CheckLimit(context.Background(), "k", ratelimiter.Limit{Value: 0, Interval: ratelimiter.Hour})
	require.False(t, result.IsAllowed)
	require.Equal(t, time.Hour, result.RetryAfter)
}

func TestMemoryDeniedCallsDoNotConsumeTokens(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemory(func() time.Time { return now })
	limit := ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute}
	ctx := context.Background()
	assert := require.New(t)

	assert.True(limiter.CheckLimit(ctx, "k", limit).IsAllowed)
	for i := 0; i < 10; i++ {
		assert.False(limiter.CheckLimit(ctx, "k", limit).IsAllowed)
	}
	now = now.Add(time.Minute)
	assert.True(limiter.CheckLimit(ctx, "k", limit).IsAllowed)
}

func TestMemoryEvictsIdleBuckets(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemory(func() time.Time { return now })
	limit := ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute}
	ctx := context.Background()

	limiter.CheckLimit(ctx, "idle", limit)
	now = now.Add(IDLE_BUCKET_TTL)
	for i := 0; i < CLEANUP_EVERY; i++ {
		limiter.CheckLimit(ctx, "busy", limit)
	}

	require.Equal(t, 1, limiter.Len())
}

func TestRedisAllowsWhenRedisIsUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	logger := logging.NewFakeLogger()
	limiter := NewRedis(client, logger, time.Now)

	result := limiter.CheckLimit(
		context.Background(),
		"createReminder::1",
		ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute},
	)

	require.True(t, result.IsAllowed)
	require.Equal(t, 1, logger.CountLevel(logging.ERROR))
}

func TestRedisDeniesWhenContextIsCancelled(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewRedis(client, logging.NewFakeLogger(), time.Now).CheckLimit(
		ctx,
		"createReminder::1",
		ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute},
	)

	require.False(t, result.IsAllowed)
}
