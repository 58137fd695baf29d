package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	ratelimiter "studybot/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
)

const REDIS_KEY_PREFIX = "studybot::ratelimit::"

// Redis is a fixed window limiter shared by every process using the same
// Redis instance.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	now := r.now()
	window := limit.Interval.Duration()
	windowStart := now.Truncate(window)
	windowEnd := windowStart.Add(window)
	counterKey := fmt.Sprintf("%s%s::%d", REDIS_KEY_PREFIX, key, windowStart.Unix())

	var counter *redis.IntCmd
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		counter = pipe.Incr(ctx, counterKey)
		pipe.ExpireAt(ctx, counterKey, windowEnd)
		return nil
	})
	switch {
	case errors.Is(err, context.Canceled):
		return ratelimiter.NotAllowed(0)
	case err != nil:
		// Commands stay available while Redis is down.
		r.log.Error(
			ctx,
			"Could not check rate limit due to Redis client error.",
			logging.Entry("key", key),
			logging.Entry("err", err),
		)
		return ratelimiter.Allowed()
	case counter.Val() > int64(limit.Value):
		return ratelimiter.NotAllowed(windowEnd.Sub(now))
	default:
		return ratelimiter.Allowed()
	}
}
