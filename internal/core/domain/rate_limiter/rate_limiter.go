package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// ExceededError is returned instead of ErrRateLimitExceeded when the limiter
// knows when the next call will be accepted. It matches ErrRateLimitExceeded
// with errors.Is.
type ExceededError struct {
	RetryAfter time.Duration
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("%s, retry after %s", ErrRateLimitExceeded, e.RetryAfter)
}

func (e *ExceededError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

func (i Interval) Duration() time.Duration {
	switch i {
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	default:
		panic("invalid rate limiting interval")
	}
}

// Limit allows Value calls per Interval for one key.
type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed  bool
	RetryAfter time.Duration
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed(retryAfter time.Duration) Result {
	return Result{IsAllowed: false, RetryAfter: retryAfter}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
