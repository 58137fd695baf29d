package ratelimiter

import (
	"context"
	"fmt"
	e "studybot/internal/core/domain/errors"
	ratelimiter "studybot/internal/core/domain/rate_limiter"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	IDLE_BUCKET_TTL = 10 * time.Minute
	CLEANUP_EVERY   = 5000
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Memory is a per-key token bucket limiter for a single process. A bucket
// holds limit.Value tokens and refills completely over limit.Interval.
type Memory struct {
	lock    sync.Mutex
	buckets map[string]*bucket
	lookups int
	now     func() time.Time
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Memory{buckets: make(map[string]*bucket), now: now}
}

func (m *Memory) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	if limit.Value == 0 {
		return ratelimiter.NotAllowed(limit.Interval.Duration())
	}
	now := m.now()
	reservation := m.bucket(key, limit, now).ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return ratelimiter.Allowed()
	}
	reservation.CancelAt(now)
	return ratelimiter.NotAllowed(delay)
}

func (m *Memory) bucket(key string, limit ratelimiter.Limit, now time.Time) *rate.Limiter {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.lookups++
	if m.lookups >= CLEANUP_EVERY {
		for k, b := range m.buckets {
			if now.Sub(b.lastSeen) >= IDLE_BUCKET_TTL {
				delete(m.buckets, k)
			}
		}
		m.lookups = 0
	}

	k := fmt.Sprintf("%s::%d/%s", key, limit.Value, limit.Interval.Duration())
	if b, ok := m.buckets[k]; ok {
		b.lastSeen = now
		return b.limiter
	}
	every := limit.Interval.Duration() / time.Duration(limit.Value)
	limiter := rate.NewLimiter(rate.Every(every), int(limit.Value))
	m.buckets[k] = &bucket{limiter: limiter, lastSeen: now}
	return limiter
}

func (m *Memory) Len() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.buckets)
}
