package chat

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/27piyush27/folio/internal/clock"
)

// Limiter decides whether a client may start another chat request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// maxBuckets bounds the in-process limiter's memory; full buckets are
// swept once it is exceeded.
const maxBuckets = 10000

// MemoryLimiter is a per-client token bucket allowing rpm requests per
// minute with bursts of up to rpm.
type MemoryLimiter struct {
	clk clock.Clock
	rpm int

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastFill time.Time
}

// NewMemoryLimiter creates an in-process limiter.
func NewMemoryLimiter(clk clock.Clock, rpm int) *MemoryLimiter {
	return &MemoryLimiter{
		clk:     clk,
		rpm:     rpm,
		buckets: make(map[string]*bucket),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clk.Now()
	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= maxBuckets {
			l.sweep(now)
		}
		b = &bucket{tokens: float64(l.rpm), lastFill: now}
		l.buckets[key] = b
	}
	l.refill(b, now)

	if b.tokens < 1 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

func (l *MemoryLimiter) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.lastFill)
	if elapsed <= 0 {
		return
	}
	b.tokens += elapsed.Seconds() * float64(l.rpm) / 60.0
	if b.tokens > float64(l.rpm) {
		b.tokens = float64(l.rpm)
	}
	b.lastFill = now
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for k, b := range l.buckets {
		l.refill(b, now)
		if b.tokens >= float64(l.rpm) {
			delete(l.buckets, k)
		}
	}
}

// RedisLimiter counts requests per client in fixed one-minute windows
// shared by every server instance.
type RedisLimiter struct {
	client *backend.Client
	prefix string
	rpm    int
	clk    clock.Clock
}

// NewRedisLimiter creates a limiter storing counters under prefix.
func NewRedisLimiter(client *backend.Client, prefix string, rpm int, clk clock.Clock) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		rpm:    rpm,
		clk:    clk,
	}
}

const window = time.Minute

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := l.clk.Now().Unix() / int64(window/time.Second)
	counterKey := l.prefix + key + ":" + strconv.FormatInt(slot, 10)

	var incr *backend.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		incr = pipe.Incr(ctx, counterKey)
		pipe.Expire(ctx, counterKey, window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis rate limit: %w", err)
	}
	return incr.Val() <= int64(l.rpm), nil
}
