package chat

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/27piyush27/folio/internal/clock"
)

func TestMemoryLimiterBucket(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	l := NewMemoryLimiter(clk, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i)
	}
	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok, "burst exhausted")

	// Other clients have their own bucket.
	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok)

	// 3 per minute refills one token every 20s.
	clk.Advance(19 * time.Second)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
	clk.Advance(2 * time.Second)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
}

func TestMemoryLimiterCapsAtBurst(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	l := NewMemoryLimiter(clk, 2)
	ctx := context.Background()

	l.Allow(ctx, "a")
	clk.Advance(time.Hour)

	allowed := 0
	for i := 0; i < 5; i++ {
		if ok, _ := l.Allow(ctx, "a"); ok {
			allowed++
		}
	}
	assert.Equal(t, 2, allowed)
}

func newRedis(t *testing.T) *backend.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisLimiterWindow(t *testing.T) {
	client := newRedis(t)
	clk := clock.NewFake(time.Unix(6000, 0))
	l := NewRedisLimiter(client, "folio:chat:", 2, clk)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, "folio:chat:203.0.113.7:100").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	// Next window starts fresh.
	clk.Advance(time.Minute)
	ok, err = l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiterReportsOutage(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	l := NewRedisLimiter(client, "p:", 1, clock.Real())
	_, err = l.Allow(context.Background(), "x")
	assert.Error(t, err)
}
