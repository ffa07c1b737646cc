package cmd

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/chat"
	"github.com/27piyush27/folio/internal/config"
)

func TestNewLimiterDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit.RequestsPerMinute = 0

	l, closeFn, err := newLimiter(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.Nil(t, l)
}

func TestNewLimiterMemory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit.RequestsPerMinute = 10
	cfg.RateLimit.RedisAddr = ""

	l, closeFn, err := newLimiter(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &chat.MemoryLimiter{}, l)
}

func TestNewLimiterRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.DefaultConfig()
	cfg.RateLimit.RequestsPerMinute = 1
	cfg.RateLimit.RedisAddr = mr.Addr()
	cfg.RateLimit.RedisPrefix = "test:"

	l, closeFn, err := newLimiter(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	require.IsType(t, &chat.RedisLimiter{}, l)

	ok, err := l.Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = l.Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewLimiterRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.DefaultConfig()
	cfg.RateLimit.RequestsPerMinute = 5
	cfg.RateLimit.RedisAddr = addr

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newLimiter(ctx, cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), addr)
}
