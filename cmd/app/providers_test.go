package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-sitegen/internal/infra/config"
	"github.com/yanqian/ai-sitegen/internal/infra/ratelimit"
	"github.com/yanqian/ai-sitegen/internal/infra/sitestore"
)

func TestProvideLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled := &config.Config{}
	limiter, cleanup := provideLimiter(disabled, logger)
	require.Nil(t, limiter)
	require.NotNil(t, cleanup)
	cleanup()

	unreachable := &config.Config{HTTP: config.HTTPConfig{RateLimit: config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             5,
		Valkey:            config.ValkeyConfig{Enabled: true, Addr: "127.0.0.1:1"},
	}}}
	limiter, cleanup = provideLimiter(unreachable, logger)
	require.IsType(t, &ratelimit.MemoryLimiter{}, limiter, "falls back when valkey is down")
	cleanup()
}

func TestProvideObjectStorageCapsMemoryDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Publish: config.PublishConfig{
		Enabled:          true,
		Driver:           config.PublishDriverMemory,
		MaxMemoryObjects: 2,
	}}

	storage, err := provideObjectStorage(cfg, logger)
	require.NoError(t, err)
	mem, ok := storage.(*sitestore.MemoryStorage)
	require.True(t, ok)

	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		_, err := mem.Put(ctx, key, []byte(key), "text/plain")
		require.NoError(t, err)
	}
	require.Equal(t, 2, mem.Len())

	cfg.Publish.Enabled = false
	storage, err = provideObjectStorage(cfg, logger)
	require.NoError(t, err)
	require.Nil(t, storage)
}
