package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
	"github.com/yanqian/ai-sitegen/internal/infra/config"
	"github.com/yanqian/ai-sitegen/internal/infra/ratelimit"
	"github.com/yanqian/ai-sitegen/internal/infra/sitestore"
)

func provideSitegenConfig(cfg *config.Config) sitegen.Config {
	return sitegen.Config{
		DefaultTemplate: sitegen.TemplateID(cfg.Sitegen.DefaultTemplate),
		MaxPromptLength: cfg.Sitegen.MaxPromptLength,
		PublishEnabled:  cfg.Publish.Enabled,
		PublishPrefix:   cfg.Publish.Prefix,
	}
}

func provideObjectStorage(cfg *config.Config, logger *slog.Logger) (sitegen.ObjectStorage, error) {
	if !cfg.Publish.Enabled {
		logger.Info("publishing disabled")
		return nil, nil
	}
	switch cfg.Publish.Driver {
	case config.PublishDriverR2:
		store, err := sitestore.NewR2Storage(sitestore.R2Options{
			Endpoint:  cfg.Publish.Endpoint,
			AccessKey: cfg.Publish.AccessKey,
			SecretKey: cfg.Publish.SecretKey,
			Bucket:    cfg.Publish.Bucket,
			Region:    cfg.Publish.Region,
			UseSSL:    cfg.Publish.UseSSL,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("init publish storage: %w", err)
		}
		logger.Info("r2 publish storage enabled", "bucket", cfg.Publish.Bucket)
		return store, nil
	default:
		logger.Info("memory publish storage enabled, published sites are lost on restart",
			"max_objects", cfg.Publish.MaxMemoryObjects)
		return sitestore.NewMemoryStorage(cfg.Publish.MaxMemoryObjects), nil
	}
}

// provideLimiter returns the request limiter and a cleanup that closes any valkey client it opened.
func provideLimiter(cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func()) {
	noop := func() {}
	rl := cfg.HTTP.RateLimit
	if !rl.Enabled || rl.RequestsPerMinute <= 0 {
		return nil, noop
	}
	fallback := ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
	if !rl.Valkey.Enabled {
		return fallback, noop
	}
	opt, err := buildValkeyOptions(rl.Valkey)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory limiter", "error", err)
		return fallback, noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory limiter", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory limiter", "error", err)
		client.Close()
		return fallback, noop
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.Valkey.Addr)
	limiter := ratelimit.NewValkeyLimiter(client, rl.Valkey.KeyPrefix, rl.RequestsPerMinute)
	return limiter, limiter.Close
}

func buildValkeyOptions(cfg config.ValkeyConfig) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Addr, "://") {
		return valkey.ParseURL(cfg.Addr)
	}
	return valkey.ClientOption{
		InitAddress: []string{cfg.Addr},
		Password:    cfg.Password,
	}, nil
}
