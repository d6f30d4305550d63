package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "business", cfg.Sitegen.DefaultTemplate)
	require.Equal(t, 2000, cfg.Sitegen.MaxPromptLength)
	require.Equal(t, PublishDriverMemory, cfg.Publish.Driver)
	require.Equal(t, 2000, cfg.Publish.MaxMemoryObjects)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9000"
  rateLimit:
    requestsPerMinute: 10
sitegen:
  defaultTemplate: portfolio
publish:
  driver: r2
  endpoint: example.r2.cloudflarestorage.com
  accessKey: file-key
  secretKey: file-secret
  bucket: sites
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SITEGEN_MAX_PROMPT_LENGTH", "500")
	t.Setenv("R2_BUCKET", "env-bucket")
	t.Setenv("PUBLISH_MAX_MEMORY_OBJECTS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, 10, cfg.HTTP.RateLimit.RequestsPerMinute)
	require.Equal(t, 20, cfg.HTTP.RateLimit.Burst)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "portfolio", cfg.Sitegen.DefaultTemplate)
	require.Equal(t, 500, cfg.Sitegen.MaxPromptLength)
	require.Equal(t, PublishDriverR2, cfg.Publish.Driver)
	require.Equal(t, "env-bucket", cfg.Publish.Bucket)
	require.Equal(t, 50, cfg.Publish.MaxMemoryObjects)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }, errMsg: "http.address"},
		{name: "valkey without addr", mutate: func(c *Config) { c.HTTP.RateLimit.Valkey.Enabled = true }, errMsg: "valkey.addr"},
		{name: "prompt length", mutate: func(c *Config) { c.Sitegen.MaxPromptLength = 0 }, errMsg: "maxPromptLength"},
		{name: "r2 without endpoint", mutate: func(c *Config) { c.Publish.Driver = PublishDriverR2 }, errMsg: "publish.endpoint"},
		{name: "unbounded memory driver", mutate: func(c *Config) { c.Publish.MaxMemoryObjects = 0 }, errMsg: "maxMemoryObjects"},
		{name: "unknown driver", mutate: func(c *Config) { c.Publish.Driver = "ftp" }, errMsg: "not supported"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}

	cfg := defaultConfig()
	cfg.Publish.Enabled = false
	cfg.Publish.Driver = "ftp"
	require.NoError(t, cfg.Validate(), "driver is ignored when publishing is off")
}
