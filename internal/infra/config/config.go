package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Sitegen SitegenConfig `yaml:"sitegen"`
	Publish PublishConfig `yaml:"publish"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool         `yaml:"enabled"`
	RequestsPerMinute int          `yaml:"requestsPerMinute"`
	Burst             int          `yaml:"burst"`
	Valkey            ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig moves rate limit counters into a shared valkey instance.
type ValkeyConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// SitegenConfig tunes website generation.
type SitegenConfig struct {
	DefaultTemplate string `yaml:"defaultTemplate"`
	MaxPromptLength int    `yaml:"maxPromptLength"`
}

// PublishConfig selects where shared sites are stored.
type PublishConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Driver    string `yaml:"driver"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"useSSL"`
	Prefix    string `yaml:"prefix"`
	// MaxMemoryObjects caps the memory driver; the oldest objects are evicted first.
	MaxMemoryObjects int `yaml:"maxMemoryObjects"`
}

const (
	PublishDriverMemory = "memory"
	PublishDriverR2     = "r2"
)

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Addr = v
	}
	if v := os.Getenv("VALKEY_PASSWORD"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Password = v
	}
	if v := os.Getenv("SITEGEN_DEFAULT_TEMPLATE"); v != "" {
		cfg.Sitegen.DefaultTemplate = v
	}
	if v := os.Getenv("SITEGEN_MAX_PROMPT_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Sitegen.MaxPromptLength = parsed
		}
	}
	if v := os.Getenv("PUBLISH_ENABLED"); v != "" {
		cfg.Publish.Enabled = parseBool(v)
	}
	if v := os.Getenv("PUBLISH_DRIVER"); v != "" {
		cfg.Publish.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("R2_ENDPOINT"); v != "" {
		cfg.Publish.Endpoint = v
	}
	if v := os.Getenv("R2_ACCESS_KEY_ID"); v != "" {
		cfg.Publish.AccessKey = v
	}
	if v := os.Getenv("R2_SECRET_ACCESS_KEY"); v != "" {
		cfg.Publish.SecretKey = v
	}
	if v := os.Getenv("R2_BUCKET"); v != "" {
		cfg.Publish.Bucket = v
	}
	if v := os.Getenv("R2_REGION"); v != "" {
		cfg.Publish.Region = v
	}
	if v := os.Getenv("PUBLISH_PREFIX"); v != "" {
		cfg.Publish.Prefix = v
	}
	if v := os.Getenv("PUBLISH_MAX_MEMORY_OBJECTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Publish.MaxMemoryObjects = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
				Valkey: ValkeyConfig{
					KeyPrefix: "sitegen:ratelimit",
				},
			},
		},
		Sitegen: SitegenConfig{
			DefaultTemplate: "business",
			MaxPromptLength: 2000,
		},
		Publish: PublishConfig{
			Enabled: true,
			Driver:  PublishDriverMemory,
			Region:  "auto",
			UseSSL:  true,
			Prefix:  "sites",
			// Two objects per site, so roughly 1000 sites.
			MaxMemoryObjects: 2000,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
		if c.HTTP.RateLimit.Valkey.Enabled && strings.TrimSpace(c.HTTP.RateLimit.Valkey.Addr) == "" {
			return errors.New("http.rateLimit.valkey.addr cannot be empty when valkey is enabled")
		}
	}
	if strings.TrimSpace(c.Sitegen.DefaultTemplate) == "" {
		return errors.New("sitegen.defaultTemplate cannot be empty")
	}
	if c.Sitegen.MaxPromptLength <= 0 {
		return errors.New("sitegen.maxPromptLength must be positive")
	}
	if c.Publish.Enabled {
		switch c.Publish.Driver {
		case PublishDriverMemory:
			if c.Publish.MaxMemoryObjects <= 0 {
				return errors.New("publish.maxMemoryObjects must be positive for the memory driver")
			}
		case PublishDriverR2:
			if strings.TrimSpace(c.Publish.Endpoint) == "" {
				return errors.New("publish.endpoint cannot be empty for the r2 driver")
			}
			if c.Publish.AccessKey == "" || c.Publish.SecretKey == "" {
				return errors.New("publish.accessKey and publish.secretKey are required for the r2 driver")
			}
			if strings.TrimSpace(c.Publish.Bucket) == "" {
				return errors.New("publish.bucket cannot be empty for the r2 driver")
			}
		default:
			return fmt.Errorf("publish.driver %q is not supported", c.Publish.Driver)
		}
	}
	return nil
}
