package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds every server-level option for the nickname gateway.
type Config struct {
	Server ServerConfig `koanf:"server"`
}

// ServerConfig collects the bootstrap knobs owned by the lifecycle agent.
type ServerConfig struct {
	Listen   ListenConfig   `koanf:"listen"`
	Logging  LoggingConfig  `koanf:"logging"`
	Cache    CacheConfig    `koanf:"cache"`
	Auth     AuthConfig     `koanf:"auth"`
	Upstream UpstreamConfig `koanf:"upstream"`
	HTTP     HTTPConfig     `koanf:"http"`
}

// ListenConfig instructs the HTTP listener about bind address and port.
type ListenConfig struct {
	Address string `koanf:"address"`
	Port    int    `koanf:"port"`
}

// LoggingConfig expresses log level and format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CacheConfig selects the response cache backend and freshness window.
type CacheConfig struct {
	Backend    string           `koanf:"backend"`
	TTLSeconds int              `koanf:"ttlSeconds"`
	Redis      RedisCacheConfig `koanf:"redis"`
}

type RedisCacheConfig struct {
	Address  string              `koanf:"address"`
	Username string              `koanf:"username"`
	Password string              `koanf:"password"`
	DB       int                 `koanf:"db"`
	TLS      RedisTLSCacheConfig `koanf:"tls"`
}

type RedisTLSCacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	CAFile  string `koanf:"caFile"`
}

// AuthConfig supplies the API-key allow-set: inline keys, a keys file (one
// key per line, '#' comments), or both.
type AuthConfig struct {
	Keys     []string `koanf:"keys"`
	KeysFile string   `koanf:"keysFile"`
}

// UpstreamConfig points the adapters at their providers. Overridable so
// tests can stub the upstreams and regional deployments can pin mirrors.
type UpstreamConfig struct {
	CodashopURL    string `koanf:"codashopUrl"`
	TopupURL       string `koanf:"topupUrl"`
	TimeoutSeconds int    `koanf:"timeoutSeconds"`
}

// HTTPConfig shapes response headers.
type HTTPConfig struct {
	AllowOrigin string `koanf:"allowOrigin"`
}

// Validate enforces invariants that keep the runtime predictable before
// serving traffic.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil")
	}
	if c.Server.Listen.Port <= 0 || c.Server.Listen.Port > 65535 {
		return fmt.Errorf("config: listen.port invalid: %d", c.Server.Listen.Port)
	}
	if c.Server.Cache.TTLSeconds < 0 {
		return fmt.Errorf("config: server.cache.ttlSeconds invalid: %d", c.Server.Cache.TTLSeconds)
	}
	backend := strings.TrimSpace(strings.ToLower(c.Server.Cache.Backend))
	switch backend {
	case "", "memory":
	case "redis":
		if strings.TrimSpace(c.Server.Cache.Redis.Address) == "" {
			return errors.New("config: server.cache.redis.address required for redis backend")
		}
	default:
		return fmt.Errorf("config: server.cache.backend unsupported: %s", c.Server.Cache.Backend)
	}
	if len(c.Server.Auth.Keys) == 0 && strings.TrimSpace(c.Server.Auth.KeysFile) == "" {
		return errors.New("config: server.auth requires keys or keysFile")
	}
	if c.Server.Upstream.TimeoutSeconds < 0 {
		return fmt.Errorf("config: server.upstream.timeoutSeconds invalid: %d", c.Server.Upstream.TimeoutSeconds)
	}
	if strings.TrimSpace(c.Server.Upstream.CodashopURL) == "" {
		return errors.New("config: server.upstream.codashopUrl required")
	}
	if strings.TrimSpace(c.Server.Upstream.TopupURL) == "" {
		return errors.New("config: server.upstream.topupUrl required")
	}
	return nil
}

// DefaultConfig returns the baseline values aligned with production defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Listen: ListenConfig{
				Address: "0.0.0.0",
				Port:    8080,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "json",
			},
			Cache: CacheConfig{
				Backend:    "memory",
				TTLSeconds: 300,
			},
			Upstream: UpstreamConfig{
				CodashopURL:    "https://order.codashop.com",
				TopupURL:       "https://www.bangjeff.com",
				TimeoutSeconds: 10,
			},
			HTTP: HTTPConfig{
				AllowOrigin: "*",
			},
		},
	}
}
