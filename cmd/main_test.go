package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/l0p7/nickgate/internal/config"
	"github.com/l0p7/nickgate/internal/gateway/cache"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBuildResponseCache(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func(t *testing.T) config.CacheConfig
		verify func(t *testing.T, rc cache.ResponseCache)
	}{
		{
			name: "defaults to memory",
			cfg: func(t *testing.T) config.CacheConfig {
				return config.CacheConfig{TTLSeconds: 1}
			},
			verify: func(t *testing.T, rc cache.ResponseCache) {
				require.NotNil(t, rc, "expected cache to be constructed")
			},
		},
		{
			name: "unsupported backend falls back to memory",
			cfg: func(t *testing.T) config.CacheConfig {
				return config.CacheConfig{Backend: "memcached", TTLSeconds: 1}
			},
			verify: func(t *testing.T, rc cache.ResponseCache) {
				require.NotNil(t, rc, "expected fallback cache")
			},
		},
		{
			name: "constructs redis cache",
			cfg: func(t *testing.T) config.CacheConfig {
				server, err := miniredis.Run()
				if err != nil {
					if strings.Contains(err.Error(), "operation not permitted") {
						t.Skip("miniredis unavailable in sandbox")
					}
					require.NoError(t, err)
				}
				t.Cleanup(server.Close)
				return config.CacheConfig{
					Backend:    "redis",
					TTLSeconds: 1,
					Redis: config.RedisCacheConfig{
						Address: server.Addr(),
					},
				}
			},
			verify: func(t *testing.T, rc cache.ResponseCache) {
				ctx := context.Background()
				entry := cacheEntry()
				require.NoError(t, rc.Store(ctx, "redis:test", entry))
				_, ok, err := rc.Lookup(ctx, "redis:test")
				require.NoError(t, err)
				require.True(t, ok, "expected lookup to succeed")
			},
		},
		{
			name: "unreachable redis falls back to memory",
			cfg: func(t *testing.T) config.CacheConfig {
				return config.CacheConfig{
					Backend:    "redis",
					TTLSeconds: 1,
					Redis: config.RedisCacheConfig{
						Address: "127.0.0.1:1",
					},
				}
			},
			verify: func(t *testing.T, rc cache.ResponseCache) {
				ctx := context.Background()
				require.NoError(t, rc.Store(ctx, "fallback:test", cacheEntry()))
				_, ok, err := rc.Lookup(ctx, "fallback:test")
				require.NoError(t, err)
				require.True(t, ok, "expected memory fallback to serve lookups")
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg(t)
			rc := buildResponseCache(newTestLogger(), cfg)
			t.Cleanup(func() {
				require.NoError(t, rc.Close(context.Background()))
			})

			tc.verify(t, rc)
		})
	}
}

func cacheEntry() cache.Entry {
	now := time.Now().UTC()
	return cache.Entry{
		Status:    200,
		Body:      []byte(`{"success":true}`),
		ETag:      "test",
		StoredAt:  now,
		ExpiresAt: now.Add(100 * time.Millisecond),
	}
}
