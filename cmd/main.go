package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/l0p7/nickgate/internal/config"
	"github.com/l0p7/nickgate/internal/gateway"
	"github.com/l0p7/nickgate/internal/gateway/cache"
	"github.com/l0p7/nickgate/internal/logging"
	"github.com/l0p7/nickgate/internal/lookup"
	"github.com/l0p7/nickgate/internal/lookup/provider"
	"github.com/l0p7/nickgate/internal/metrics"
	"github.com/l0p7/nickgate/internal/server"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	var (
		configFile = flag.String("config", "", "path to server configuration file")
		envPrefix  = flag.String("env-prefix", "NICKGATE", "environment variable prefix")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := config.NewLoader(*envPrefix, *configFile)
	cfg, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Server.Logging)
	if err != nil {
		log.Fatalf("failed to configure logger: %v", err)
	}

	cacheLogger := logger.With(slog.String("agent", "cache_factory"))
	responseCache := buildResponseCache(cacheLogger, cfg.Server.Cache)
	cacheTTL := time.Duration(cfg.Server.Cache.TTLSeconds) * time.Second
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := responseCache.Close(shutdownCtx); err != nil {
			logger.Error("cache shutdown failed", slog.Any("error", err))
		}
	}()

	keys, err := config.LoadKeys(cfg.Server.Auth)
	if err != nil {
		logger.Error("unable to load api keys", slog.Any("error", err))
		os.Exit(1)
	}
	keySet := gateway.NewKeySet(keys)
	logger.Info("api key allow-set loaded", slog.Int("keys", keySet.Len()))

	if cfg.Server.Auth.KeysFile != "" {
		watcher, err := config.WatchKeys(ctx, cfg.Server.Auth, func(updated []string) {
			keySet.Replace(updated)
			logger.Info("api key allow-set reloaded", slog.Int("keys", keySet.Len()))
		}, func(err error) {
			if err != nil {
				logger.Error("keys watcher error", slog.Any("error", err))
			}
		})
		if err != nil {
			logger.Error("keys watcher setup failed", slog.Any("error", err))
		} else {
			defer watcher.Stop()
		}
	}

	upstreamClient := &http.Client{Timeout: time.Duration(cfg.Server.Upstream.TimeoutSeconds) * time.Second}
	adapters := provider.Adapters(provider.Clients{
		Codashop: provider.NewCodashopClient(cfg.Server.Upstream.CodashopURL, upstreamClient),
		Topup:    provider.NewTopupClient(cfg.Server.Upstream.TopupURL, upstreamClient),
	})
	registry, err := lookup.NewRegistry(adapters)
	if err != nil {
		logger.Error("unable to build adapter registry", slog.Any("error", err))
		os.Exit(1)
	}
	router := lookup.NewRouter(registry, logger)

	promRegistry := prometheus.NewRegistry()
	metricsRecorder := metrics.NewRecorder(promRegistry)

	gw := gateway.New(logger, gateway.Options{
		Router:      router,
		Cache:       responseCache,
		TTL:         cacheTTL,
		Keys:        keySet,
		Metrics:     metricsRecorder,
		AllowOrigin: cfg.Server.HTTP.AllowOrigin,
	})

	mux := server.NewMux(gw, metricsRecorder.Handler())

	srv, err := server.New(cfg, logger, mux)
	if err != nil {
		logger.Error("unable to construct server", slog.Any("error", err))
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server terminated unexpectedly", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}

func buildResponseCache(logger *slog.Logger, cfg config.CacheConfig) cache.ResponseCache {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	backend := strings.TrimSpace(strings.ToLower(cfg.Backend))
	switch backend {
	case "", "memory":
		if logger != nil {
			logger.Info("using memory response cache", slog.Duration("ttl", ttl))
		}
		return cache.NewMemory(ttl)
	case "redis":
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Address:  cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS: cache.RedisTLSConfig{
				Enabled: cfg.Redis.TLS.Enabled,
				CAFile:  cfg.Redis.TLS.CAFile,
			},
		})
		if err != nil {
			if logger != nil {
				logger.Error("redis cache initialization failed", slog.Any("error", err))
				logger.Info("falling back to memory cache")
			}
			return cache.NewMemory(ttl)
		}
		if logger != nil {
			logger.Info("using redis response cache", slog.String("address", cfg.Redis.Address))
		}
		return redisCache
	default:
		if logger != nil {
			logger.Warn("unsupported cache backend, defaulting to memory", slog.String("backend", cfg.Backend))
		}
		return cache.NewMemory(ttl)
	}
}
