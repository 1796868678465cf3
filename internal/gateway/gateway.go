package gateway

import (
	"crypto/md5" // #nosec G401 - ETag fingerprint, not a security boundary
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/l0p7/nickgate/internal/gateway/cache"
	"github.com/l0p7/nickgate/internal/lookup"
	"github.com/l0p7/nickgate/internal/metrics"
)

const (
	msgUnauthorized     = "Unauthorized access"
	msgMethodNotAllowed = "Method not allowed"

	// cacheControlValue is what downstream CDNs and proxies see. It is
	// deliberately independent of the origin's own freshness window: edge
	// caches may hold responses far longer than the in-process TTL.
	cacheControlValue = "public, max-age=30, s-maxage=43200, proxy-revalidate"

	corsMaxAge = "86400"
)

// DefaultTTL is the in-process cache freshness window.
const DefaultTTL = 5 * time.Minute

// Options configures the gateway edge layer.
type Options struct {
	Router      *lookup.Router
	Cache       cache.ResponseCache
	TTL         time.Duration
	Keys        *KeySet
	Metrics     *metrics.Recorder
	AllowOrigin string
}

// Gateway is the HTTP edge layer: CORS preflight, API-key admission, method
// allow-list, honeypot, response cache with conditional-GET support, and
// response header shaping, in that strict order.
type Gateway struct {
	logger      *slog.Logger
	router      *lookup.Router
	cache       cache.ResponseCache
	ttl         time.Duration
	keys        *KeySet
	metrics     *metrics.Recorder
	allowOrigin string
}

// New builds the gateway from its collaborators.
func New(logger *slog.Logger, opts Options) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	allowOrigin := strings.TrimSpace(opts.AllowOrigin)
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &Gateway{
		logger:      logger.With(slog.String("agent", "gateway")),
		router:      opts.Router,
		cache:       opts.Cache,
		ttl:         ttl,
		keys:        opts.Keys,
		metrics:     opts.Metrics,
		allowOrigin: allowOrigin,
	}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		g.writePreflight(w)
		return
	}

	query := r.URL.Query()

	if !g.authorized(r) {
		g.writeJSON(w, r, http.StatusUnauthorized, failureEnvelope(msgUnauthorized), nil)
		g.observe(query.Get("game"), "unauthorized", http.StatusUnauthorized, false, 0)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		headers := map[string]string{"Allow": "GET, HEAD"}
		g.writeJSON(w, r, http.StatusMethodNotAllowed, failureEnvelope(msgMethodNotAllowed), headers)
		g.observe(query.Get("game"), "method_not_allowed", http.StatusMethodNotAllowed, false, 0)
		return
	}

	// Bot form-fillers populate fields a human caller of this endpoint never
	// sends. They get a quiet success so the filter stays invisible.
	if query.Has("email") || query.Has("name") {
		g.writeJSON(w, r, http.StatusOK, map[string]any{"success": true}, nil)
		g.observe(query.Get("game"), "honeypot", http.StatusOK, false, 0)
		return
	}

	key := NormalizeCacheKey(r.URL.Path, query)

	lookupStart := time.Now()
	entry, hit, err := g.cache.Lookup(r.Context(), key)
	g.observeCacheLookup(query.Get("game"), hit, err, time.Since(lookupStart))
	if err != nil {
		g.logger.Error("cache lookup failed", slog.String("cache_key", key), slog.Any("error", err))
	}
	if hit {
		if match := strings.TrimSpace(r.Header.Get("If-None-Match")); match != "" && match == entry.ETag {
			g.writeConditionalHeaders(w, entry.ETag)
			w.WriteHeader(http.StatusNotModified)
			g.observe(query.Get("game"), "cache_hit", http.StatusNotModified, true, 0)
			return
		}
		g.writeCached(w, r, entry)
		g.observe(query.Get("game"), "cache_hit", entry.Status, true, 0)
		return
	}

	handlerStart := time.Now()
	status, payload := g.handleLookup(r.Context(), query)
	elapsed := time.Since(handlerStart)

	body, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("response marshal failed", slog.Any("error", err))
		g.writeJSON(w, r, http.StatusNotFound, failureEnvelope(msgNotFound), nil)
		return
	}

	sum := md5.Sum(body) // #nosec G401
	etag := hex.EncodeToString(sum[:])

	storedAt := time.Now().UTC()
	storeStart := time.Now()
	storeErr := g.cache.Store(r.Context(), key, cache.Entry{
		Status:    status,
		Body:      body,
		ETag:      etag,
		StoredAt:  storedAt,
		ExpiresAt: storedAt.Add(g.ttl),
	})
	g.observeCacheStore(query.Get("game"), storeErr, time.Since(storeStart))
	if storeErr != nil {
		g.logger.Error("cache store failed", slog.String("cache_key", key), slog.Any("error", storeErr))
	}

	g.writeBaseHeaders(w)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", cacheControlValue)
	w.Header().Set("X-Response-Time", fmt.Sprintf("%dms", elapsed.Milliseconds()))
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}

	outcome := "success"
	switch status {
	case http.StatusBadRequest:
		outcome = "bad_request"
	case http.StatusNotFound:
		outcome = "not_found"
	}
	g.observe(query.Get("game"), outcome, status, false, elapsed)
}

// authorized checks the API key. Headers win; the query parameter is only
// consulted when neither header is present at all.
func (g *Gateway) authorized(r *http.Request) bool {
	key := r.Header.Get("Api-Key")
	if key == "" {
		key = r.Header.Get("X-Api-Key")
	}
	if key == "" {
		if _, headerPresent := r.Header["Api-Key"]; !headerPresent {
			if _, headerPresent := r.Header["X-Api-Key"]; !headerPresent {
				key = r.URL.Query().Get("apiKey")
			}
		}
	}
	return g.keys.Contains(key)
}

func (g *Gateway) writePreflight(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", g.allowOrigin)
	h.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Api-Key, X-Api-Key, If-None-Match, Content-Type")
	h.Set("Access-Control-Max-Age", corsMaxAge)
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) writeBaseHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Access-Control-Allow-Origin", g.allowOrigin)
}

func (g *Gateway) writeConditionalHeaders(w http.ResponseWriter, etag string) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", g.allowOrigin)
	h.Set("ETag", etag)
	h.Set("Cache-Control", cacheControlValue)
}

func (g *Gateway) writeCached(w http.ResponseWriter, r *http.Request, entry cache.Entry) {
	g.writeBaseHeaders(w)
	w.Header().Set("ETag", entry.ETag)
	w.Header().Set("Cache-Control", cacheControlValue)
	w.WriteHeader(entry.Status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(entry.Body)
	}
}

func (g *Gateway) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload map[string]any, headers map[string]string) {
	g.writeBaseHeaders(w)
	for name, value := range headers {
		w.Header().Set(name, value)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("response marshal failed", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}

func (g *Gateway) observe(game, outcome string, status int, fromCache bool, duration time.Duration) {
	if g.metrics == nil {
		return
	}
	g.metrics.ObserveLookup(game, outcome, status, fromCache, duration)
}

func (g *Gateway) observeCacheLookup(game string, hit bool, err error, duration time.Duration) {
	if g.metrics == nil {
		return
	}
	outcome := metrics.CacheLookupMiss
	switch {
	case err != nil:
		outcome = metrics.CacheLookupError
	case hit:
		outcome = metrics.CacheLookupHit
	}
	g.metrics.ObserveCacheLookup(game, outcome, duration)
}

func (g *Gateway) observeCacheStore(game string, err error, duration time.Duration) {
	if g.metrics == nil {
		return
	}
	outcome := metrics.CacheStoreStored
	if err != nil {
		outcome = metrics.CacheStoreError
	}
	g.metrics.ObserveCacheStore(game, outcome, duration)
}
