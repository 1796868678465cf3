package lookup

import (
	"context"
	"log/slog"
	"strings"
)

// Router selects the adapter for an inbound lookup and normalizes every
// failure mode. It is stateless per call: no retries, no backoff, one
// upstream attempt per inbound request.
type Router struct {
	registry *Registry
	logger   *slog.Logger
}

// NewRouter wires the registry into a router. A nil logger falls back to the
// process default.
func NewRouter(registry *Registry, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{registry: registry, logger: logger.With(slog.String("agent", "lookup_router"))}
}

// Resolve validates the request, dispatches to the matching adapter, and
// collapses any adapter error into a not-found result. Upstream errors must
// never leak internal detail to the client, so the error itself is only
// logged.
func (rt *Router) Resolve(ctx context.Context, req Request) Result {
	if strings.TrimSpace(req.AccountID) == "" {
		return BadRequest()
	}

	adapter, ok := rt.registry.Get(req.Game)
	if !ok {
		return BadRequest()
	}

	// Account ids are passed through verbatim; numeric-only providers reject
	// garbage ids themselves and that rejection collapses to not-found below.
	result, err := adapter.Lookup(ctx, req)
	if err != nil {
		rt.logger.Warn("adapter lookup failed",
			slog.String("game", req.Game),
			slog.Any("error", err))
		return NotFound()
	}
	return result
}
