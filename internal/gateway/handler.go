package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/l0p7/nickgate/internal/lookup"
)

const (
	msgBadRequest = "Invalid game or user ID"
	msgNotFound   = "Nickname not found"
)

// handleLookup orchestrates one inbound request past the edge checks: it
// extracts the lookup parameters, resolves them through the router, cleans
// the display name, and maps domain failures onto HTTP status codes. It has
// no side effects; caching belongs to the caller.
func (g *Gateway) handleLookup(ctx context.Context, query url.Values) (int, map[string]any) {
	req := lookup.Request{
		Game:      query.Get("game"),
		AccountID: query.Get("userId"),
		Server:    query.Get("serverId"),
	}

	result := g.router.Resolve(ctx, req)
	if !result.Success {
		switch result.Reason {
		case lookup.ReasonBadRequest:
			return http.StatusBadRequest, failureEnvelope(msgBadRequest)
		default:
			return http.StatusNotFound, failureEnvelope(msgNotFound)
		}
	}

	payload := map[string]any{
		"success": true,
		"game":    result.Game,
		"id":      echoIdentifier(result.AccountID),
		"name":    SanitizeName(result.DisplayName, DecodeEnabled(query)),
	}
	if result.Server != "" {
		payload["server"] = echoIdentifier(result.Server)
	}
	if result.Region != "" {
		payload["region"] = result.Region
	}
	stripSensitive(payload)
	return http.StatusOK, payload
}

func failureEnvelope(message string) map[string]any {
	payload := map[string]any{
		"success": false,
		"message": message,
	}
	stripSensitive(payload)
	return payload
}
