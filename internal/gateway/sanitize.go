package gateway

import (
	"net/url"
	"strconv"
	"strings"
)

// DecodeEnabled evaluates the tri-state decode query flag. Only the literal
// value "false" disables decoding; absent, "true", and every other value
// enable it.
func DecodeEnabled(query url.Values) bool {
	return query.Get("decode") != "false"
}

// SanitizeName post-processes a resolved display name. Upstream names can
// arrive partially percent-encoded with "+" standing for space, so literal
// "+" characters become "%20" first, and only then is the result
// percent-decoded. The order matters and must not be swapped.
func SanitizeName(name string, decode bool) string {
	substituted := strings.ReplaceAll(name, "+", "%20")
	if !decode {
		return substituted
	}
	decoded, err := url.QueryUnescape(substituted)
	if err != nil {
		return substituted
	}
	return decoded
}

// sensitiveFields must never appear in a response payload, whatever the
// upstream or an adapter put in the result.
var sensitiveFields = []string{"apiKey", "API_KEY", "api_key", "token"}

func stripSensitive(payload map[string]any) {
	for _, field := range sensitiveFields {
		delete(payload, field)
	}
}

// echoIdentifier returns the numeric form of a raw id when it parses as one,
// otherwise the raw string, so numeric ids round-trip as JSON numbers.
func echoIdentifier(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}
