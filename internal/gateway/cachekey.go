package gateway

import (
	"net/url"
	"sort"
	"strings"
)

// cacheBusterParams are client-side cache-busting parameters that must not
// fragment the cache. The API key is excluded too: it is a credential, not
// part of the resource identity.
var cacheBusterParams = map[string]struct{}{
	"t":         {},
	"timestamp": {},
	"nocache":   {},
	"apiKey":    {},
}

// NormalizeCacheKey derives the cache key from the request path plus every
// query parameter except the cache busters, in sorted order so parameter
// ordering never fragments the cache either.
func NormalizeCacheKey(path string, query url.Values) string {
	names := make([]string, 0, len(query))
	for name := range query {
		if _, skip := cacheBusterParams[name]; skip {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(path)
	for i, name := range names {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		values := append([]string(nil), query[name]...)
		sort.Strings(values)
		for j, value := range values {
			if j > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}
