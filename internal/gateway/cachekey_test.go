package gateway

import (
	"net/url"
	"testing"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	query, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query %q: %v", raw, err)
	}
	return query
}

func TestNormalizeCacheKeyIgnoresCacheBusters(t *testing.T) {
	base := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=free-fire&userId=1"))
	busted := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=free-fire&userId=1&t=1725000000&timestamp=99&nocache=1"))
	if base != busted {
		t.Fatalf("expected cache busters ignored:\n%q\n%q", base, busted)
	}
}

func TestNormalizeCacheKeyIgnoresAPIKey(t *testing.T) {
	withKey := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=free-fire&userId=1&apiKey=secret"))
	withoutKey := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=free-fire&userId=1"))
	if withKey != withoutKey {
		t.Fatalf("expected apiKey excluded from the key:\n%q\n%q", withKey, withoutKey)
	}
}

func TestNormalizeCacheKeyStableOrdering(t *testing.T) {
	a := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "userId=1&game=free-fire&decode=true"))
	b := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "decode=true&game=free-fire&userId=1"))
	if a != b {
		t.Fatalf("expected parameter order not to fragment the cache:\n%q\n%q", a, b)
	}
}

func TestNormalizeCacheKeyDistinguishesRequests(t *testing.T) {
	a := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=free-fire&userId=1"))
	b := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=free-fire&userId=2"))
	if a == b {
		t.Fatalf("expected distinct ids to produce distinct keys, both %q", a)
	}
	c := NormalizeCacheKey("/api/v1/nickname", mustQuery(t, "game=mobile-legend&userId=1&serverId=2001"))
	if a == c {
		t.Fatalf("expected distinct games to produce distinct keys, both %q", a)
	}
}
