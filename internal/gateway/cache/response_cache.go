package cache

import (
	"context"
	"time"
)

// Entry is one cached gateway response: the serialized JSON body, the status
// it was served with, and the ETag computed from the body.
type Entry struct {
	Status    int       `json:"status"`
	Body      []byte    `json:"body"`
	ETag      string    `json:"etag"`
	StoredAt  time.Time `json:"storedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ResponseCache is the process-wide store the edge layer keys by normalized
// query string. Implementations must be safe for concurrent use; two
// concurrent misses for the same key may both store, last write wins.
type ResponseCache interface {
	Lookup(ctx context.Context, key string) (Entry, bool, error)
	Store(ctx context.Context, key string, entry Entry) error
	Size(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}
