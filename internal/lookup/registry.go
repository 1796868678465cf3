package lookup

import (
	"context"
	"fmt"
	"sort"
)

// Adapter is the per-game translation unit. Implementations are optimistic:
// they do not catch transport or parse errors, the router converts any
// returned error into a uniform not-found result.
type Adapter interface {
	// Code returns the public game identifier the adapter is registered under.
	Code() string
	// Title returns the display title echoed in successful responses.
	Title() string
	// Lookup resolves the account id (and optional server) to a display name.
	Lookup(ctx context.Context, req Request) (Result, error)
}

// Registry maps game codes to adapters. It is built once at startup and
// read-only thereafter.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry indexes the supplied adapters by code. Duplicate codes are a
// programming error and rejected so catalog mistakes surface at boot.
func NewRegistry(adapters []Adapter) (*Registry, error) {
	indexed := make(map[string]Adapter, len(adapters))
	for _, adapter := range adapters {
		code := adapter.Code()
		if code == "" {
			return nil, fmt.Errorf("lookup: adapter %q has empty code", adapter.Title())
		}
		if _, dup := indexed[code]; dup {
			return nil, fmt.Errorf("lookup: duplicate adapter code %q", code)
		}
		indexed[code] = adapter
	}
	return &Registry{adapters: indexed}, nil
}

// Get returns the adapter registered for the exact game code.
func (r *Registry) Get(code string) (Adapter, bool) {
	adapter, ok := r.adapters[code]
	return adapter, ok
}

// Codes lists the supported game codes in stable order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.adapters))
	for code := range r.adapters {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
