package gateway

import (
	"strings"
	"sync"
)

// KeySet is the allow-set of API keys admitted by the edge layer. Replace
// swaps the whole set atomically so a key-file reload never serves a
// half-updated view.
type KeySet struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewKeySet builds the allow-set, dropping blanks and duplicates.
func NewKeySet(keys []string) *KeySet {
	set := &KeySet{}
	set.Replace(keys)
	return set
}

// Replace installs a new allow-set. A nil receiver is a no-op.
func (s *KeySet) Replace(keys []string) {
	if s == nil {
		return
	}
	indexed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		indexed[trimmed] = struct{}{}
	}
	s.mu.Lock()
	s.keys = indexed
	s.mu.Unlock()
}

// Contains reports whether the key is admitted. A nil set admits nothing.
func (s *KeySet) Contains(key string) bool {
	if s == nil {
		return false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of admitted keys.
func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
