// Package cache memoizes conversion results.
package cache

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store defines the interface for caching converted text.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Flush()
	Len() int
}

// Key builds the memo key for a conversion of input in the given mode.
func Key(mode, input string, ordinal bool) string {
	return "numwords:v1:" + mode + ":" + strconv.FormatBool(ordinal) + ":" + input
}

// Memory is an in-memory Store with per-entry expiry.
type Memory struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemory creates a Memory whose entries expire after ttl.
func NewMemory(ttl, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (m *Memory) Get(key string) (string, bool) {
	if val, found := m.cache.Get(key); found {
		s, ok := val.(string)
		return s, ok
	}
	return "", false
}

func (m *Memory) Set(key, value string) {
	m.cache.Set(key, value, m.ttl)
}

func (m *Memory) Flush() {
	m.cache.Flush()
}

func (m *Memory) Len() int {
	return m.cache.ItemCount()
}

// Nop is a Store that never holds anything.
type Nop struct{}

func (Nop) Get(string) (string, bool) { return "", false }
func (Nop) Set(string, string)        {}
func (Nop) Flush()                    {}
func (Nop) Len() int                  { return 0 }

// Memoize returns the cached value for key, or calls fn and caches its
// result when fn succeeds. Errors are never cached.
func Memoize(s Store, key string, fn func() (string, error)) (string, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		return "", err
	}
	s.Set(key, v)
	return v, nil
}
