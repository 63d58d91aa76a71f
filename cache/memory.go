// cache/memory.go
package cache

import (
	"sync"
	"time"
)

// Memory is an in-memory cache with optional TTL. The zero TTL means
// entries never expire.
type Memory[V any] struct {
	mu     sync.RWMutex
	items  map[string]*entry[V]
	ttl    time.Duration
	closed bool
	stopCh chan struct{}
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
	noExpiry  bool
}

// Config configures a Memory cache.
type Config struct {
	// TTL is how long entries live. 0 means no expiry.
	TTL time.Duration

	// CleanupInterval is how often expired entries are removed.
	// Default: 1 minute when TTL is set; ignored when TTL is 0.
	CleanupInterval time.Duration

	// InitialCapacity is the initial map capacity. Default: 64.
	InitialCapacity int
}

// DefaultConfig returns sensible defaults: no expiry.
func DefaultConfig() Config {
	return Config{InitialCapacity: 64}
}

// NewMemory creates a cache with default configuration.
func NewMemory[V any]() *Memory[V] {
	return NewMemoryWithConfig[V](DefaultConfig())
}

// NewMemoryWithConfig creates a cache with custom configuration.
func NewMemoryWithConfig[V any](cfg Config) *Memory[V] {
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = 64
	}
	if cfg.TTL > 0 && cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}

	m := &Memory[V]{
		items:  make(map[string]*entry[V], cfg.InitialCapacity),
		ttl:    cfg.TTL,
		stopCh: make(chan struct{}),
	}

	if cfg.TTL > 0 {
		go m.cleanup(cfg.CleanupInterval)
	}

	return m
}

// Get retrieves a value by key.
func (m *Memory[V]) Get(key string) (V, error) {
	var zero V

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return zero, ErrClosed
	}
	it, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	if !it.noExpiry && time.Now().After(it.expiresAt) {
		return zero, ErrNotFound
	}
	return it.value, nil
}

// Set stores a value under key.
func (m *Memory[V]) Set(key string, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	e := &entry[V]{value: value, noExpiry: m.ttl == 0}
	if m.ttl > 0 {
		e.expiresAt = time.Now().Add(m.ttl)
	}
	m.items[key] = e
	return nil
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. Concurrent callers may compute the same value; the last write
// wins, which is acceptable for idempotent builders.
func (m *Memory[V]) GetOrCompute(key string, build func() (V, error)) (V, error) {
	if v, err := m.Get(key); err == nil {
		return v, nil
	} else if err == ErrClosed {
		var zero V
		return zero, err
	}

	v, err := build()
	if err != nil {
		return v, err
	}
	if err := m.Set(key, v); err != nil {
		return v, err
	}
	return v, nil
}

// Delete removes a key.
func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		delete(m.items, key)
	}
}

// Len returns the number of live entries.
func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	now := time.Now()
	for _, it := range m.items {
		if it.noExpiry || now.Before(it.expiresAt) {
			n++
		}
	}
	return n
}

// Close stops the cleanup goroutine and rejects further use.
func (m *Memory[V]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.stopCh)
	m.items = nil
}

func (m *Memory[V]) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for key, it := range m.items {
				if !it.noExpiry && now.After(it.expiresAt) {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
