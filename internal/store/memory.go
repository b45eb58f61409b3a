// internal/store/memory.go
//
// In-memory cache of solved grids for the HTTP API.
//
// Characteristics:
//   - Keyed by (dictionary fingerprint, grid letters), so a reloaded dictionary never
//     serves stale results.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Bounded: the oldest entry is evicted once the limit is reached.
//   - Process-local; nothing is written to disk.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordhunt/internal/hunt"
)

// ErrNotFound is returned by Get on a cache miss.
var ErrNotFound = errors.New("not found")

// DefaultLimit is used when NewMemoryStore is given a non-positive limit.
const DefaultLimit = 1024

// Store defines the solve cache interface.
type Store interface {
	// Save records the result of solving letters against a dictionary.
	Save(ctx context.Context, fingerprint, letters string, found hunt.Found) error

	// Get returns a cached result or ErrNotFound.
	Get(ctx context.Context, fingerprint, letters string) (hunt.Found, error)

	// Len reports the number of cached entries.
	Len() int
}

type key struct {
	fingerprint string
	letters     string
}

// memory is a map-based Store with FIFO eviction.
type memory struct {
	mu      sync.RWMutex
	limit   int
	entries map[key]hunt.Found
	order   []key // insertion order, oldest first
}

// NewMemoryStore constructs an in-memory Store holding at most limit entries.
func NewMemoryStore(limit int) Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &memory{limit: limit, entries: make(map[key]hunt.Found)}
}

// Save adds or replaces an entry, evicting the oldest when full.
func (m *memory) Save(ctx context.Context, fingerprint, letters string, found hunt.Found) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key{fingerprint, letters}
	if _, ok := m.entries[k]; !ok {
		if len(m.order) >= m.limit {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, k)
	}
	m.entries[k] = found.Sorted()
	return nil
}

// Get returns a copy of the cached result.
func (m *memory) Get(ctx context.Context, fingerprint, letters string) (hunt.Found, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.entries[key{fingerprint, letters}]; ok {
		return f.Sorted(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
