package hintcache

import "sync"

// Memo is a lock-protected insert-if-absent table for memoizing pure
// functions of a hint's representation.
//
// compute runs outside the lock, so a computation may recurse into the same
// Memo (the deep-ignorability walk does) without deadlocking, and two
// goroutines may race to compute the same key. The first inserted result
// wins; since memoized functions are pure, racing computations agree.
type Memo[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

// NewMemo constructs an empty memo table.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{m: make(map[string]V)}
}

// GetOrCompute returns the memoized value for key, computing and recording
// it on first sight.
func (m *Memo[V]) GetOrCompute(key string, compute func() V) V {
	m.mu.RLock()
	v, ok := m.m[key]
	m.mu.RUnlock()
	if ok {
		return v
	}

	v = compute()

	m.mu.Lock()
	defer m.mu.Unlock()
	if prior, ok := m.m[key]; ok {
		return prior
	}
	m.m[key] = v
	return v
}

// Len returns the number of memoized entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}
