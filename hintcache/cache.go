// Package hintcache provides the process-lifetime identity cache and the
// memo tables backing the memoized hint predicates.
//
// Entries are never evicted. The host runtime retains strong references to
// every annotation of every imported callable for the life of the process,
// so a bounded or evicting structure would save no memory and only add
// overhead.
package hintcache

import (
	"sync"

	"github.com/harens/beartype/sigutil"
)

// Cache maps a hint's canonical signature to the single shared instance of
// that hint. At most one canonical instance per signature exists at any
// time; GetOrInsert is the only mutation entry point.
//
// Signatures are content-addressed internally (sigutil.SigCID), so the map
// key is a fixed-width digest rather than the unbounded signature text.
type Cache struct {
	mu sync.Mutex
	m  map[string]any
}

// New constructs an empty identity cache.
func New() *Cache {
	return &Cache{m: make(map[string]any)}
}

// GetOrInsert returns the canonical instance for sig, calling factory to
// mint it on first sight. The check-then-insert sequence runs under the
// cache mutex, so concurrent callers with equal signatures observe exactly
// one canonical instance.
//
// factory runs while the lock is held and must not call back into the
// cache or trigger host-runtime re-entrant work.
func (c *Cache) GetOrInsert(sig string, factory func() any) any {
	key := sigutil.SigCID(sig)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[key]; ok {
		return v
	}
	v := factory()
	c.m[key] = v
	return v
}

// Lookup returns the canonical instance for sig, if one exists.
func (c *Cache) Lookup(sig string) (any, bool) {
	key := sigutil.SigCID(sig)
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

// Len returns the number of cached canonical instances.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
