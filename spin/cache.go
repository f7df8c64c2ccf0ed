package spin

import "sync"

// cacheKey identifies a memoized tensor by its kind and quantum numbers.
// All fields are doubled spins or small slot indices, so the key space is
// finite under the MaxTwoJ bound (no eviction needed).
type cacheKey struct {
	kind       uint8
	a, b, c, d Half
	e, f, g    Half
	n1, n2     int8
}

const (
	kindCG uint8 = iota
	kindCCG
	kindConj
	kindUU
)

// cacheEntry carries a once-guarded value so concurrent first access
// computes at most once per key.
type cacheEntry struct {
	once sync.Once
	val  any
}

// cache is a process-lifetime memo table for quantum-number-indexed
// tensors. Population is lazy; entries are immutable after first write.
type cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
}

var memo = &cache{entries: make(map[cacheKey]*cacheEntry)}

// do returns the cached value for key, computing it via fn exactly once
// even under concurrent first access.
func (c *cache) do(key cacheKey, fn func() any) any {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	c.mu.Unlock()
	e.once.Do(func() { e.val = fn() })
	return e.val
}
