// Package numeral renders Church numerals and memoizes them.
package numeral

import (
	"strings"
	"sync"
)

// Render returns the Church encoding of n: λf.λx. followed by n nested
// applications of f around x.
func Render(n uint64) string {
	var sb strings.Builder
	sb.Grow(len("λf.λx.x") + int(n)*5)

	sb.WriteString("λf.λx.")
	if n == 0 {
		sb.WriteString("x")
		return sb.String()
	}

	sb.WriteString("f ")
	for i := uint64(1); i < n; i++ {
		sb.WriteString("(f ")
	}
	sb.WriteString("x")
	for i := uint64(1); i < n; i++ {
		sb.WriteString(")")
	}
	return sb.String()
}

// Stats describes the state of a Cache.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Cache maps non-negative integers to their Church numeral text. It's safe
// for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]string
	hits    uint64
	misses  uint64
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[uint64]string),
	}
}

// Church returns the Church numeral for n, rendering and storing it on the
// first request.
func (c *Cache) Church(n uint64) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.entries[n]; ok {
		c.hits++
		return s
	}

	c.misses++
	s := Render(n)
	c.entries[n] = s
	return s
}

// Lookup returns the cached numeral for n, if any.
func (c *Cache) Lookup(n uint64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.entries[n]
	return s, ok
}

// Len returns the number of cached numerals
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Reset empties the cache and its counters
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64]string)
	c.hits, c.misses = 0, 0
}

// Stats returns the number of entries, hits and misses of the cache
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
