package engine

import (
	. "github.com/svenoorjosan/scholar/common"
)

// Cache memoizes search results per exact (board, side, depth). It is a
// per-depth memo, not a general transposition table: an entry written at
// one requested depth is never consulted for another. Entries are
// overwritten unconditionally and never evicted; the cache grows for the
// life of the session and is cleared only on a level change.
//
// The cache is unsynchronized. It belongs to one Engine and must not be
// shared across concurrent searches.
type Cache struct {
	items map[cacheKey]cacheEntry
}

type cacheKey struct {
	board     Board
	whiteMove bool
	depth     int
}

type cacheEntry struct {
	depth int
	score int
}

func NewCache() *Cache {
	return &Cache{items: make(map[cacheKey]cacheEntry)}
}

func makeCacheKey(p *Position, depth int) cacheKey {
	return cacheKey{board: p.Board, whiteMove: p.WhiteMove, depth: depth}
}

func (c *Cache) Read(key cacheKey, depth int) (score int, ok bool) {
	var entry, found = c.items[key]
	if found && entry.depth >= depth {
		return entry.score, true
	}
	return 0, false
}

func (c *Cache) Update(key cacheKey, depth, score int) {
	c.items[key] = cacheEntry{depth: depth, score: score}
}

func (c *Cache) Len() int {
	return len(c.items)
}

func (c *Cache) Clear() {
	c.items = make(map[cacheKey]cacheEntry)
}
