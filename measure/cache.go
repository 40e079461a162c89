package measure

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/bind/layout"
)

const (
	// shardCount must be a power of two.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCacheCapacity is the per-shard capacity used by NewCached for
	// non-positive capacities.
	DefaultCacheCapacity = 256
)

type cacheKey struct {
	text       string
	font       uint16
	size       uint16
	lineHeight uint16
}

func (k *cacheKey) hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.text))
	_, _ = h.Write([]byte{byte(k.font), byte(k.font >> 8), byte(k.size), byte(k.size >> 8)})
	return h.Sum64()
}

type cacheEntry struct {
	key  cacheKey
	dims layout.Dimensions
}

type cacheShard struct {
	mu      sync.Mutex
	entries map[cacheKey]*list.Element
	lru     *list.List // front is most recently used
}

// CacheStats reports the effectiveness of a Cached measurer.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cached memoizes another measurer in a sharded LRU cache. Text is
// measured again on every pass, usually with the same strings, so shaping
// measurers benefit most.
//
// Cached is safe for concurrent use when the wrapped measurer is.
type Cached struct {
	m        layout.Measurer
	capacity int
	shards   [shardCount]cacheShard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

var _ layout.Measurer = (*Cached)(nil)

// NewCached wraps m with a cache holding up to capacity entries per shard.
func NewCached(m layout.Measurer, capacity int) *Cached {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cached{m: m, capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[cacheKey]*list.Element)
		c.shards[i].lru = list.New()
	}
	return c
}

// Unwrap returns the wrapped measurer.
func (c *Cached) Unwrap() layout.Measurer {
	return c.m
}

// Measure implements layout.Measurer. The wrapped measurer is called with
// the shard lock held, so concurrent misses on one key measure once.
func (c *Cached) Measure(text string, cfg *layout.TextConfig) layout.Dimensions {
	key := cacheKey{text: text}
	if cfg != nil {
		key.font, key.size, key.lineHeight = cfg.FontID, cfg.FontSize, cfg.LineHeight
	}
	shard := &c.shards[key.hash()&shardMask]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if el, ok := shard.entries[key]; ok {
		shard.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*cacheEntry).dims
	}
	c.misses.Add(1)

	dims := c.m.Measure(text, cfg)
	for shard.lru.Len() >= c.capacity {
		oldest := shard.lru.Back()
		shard.lru.Remove(oldest)
		delete(shard.entries, oldest.Value.(*cacheEntry).key)
		c.evictions.Add(1)
	}
	shard.entries[key] = shard.lru.PushFront(&cacheEntry{key: key, dims: dims})
	return dims
}

// Clear drops every cached measurement. Call it after fonts change.
func (c *Cached) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		clear(s.entries)
		s.lru.Init()
		s.mu.Unlock()
	}
}

// Stats returns the current counters.
func (c *Cached) Stats() CacheStats {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return CacheStats{
		Len:       n,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
