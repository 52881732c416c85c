// Package content caches decoded piece content shared between renders.
//
// The collage command renders many layouts concurrently from the same
// handful of images and placeholder tiles. Cache keeps one decoded copy of
// each, keyed by a string, so every goroutine draws from the same pixels.
// Cached images must be treated as read-only.
package content

import (
	"container/list"
	"hash/fnv"
	"image"
	"sync"
	"sync/atomic"
)

// shardCount must be a power of two.
const shardCount = 8

// DefaultCapacity is the per-shard capacity used when none is given.
const DefaultCapacity = 16

// Stats holds cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a concurrent, sharded LRU of decoded images.
type Cache struct {
	shards   [shardCount]*shard
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
	loading map[string]*call
}

type entry struct {
	key string
	img image.Image
}

// call is an in-flight load other callers wait on.
type call struct {
	done chan struct{}
	img  image.Image
	err  error
}

// NewCache creates a cache holding up to capacity images per shard.
// A capacity <= 0 selects DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[string]*list.Element),
			lru:     list.New(),
			loading: make(map[string]*call),
		}
	}
	return c
}

func (c *Cache) shard(key string) *shard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return c.shards[h.Sum64()&(shardCount-1)]
}

// Get returns the cached image for key.
func (c *Cache) Get(key string) (image.Image, bool) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[key]; ok {
		s.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry).img, true
	}
	c.misses.Add(1)
	return nil, false
}

// GetOrLoad returns the cached image for key, calling load on a miss.
// Concurrent callers for the same key share a single load. Failed loads
// are not cached.
func (c *Cache) GetOrLoad(key string, load func() (image.Image, error)) (image.Image, error) {
	s := c.shard(key)

	s.mu.Lock()
	if el, ok := s.entries[key]; ok {
		s.lru.MoveToFront(el)
		s.mu.Unlock()
		c.hits.Add(1)
		return el.Value.(*entry).img, nil
	}
	if cl, ok := s.loading[key]; ok {
		s.mu.Unlock()
		<-cl.done
		c.hits.Add(1)
		return cl.img, cl.err
	}
	cl := &call{done: make(chan struct{})}
	s.loading[key] = cl
	s.mu.Unlock()
	c.misses.Add(1)

	cl.img, cl.err = load()

	s.mu.Lock()
	delete(s.loading, key)
	if cl.err == nil {
		c.insert(s, key, cl.img)
	}
	s.mu.Unlock()
	close(cl.done)
	return cl.img, cl.err
}

// insert adds key to s, evicting the least recently used entries over
// capacity. s.mu must be held.
func (c *Cache) insert(s *shard, key string, img image.Image) {
	if el, ok := s.entries[key]; ok {
		el.Value.(*entry).img = img
		s.lru.MoveToFront(el)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest := s.lru.Back()
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry).key)
		c.evictions.Add(1)
	}
	s.entries[key] = s.lru.PushFront(&entry{key: key, img: img})
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
