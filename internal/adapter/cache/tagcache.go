package cache

import (
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ResponseCache = (*TagCache)(nil)

type entry struct {
	value []byte
	tags  []string
}

// TagCache is the process-wide association between cache tags and
// cached response payloads. Lookups take a shared lock; Invalidate is
// a synchronization point: once it returns, no Get observes an entry
// keyed under an evicted tag.
type TagCache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	keysByTag map[string]map[string]struct{}
}

func New() *TagCache {
	return &TagCache{
		entries:   make(map[string]entry),
		keysByTag: make(map[string]map[string]struct{}),
	}
}

func (c *TagCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key and registers the key with every tag.
// An entry without tags would be unevictable, so it is not stored.
func (c *TagCache) Set(key string, value []byte, tags []string) {
	if len(tags) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, tags: tags}
	for _, tag := range tags {
		keys, ok := c.keysByTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.keysByTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate evicts every entry registered under any of the given
// tags. Entries keyed only under other tags are untouched.
func (c *TagCache) Invalidate(tags ...string) {
	const op = "TagCache.Invalidate"
	log := slog.With("op", op)

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for _, tag := range tags {
		for key := range c.keysByTag[tag] {
			e, ok := c.entries[key]
			if !ok {
				continue
			}
			delete(c.entries, key)
			evicted++
			for _, other := range e.tags {
				if other == tag {
					continue
				}
				delete(c.keysByTag[other], key)
			}
		}
		delete(c.keysByTag, tag)
	}

	log.Debug("evicted cache entries", "tags", tags, "entries", evicted)
}

var _ port.ResponseCache = Noop{}

// Noop disables response caching: every lookup misses. Useful in tests
// and in deployments fronted by an external cache.
type Noop struct{}

func (Noop) Get(string) ([]byte, bool)    { return nil, false }
func (Noop) Set(string, []byte, []string) {}
func (Noop) Invalidate(...string)         {}
