package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tailored-agentic-units/spillover/observability"
)

// Cache is a two-tier key-value store: a capacity-bounded in-memory
// recency table plus a file-per-entry spillover store. Len() is always
// the sum of both tiers and their key sets are disjoint.
//
// Constructed by New. Not safe for concurrent use; see the package
// documentation.
type Cache[K comparable, V any] struct {
	capacity  int
	hot       *recencyTable[K, V]
	spill     *spillStore[K, V]
	onPromote func(K, V)
	observer  observability.Observer
	stats     Stats
}

// New creates a Cache from cfg.
func New[K comparable, V any](cfg Config[K, V]) *Cache[K, V] {
	codec := cfg.Codec
	if codec == nil {
		codec = GobCodec[V]{}
	}
	return &Cache[K, V]{
		capacity:  cfg.Capacity,
		hot:       newRecencyTable[K, V](),
		spill:     newSpillStore[K](cfg.ScratchDir, codec),
		onPromote: cfg.OnPromote,
		observer:  cfg.Observer,
	}
}

// Len returns the number of entries across both tiers.
func (c *Cache[K, V]) Len() int {
	return c.hot.len() + c.spill.len()
}

// Empty reports whether the cache holds no entries in either tier.
func (c *Cache[K, V]) Empty() bool {
	return c.Len() == 0
}

// Contains reports whether key is present in either tier. It does not
// touch recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.hot.contains(key) || c.spill.has(key)
}

// Get returns the value for key. A hot entry is returned directly and
// marked most recently used; a cold entry is promoted back into memory
// first, which may spill a different entry. ok is false when the key is
// unknown to both tiers.
func (c *Cache[K, V]) Get(key K) (value V, ok bool, err error) {
	if value, ok := c.hot.get(key); ok {
		c.stats.Hits++
		return value, true, nil
	}
	if !c.spill.has(key) {
		c.stats.Misses++
		var zero V
		return zero, false, nil
	}
	value, err = c.promote(key)
	if err != nil {
		var zero V
		return zero, false, err
	}
	return value, true, nil
}

// Put inserts or overwrites key, marking it most recently used, and
// returns the previous value when one existed in either tier. A stale
// cold copy is read back for the return value and its file deleted, so
// the key never occupies both tiers. An insertion that grows the hot
// tier beyond capacity spills the least-recently-used entry.
func (c *Cache[K, V]) Put(key K, value V) (prev V, existed bool, err error) {
	if prev, existed := c.hot.put(key, value); existed {
		return prev, true, nil
	}
	if c.spill.has(key) {
		old, err := c.spill.retrieve(key)
		if err != nil {
			c.hot.remove(key)
			var zero V
			return zero, false, err
		}
		if err := c.spill.drop(key); err != nil {
			c.hot.remove(key)
			var zero V
			return zero, false, err
		}
		prev, existed = old, true
	}
	if err := c.evictExcess(); err != nil {
		return prev, existed, err
	}
	return prev, existed, nil
}

// PutAll inserts every entry of m, as individual Puts. The first failed
// insertion aborts.
func (c *Cache[K, V]) PutAll(m map[K]V) error {
	for key, value := range m {
		if _, _, err := c.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes key from whichever tier holds it and returns its value.
// Removing a cold entry reads its file back before deleting it. ok is
// false when the key is unknown to both tiers.
func (c *Cache[K, V]) Remove(key K) (V, bool, error) {
	if value, ok := c.hot.remove(key); ok {
		return value, true, nil
	}
	if !c.spill.has(key) {
		var zero V
		return zero, false, nil
	}
	value, err := c.spill.retrieve(key)
	if err != nil {
		var zero V
		return zero, false, err
	}
	if err := c.spill.drop(key); err != nil {
		var zero V
		return zero, false, err
	}
	return value, true, nil
}

// Clear removes all hot entries, deletes every spill file and the
// scratch directory, leaving the cache in its freshly constructed state.
// The scratch directory is recreated lazily on the next spill.
func (c *Cache[K, V]) Clear() error {
	c.hot.clear()
	removed := c.spill.len()
	if err := c.spill.clear(); err != nil {
		return err
	}
	c.emit(observability.EventClear, slog.LevelInfo, map[string]any{"spilled_removed": removed})
	return nil
}

// Keys returns the keys of both tiers in no particular order. The tiers
// are disjoint, so the result carries no duplicates.
func (c *Cache[K, V]) Keys() []K {
	return append(c.hot.keys(), c.spill.keys()...)
}

// Stats returns a snapshot of the engine counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// Values is not supported: it would require loading every spill file. If
// that were viable, this cache would not be needed.
func (c *Cache[K, V]) Values() ([]V, error) {
	return nil, ErrNotSupported
}

// Entries is not supported, for the same reason as Values.
func (c *Cache[K, V]) Entries() ([]Entry[K, V], error) {
	return nil, ErrNotSupported
}

// ContainsValue is not supported, for the same reason as Values.
func (c *Cache[K, V]) ContainsValue(value V) (bool, error) {
	return false, ErrNotSupported
}

// promote moves a cold entry back into memory: read and decode the spill
// file, insert hot, delete the file, run the eviction check, then fire
// the hook. The file is deleted only once the hot insertion exists; if
// the delete fails the insertion is rolled back and the entry stays cold
// and intact.
func (c *Cache[K, V]) promote(key K) (V, error) {
	value, err := c.spill.retrieve(key)
	if err != nil {
		var zero V
		return zero, err
	}
	c.hot.put(key, value)
	if err := c.spill.drop(key); err != nil {
		c.hot.remove(key)
		var zero V
		return zero, err
	}
	c.stats.Promotions++
	if err := c.evictExcess(); err != nil {
		var zero V
		return zero, err
	}
	c.emit(observability.EventPromote, slog.LevelDebug, map[string]any{"key": fmt.Sprint(key)})
	if c.onPromote != nil {
		c.onPromote(key, value)
	}
	return value, nil
}

// evictExcess spills least-recently-used entries until the hot tier is
// back within capacity. A victim is persisted before it leaves memory,
// so no entry is ever in neither tier.
func (c *Cache[K, V]) evictExcess() error {
	if c.capacity <= 0 {
		return nil
	}
	for c.hot.len() > c.capacity {
		key, value, ok := c.hot.oldest()
		if !ok {
			return nil
		}
		firstSpill := c.spill.dir == ""
		if err := c.spill.persist(key, value); err != nil {
			return err
		}
		c.hot.remove(key)
		c.stats.Evictions++
		if firstSpill {
			c.emit(observability.EventScratchCreate, slog.LevelInfo, map[string]any{"dir": c.spill.dir})
		}
		c.emit(observability.EventSpill, slog.LevelDebug, map[string]any{"key": fmt.Sprint(key)})
	}
	return nil
}

func (c *Cache[K, V]) emit(typ observability.EventType, level slog.Level, data map[string]any) {
	if c.observer == nil {
		return
	}
	c.observer.OnEvent(context.Background(), observability.Event{
		Type:   typ,
		Level:  level,
		Time:   time.Now(),
		Source: "cache",
		Data:   data,
	})
}
