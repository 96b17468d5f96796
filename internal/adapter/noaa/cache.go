package noaa

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/couchcryptid/metar-decode-service/internal/metar"
	"github.com/couchcryptid/metar-decode-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// CachedSource wraps a ReportSource with an in-memory TTL'd LRU cache keyed
// by station. Stations report at most a few times an hour, so a short TTL
// collapses repeat fetches without serving stale observations.
type CachedSource struct {
	inner   metar.ReportSource
	cache   *lruCache
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCachedSource creates a cache decorator around a report source.
func NewCachedSource(inner metar.ReportSource, maxEntries int, ttl time.Duration, metrics *observability.Metrics) *CachedSource {
	return &CachedSource{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
	}
}

// SetClock replaces the cache's clock. Pass nil to restore the real clock.
func (c *CachedSource) SetClock(clk clockwork.Clock) {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	c.clock = clk
}

func (c *CachedSource) FetchLatest(ctx context.Context, station string) (metar.ReportMessage, error) {
	key := strings.ToUpper(station)
	if msg, ok := c.cache.get(key, c.clock.Now()); ok {
		c.metrics.FetchCache.WithLabelValues("hit").Inc()
		return msg, nil
	}
	c.metrics.FetchCache.WithLabelValues("miss").Inc()

	msg, err := c.inner.FetchLatest(ctx, station)
	if err != nil {
		return msg, err
	}
	c.cache.put(key, msg, c.clock.Now().Add(c.ttl))
	return msg, nil
}

// lruCache is a thread-safe LRU cache of report messages with per-entry
// expiry.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key       string
	value     metar.ReportMessage
	expiresAt time.Time
	prev      *entry
	next      *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string, now time.Time) (metar.ReportMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return metar.ReportMessage{}, false
	}
	if !now.Before(e.expiresAt) {
		delete(c.entries, e.key)
		c.remove(e)
		return metar.ReportMessage{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value metar.ReportMessage, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
