package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

// InMemoryReportCache implements ReportCache with process-local storage.
// Suitable for a single-instance deployment; use the Redis backend when
// several dashboard instances share the load.
type InMemoryReportCache struct {
	entries sync.Map // map[string]*reportEntry
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type reportEntry struct {
	payload   []byte
	expiresAt time.Time
}

func (e *reportEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// NewInMemoryReportCache creates the cache and starts its cleanup loop.
func NewInMemoryReportCache(logger *zap.Logger) *InMemoryReportCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &InMemoryReportCache{
		logger: logger,
		stopCh: make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves a cached payload, treating expired entries as misses.
func (c *InMemoryReportCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries.Load(key)
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return nil, false, nil
	}
	entry := v.(*reportEntry)
	if entry.isExpired() {
		c.entries.Delete(key)
		atomic.AddInt64(&c.misses, 1)
		return nil, false, nil
	}
	atomic.AddInt64(&c.hits, 1)
	return entry.payload, true, nil
}

// Set stores a payload with the given TTL.
func (c *InMemoryReportCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	c.entries.Store(key, &reportEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

// Invalidate removes a single entry.
func (c *InMemoryReportCache) Invalidate(_ context.Context, key string) error {
	c.entries.Delete(key)
	return nil
}

// Stats returns hit/miss counters for monitoring.
func (c *InMemoryReportCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *InMemoryReportCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

func (c *InMemoryReportCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			removed := 0
			c.entries.Range(func(key, value any) bool {
				if value.(*reportEntry).isExpired() {
					c.entries.Delete(key)
					removed++
				}
				return true
			})
			if removed > 0 {
				c.logger.Debug("evicted expired report cache entries", zap.Int("count", removed))
			}
		}
	}
}
