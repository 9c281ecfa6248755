package viewcache

import (
	"context"
	"sync"
	"time"

	"github.com/vncsmyrnk/wevote/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

const DefaultLoadTimeout = 15 * time.Second

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache stores read views for a fixed TTL. Concurrent misses for the same key
// share one load. A load that started before an Invalidate is not stored.
type Cache struct {
	ttl         time.Duration
	loadTimeout time.Duration
	clock       ports.Clock
	group       singleflight.Group

	mu      sync.Mutex
	entries map[string]entry
	gens    map[string]uint64
}

type Option func(*Cache)

func WithClock(clock ports.Clock) Option {
	return func(c *Cache) { c.clock = clock }
}

// WithLoadTimeout bounds a shared load, which no longer follows any single
// caller's cancellation.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Cache) { c.loadTimeout = d }
}

func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
		clock:       systemClock{},
		entries:     make(map[string]entry),
		gens:        make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Fetch(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.clock.Now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	gen := c.gens[key]
	c.mu.Unlock()

	ch := c.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		value, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			if c.gens[key] == gen {
				c.entries[key] = entry{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
			}
			c.mu.Unlock()
		}
		return value, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gens[key]++
	}
	for _, key := range keys {
		c.group.Forget(key)
	}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
