package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/shared/constant"
)

// Status is the lifecycle of a cached query as seen by the UI.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache is the process-local query cache. It deduplicates concurrent fetches
// of the same key, serves results younger than the staleness window, and
// supports key-scoped invalidation so unrelated entries survive a mutation.
// The server stays the final arbiter; nothing here coordinates across
// processes.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	status  map[string]Status
	group   singleflight.Group
	ttl     time.Duration
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		status:  make(map[string]Status),
		ttl:     time.Duration(cfg.Cache.TTL) * time.Second,
		otel:    ot,
	}
}

// Fetch returns the cached value for key when it is still fresh, otherwise
// runs fetch exactly once per in-flight key and caches its result. Failures
// are never cached.
func Fetch[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if value, ok := c.lookup(key); ok {
		if typed, ok := value.(T); ok {
			log.Debug().Str("cacheKey", key).Msg("cache hit")

			return typed, nil
		}
	}

	result, err, shared := c.group.Do(key, func() (res any, err error) {
		ctx, scope := c.otel.NewScope(ctx, constant.OtelQueryScopeName, constant.OtelQueryScopeName+".Fetch")
		defer scope.End()
		defer scope.TraceIfError(err)

		scope.SetAttribute("cache.key", key)

		c.setStatus(key, StatusLoading)

		value, err := fetch(ctx)
		if err != nil {
			c.setStatus(key, StatusFailure)

			return nil, err
		}

		c.store(key, value)

		return value, nil
	})
	if err != nil {
		return zero, err
	}

	if shared {
		log.Debug().Str("cacheKey", key).Msg("deduplicated in-flight fetch")
	}

	typed, ok := result.(T)
	if !ok {
		// A concurrent caller registered the key with a different type;
		// treat it as a miss and fetch directly.
		return fetch(ctx)
	}

	return typed, nil
}

// Refetch invalidates key and fetches it again, guaranteeing the caller sees
// server truth rather than a stale entry.
func Refetch[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	c.Invalidate(key)

	return Fetch(ctx, c, key, fetch)
}

// Status reports the current state of a key.
func (c *Cache) Status(key string) Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.status[key]
}

// Invalidate removes the given keys.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
		delete(c.status, key)
	}
}

// InvalidatePrefix removes every key under the given prefix. Used for list
// caches whose keys embed paging parameters.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			delete(c.status, key)
		}
	}

	for key := range c.status {
		if strings.HasPrefix(key, prefix) {
			delete(c.status, key)
		}
	}
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.ttl > 0 && time.Since(cached.fetchedAt) > c.ttl {
		return nil, false
	}

	return cached.value, true
}

func (c *Cache) store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, fetchedAt: time.Now()}
	c.status[key] = StatusSuccess
}

func (c *Cache) setStatus(key string, status Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status[key] = status
}
