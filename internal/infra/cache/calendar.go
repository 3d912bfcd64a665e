// Package cache holds the Redis read-through layer in front of the calendar
// read store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const cacheName = "calendar"

// CalendarCache serves GetRange results from Redis. Redis failures are logged
// and fall through to the wrapped store, so the cache never fails a read.
type CalendarCache struct {
	client  redis.UniversalClient
	next    queries.CalendarReadStore
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
}

func NewCalendarCache(client redis.UniversalClient, next queries.CalendarReadStore, ttl time.Duration, m *metrics.Metrics) *CalendarCache {
	return &CalendarCache{
		client:  client,
		next:    next,
		ttl:     ttl,
		metrics: m,
	}
}

func rangeKey(resourceID uuid.UUID, gen int64, rng calendar.Range) string {
	return "calendar:" + resourceID.String() + ":g" + strconv.FormatInt(gen, 10) + ":" + rng.Start().String() + ":" + rng.End().String()
}

// genKey holds the resource's cache generation. Range keys embed it, so
// bumping it orphans every entry written under an older generation.
func genKey(resourceID uuid.UUID) string {
	return "calendar:" + resourceID.String() + ":gen"
}

// FindRange reads the generation before loading, so a load that races an
// invalidation is stored under the old generation and never served.
func (c *CalendarCache) FindRange(ctx context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*queries.CalendarDayView, error) {
	gen, err := c.generation(ctx, resourceID)
	if err != nil {
		c.observe("error")
		slog.Warn("calendar cache generation read failed", "resource_id", resourceID.String(), "error", err.Error())
		return c.next.FindRange(ctx, resourceID, rng)
	}
	key := rangeKey(resourceID, gen, rng)

	if views, ok := c.get(ctx, key); ok {
		return views, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		views, err := c.next.FindRange(ctx, resourceID, rng)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, views)
		return views, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*queries.CalendarDayView), nil
}

// InvalidateResource bumps the resource generation. Entries of older
// generations are left to expire with their TTL.
func (c *CalendarCache) InvalidateResource(ctx context.Context, resourceID uuid.UUID) error {
	if err := c.client.Incr(ctx, genKey(resourceID)).Err(); err != nil {
		c.observe("error")
		return err
	}
	c.observe("del")
	return nil
}

func (c *CalendarCache) generation(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(resourceID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *CalendarCache) get(ctx context.Context, key string) ([]*queries.CalendarDayView, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe("miss")
		return nil, false
	}
	if err != nil {
		c.observe("error")
		slog.Warn("calendar cache read failed", "key", key, "error", err.Error())
		return nil, false
	}

	var views []*queries.CalendarDayView
	if err := json.Unmarshal(raw, &views); err != nil {
		c.observe("error")
		slog.Warn("calendar cache entry is corrupt", "key", key, "error", err.Error())
		return nil, false
	}
	c.observe("hit")
	return views, true
}

func (c *CalendarCache) set(ctx context.Context, key string, views []*queries.CalendarDayView) {
	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.observe("error")
		slog.Warn("calendar cache write failed", "key", key, "error", err.Error())
		return
	}
	c.observe("set")
}

func (c *CalendarCache) observe(event string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(cacheName, event)
	}
}

// NoopInvalidator is used when Redis is disabled.
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateResource(context.Context, uuid.UUID) error { return nil }
