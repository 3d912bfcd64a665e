//go:build unit

package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra/cache"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls atomic.Int32
	delay time.Duration
	views []*queries.CalendarDayView
	// afterLoad runs on the first load, after the rows have been read.
	afterLoad func()
}

func (s *countingStore) FindRange(ctx context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*queries.CalendarDayView, error) {
	n := s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if n == 1 && s.afterLoad != nil {
		s.afterLoad()
	}
	return s.views, nil
}

func setup(t *testing.T, store *countingStore) (*cache.CalendarCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewCalendarCache(client, store, time.Minute, metrics.New()), mr
}

func testRange(t *testing.T) calendar.Range {
	t.Helper()
	start, err := calendar.ParseDate("2025-06-01")
	require.NoError(t, err)
	rng, err := calendar.NewRange(start, start.AddDays(7))
	require.NoError(t, err)
	return rng
}

func TestCalendarCache_ReadThrough(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	price := int64(90000)
	store := &countingStore{views: []*queries.CalendarDayView{
		{ID: uuid.New(), ResourceID: resourceID, Date: "2025-06-02", PriceCents: &price, Open: true, UpdatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}}
	c, mr := setup(t, store)
	rng := testRange(t)

	first, err := c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)
	second, err := c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)

	assert.Equal(t, int32(1), store.calls.Load(), "second read must be served from redis")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached views differ (-first +second):\n%s", diff)
	}
	assert.True(t, mr.Exists("calendar:"+resourceID.String()+":g0:2025-06-01:2025-06-08"))

	t.Run("ttl expiry reloads", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		_, err := c.FindRange(ctx, resourceID, rng)
		require.NoError(t, err)
		assert.Equal(t, int32(2), store.calls.Load())
	})
}

func TestCalendarCache_InvalidateResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	other := uuid.New()
	store := &countingStore{views: []*queries.CalendarDayView{}}
	c, _ := setup(t, store)
	rng := testRange(t)

	_, err := c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)
	_, err = c.FindRange(ctx, other, rng)
	require.NoError(t, err)
	require.Equal(t, int32(2), store.calls.Load())

	require.NoError(t, c.InvalidateResource(ctx, resourceID))

	_, err = c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)
	_, err = c.FindRange(ctx, other, rng)
	require.NoError(t, err)
	assert.Equal(t, int32(3), store.calls.Load(), "only the invalidated resource is reloaded")
}

func TestCalendarCache_InvalidationDuringLoadIsNotServed(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	store := &countingStore{views: []*queries.CalendarDayView{}}
	c, mr := setup(t, store)
	rng := testRange(t)

	// A calendar write commits and invalidates while the first read is still
	// holding rows it loaded before the write.
	store.afterLoad = func() {
		require.NoError(t, c.InvalidateResource(ctx, resourceID))
	}

	_, err := c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)
	assert.True(t, mr.Exists("calendar:"+resourceID.String()+":g0:2025-06-01:2025-06-08"), "stale rows land under the old generation")

	_, err = c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)
	assert.Equal(t, int32(2), store.calls.Load(), "read after invalidation must reload")
	assert.True(t, mr.Exists("calendar:"+resourceID.String()+":g1:2025-06-01:2025-06-08"))

	_, err = c.FindRange(ctx, resourceID, rng)
	require.NoError(t, err)
	assert.Equal(t, int32(2), store.calls.Load(), "current generation is cached")
}

func TestCalendarCache_SingleflightCollapsesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{views: []*queries.CalendarDayView{}, delay: 50 * time.Millisecond}
	c, _ := setup(t, store)
	rng := testRange(t)
	resourceID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.FindRange(ctx, resourceID, rng)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), store.calls.Load())
}

func TestCalendarCache_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{views: []*queries.CalendarDayView{}}
	c, mr := setup(t, store)
	mr.Close()

	_, err := c.FindRange(ctx, uuid.New(), testRange(t))
	require.NoError(t, err)
	assert.Equal(t, int32(1), store.calls.Load())
}
