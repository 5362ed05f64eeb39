package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLRUIdempotencyStore_MarkProcessed(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := NewLRUIdempotencyStore(100, time.Hour, WithClock(clock.Now))
	defer store.Close()
	ctx := context.Background()

	t.Run("first mark is new, second is a duplicate", func(t *testing.T) {
		isNew, err := store.MarkProcessed(ctx, "pay-1:order-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, isNew)

		isNew, err = store.MarkProcessed(ctx, "pay-1:order-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, isNew)

		processed, err := store.IsProcessed(ctx, "pay-1:order-1")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("keys expire after their ttl", func(t *testing.T) {
		isNew, err := store.MarkProcessed(ctx, "short", 10*time.Minute)
		require.NoError(t, err)
		require.True(t, isNew)

		clock.Advance(11 * time.Minute)

		processed, err := store.IsProcessed(ctx, "short")
		require.NoError(t, err)
		assert.False(t, processed)

		isNew, err = store.MarkProcessed(ctx, "short", 10*time.Minute)
		require.NoError(t, err)
		assert.True(t, isNew)
	})

	t.Run("forget releases a key", func(t *testing.T) {
		_, err := store.MarkProcessed(ctx, "retry-me", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Forget(ctx, "retry-me"))

		isNew, err := store.MarkProcessed(ctx, "retry-me", time.Hour)
		require.NoError(t, err)
		assert.True(t, isNew)
	})
}

func TestLRUIdempotencyStore_Capacity(t *testing.T) {
	store := NewLRUIdempotencyStore(3, time.Hour)
	defer store.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.MarkProcessed(ctx, fmt.Sprintf("key-%d", i), time.Hour)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.Len())

	evicted, err := store.IsProcessed(ctx, "key-0")
	require.NoError(t, err)
	assert.False(t, evicted, "oldest key is evicted once the window is full")

	kept, err := store.IsProcessed(ctx, "key-4")
	require.NoError(t, err)
	assert.True(t, kept)
}

func TestLRUIdempotencyStore_ConcurrentMark(t *testing.T) {
	store := NewLRUIdempotencyStore(100, time.Hour)
	defer store.Close()
	ctx := context.Background()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			isNew, err := store.MarkProcessed(ctx, "same-key", time.Hour)
			if err == nil && isNew {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
