package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStoreFactory_CreateStore(t *testing.T) {
	ledger := config.LedgerConfig{DedupCapacity: 10, DedupTTL: time.Minute}
	unreachable := config.RedisConfig{Host: "127.0.0.1", Port: 1}

	t.Run("memory backend", func(t *testing.T) {
		ledger.DedupBackend = BackendMemory
		store, err := NewIdempotencyStoreFactory(unreachable, ledger).CreateStore(context.Background())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &LRUIdempotencyStore{}, store)
	})

	t.Run("unreachable redis falls back to memory", func(t *testing.T) {
		ledger.DedupBackend = BackendRedis
		store, err := NewIdempotencyStoreFactory(unreachable, ledger).CreateStore(context.Background())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &LRUIdempotencyStore{}, store)
	})

	t.Run("unreachable redis without fallback fails", func(t *testing.T) {
		ledger.DedupBackend = BackendRedis
		_, err := NewIdempotencyStoreFactory(unreachable, ledger, WithInMemoryFallback(false)).CreateStore(context.Background())
		assert.Error(t, err)
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		ledger.DedupBackend = "memcached"
		_, err := NewIdempotencyStoreFactory(unreachable, ledger).CreateStore(context.Background())
		assert.Error(t, err)
	})
}
