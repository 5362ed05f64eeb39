package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultDedupCapacity bounds the in-memory dedup window
const DefaultDedupCapacity = 10000

// LRUIdempotencyStore keeps processed keys in a bounded LRU whose entries also expire.
// When the window is full the least recently seen key is evicted, so it is an
// optimization in front of the durable event log and never its replacement.
type LRUIdempotencyStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, time.Time] // key -> expiresAt
	now   func() time.Time
}

// LRUOption configures an LRUIdempotencyStore
type LRUOption func(*LRUIdempotencyStore)

// WithClock overrides the clock used for per-key expiry
func WithClock(now func() time.Time) LRUOption {
	return func(s *LRUIdempotencyStore) {
		s.now = now
	}
}

// NewLRUIdempotencyStore creates a store holding at most capacity keys.
// maxTTL is the longest any key is retained regardless of the TTL passed per key.
func NewLRUIdempotencyStore(capacity int, maxTTL time.Duration, opts ...LRUOption) *LRUIdempotencyStore {
	if capacity <= 0 {
		capacity = DefaultDedupCapacity
	}
	if maxTTL <= 0 {
		maxTTL = shared.DefaultIdempotencyConfig().TTL
	}
	s := &LRUIdempotencyStore{
		cache: expirable.NewLRU[string, time.Time](capacity, nil, maxTTL),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarkProcessed records key unless it is already inside its retention window
func (s *LRUIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.cache.Get(key); ok && now.Before(expiresAt) {
		return false, nil
	}
	s.cache.Add(key, now.Add(ttl))
	return true, nil
}

// IsProcessed reports whether key is still inside its retention window
func (s *LRUIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.cache.Peek(key)
	return ok && s.now().Before(expiresAt), nil
}

// Forget removes key
func (s *LRUIdempotencyStore) Forget(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(key)
	return nil
}

// Len returns the number of keys currently held
func (s *LRUIdempotencyStore) Len() int {
	return s.cache.Len()
}

// Close releases the window
func (s *LRUIdempotencyStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
	return nil
}

var _ shared.IdempotencyStore = (*LRUIdempotencyStore)(nil)
