package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers processed dedup keys for a bounded window.
// It is an optimization in front of the durable event log, not the source of truth.
type IdempotencyStore interface {
	// MarkProcessed atomically records key with a TTL.
	// Returns true if the key was newly marked, false if it was already present.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks whether key is still inside the retention window
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Forget removes key so a failed attempt can be retried
	Forget(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	// TTL is how long a processed key stays in the dedup window
	TTL time.Duration

	// Enabled determines whether idempotency checking is enabled
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     time.Hour,
		Enabled: true,
	}
}
