package cache

import (
	"context"
	"fmt"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Dedup backends selectable in configuration
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// IdempotencyStoreFactory creates the dedup window store selected by configuration
type IdempotencyStoreFactory struct {
	redisConfig           config.RedisConfig
	ledgerConfig          config.LedgerConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// IdempotencyStoreFactoryOption is a functional option for configuring the factory
type IdempotencyStoreFactoryOption func(*IdempotencyStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) IdempotencyStoreFactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to the LRU window.
// Default is true.
func WithInMemoryFallback(allow bool) IdempotencyStoreFactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewIdempotencyStoreFactory creates a new factory
func NewIdempotencyStoreFactory(redisCfg config.RedisConfig, ledgerCfg config.LedgerConfig, opts ...IdempotencyStoreFactoryOption) *IdempotencyStoreFactory {
	f := &IdempotencyStoreFactory{
		redisConfig:           redisCfg,
		ledgerConfig:          ledgerCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateInMemoryStore creates the bounded LRU window.
// It does not share state across process instances.
func (f *IdempotencyStoreFactory) CreateInMemoryStore() shared.IdempotencyStore {
	return NewLRUIdempotencyStore(f.ledgerConfig.DedupCapacity, f.ledgerConfig.DedupTTL)
}

// CreateStore creates the configured backend. A Redis backend that cannot be
// reached falls back to memory unless fallback was disabled.
func (f *IdempotencyStoreFactory) CreateStore(ctx context.Context) (shared.IdempotencyStore, error) {
	switch f.ledgerConfig.DedupBackend {
	case "", BackendMemory:
		f.logger.Info("using in-memory dedup window",
			zap.Int("capacity", f.ledgerConfig.DedupCapacity),
			zap.Duration("ttl", f.ledgerConfig.DedupTTL),
		)
		return f.CreateInMemoryStore(), nil
	case BackendRedis:
	default:
		return nil, fmt.Errorf("unknown dedup backend %q", f.ledgerConfig.DedupBackend)
	}

	store, err := NewRedisIdempotencyStore(ctx, RedisConfig{
		Addr:     f.redisConfig.Addr(),
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err == nil {
		f.logger.Info("using Redis dedup window", zap.String("addr", f.redisConfig.Addr()))
		return store, nil
	}
	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for dedup but unavailable: %w", err)
	}
	f.logger.Warn("Redis unavailable, falling back to in-memory dedup window",
		zap.Error(err),
	)
	return f.CreateInMemoryStore(), nil
}
