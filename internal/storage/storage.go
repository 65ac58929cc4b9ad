package storage

import (
	"context"
	"fmt"

	"github.com/yourorg/stocksnap/internal/config"

	"go.uber.org/zap"
)

// KVStore defines the durable string key-value operations the session
// store persists through
type KVStore interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the underlying resources
	Close() error
}

// NewKVStore creates a KVStore implementation based on the configuration
func NewKVStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (KVStore, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.File.Path, logger)
	case "bolt":
		return NewBoltStore(&cfg.Bolt, logger)
	case "redis":
		return NewRedisStore(ctx, &cfg.Redis, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
