// Package cache stores rendered GET responses of the admin API and drops them by path prefix
// when a mutation changes the underlying rows.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Store holds cached responses keyed by request path and query
type Store interface {
	// Get returns the cached value and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix removes every key starting with one of the prefixes
	DeletePrefix(ctx context.Context, prefixes ...string) error
}

// NewStore builds the store selected by settings. redisClient is only used by the redis store.
func NewStore(settings *config.CacheSettings, redisClient *redis.Client, logger logger.Logger) (Store, error) {
	switch settings.Type {
	case config.CacheTypeNone:
		return NoopStore{}, nil
	case config.CacheTypeMemory:
		return NewMemoryStore(), nil
	case config.CacheTypeRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis client is required for the redis cache")
		}
		return NewRedisStore(redisClient, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}

// NoopStore never holds anything
type NoopStore struct{}

func (NoopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NoopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NoopStore) DeletePrefix(context.Context, ...string) error { return nil }
