package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "route-cache:"
	scanBatch      = 200
)

// RedisStore shares cached responses between API instances
type RedisStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisStore creates a RedisStore
func NewRedisStore(client *redis.Client, logger logger.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// DeletePrefix scans for matching keys; glob metacharacters in prefixes are escaped
func (s *RedisStore) DeletePrefix(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		pattern := redisKeyPrefix + escapeGlob(prefix) + "*"
		iter := s.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan cache keys for %s: %w", prefix, err)
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to delete cache keys for %s: %w", prefix, err)
		}
		s.logger.Debug("Invalidated ", len(keys), " cached responses under ", prefix)
	}
	return nil
}

var globReplacer = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globReplacer.Replace(s)
}
