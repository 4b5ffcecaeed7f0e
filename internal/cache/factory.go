package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/ricepay/tracker/config"
)

// NewStore builds the cache store selected by config: "redis" for
// multi-replica deployments, "in-memory" otherwise.
func NewStore(cfg *config.CacheConfig) (Store, error) {
	switch cfg.Engine {
	case "redis":
		ctx := context.Background()
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return NewRedisStore(ctx, client), nil
	case "in-memory":
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unknown cache engine: %s", cfg.Engine)
}
