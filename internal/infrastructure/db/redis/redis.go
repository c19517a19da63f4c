package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/roleportal/accounts-api/internal/pkg/config"
)

// Connect initialises the Redis client backing the token revocation store and
// validates connectivity with a ping. The ping deadline comes from
// REDIS_TIMEOUT.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: cfg.Timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
