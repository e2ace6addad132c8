package flights

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const tokenCacheKey = "amadeus:token"

type redisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache returns a TokenCache backed by Redis; the token's
// TTL comes from the provider's expires_in.
func NewRedisTokenCache(client *redis.Client) TokenCache {
	return &redisTokenCache{client: client}
}

func (c *redisTokenCache) Get(ctx context.Context) (string, error) {
	token, err := c.client.Get(ctx, tokenCacheKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (c *redisTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, tokenCacheKey, token, ttl).Err()
}
