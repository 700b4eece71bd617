package persona

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tpb/internal/clerk/models"
	id "tpb/pkg/domain"
)

const personaKeyPrefix = "clerk:persona:"

// RedisCache is a read-through cache in front of a Store. Cache failures fall
// back to the store.
type RedisCache struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(next Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *RedisCache) FindByKey(ctx context.Context, key string) (*models.Persona, error) {
	raw, err := c.client.Get(ctx, personaKeyPrefix+key).Bytes()
	switch {
	case err == nil:
		var p models.Persona
		if jsonErr := json.Unmarshal(raw, &p); jsonErr == nil {
			return &p, nil
		}
	case !errors.Is(err, redis.Nil):
		c.warn(ctx, "persona cache read failed", key, err)
	}

	p, err := c.next.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(p); err == nil {
		if err := c.client.Set(ctx, personaKeyPrefix+key, payload, c.ttl).Err(); err != nil {
			c.warn(ctx, "persona cache write failed", key, err)
		}
	}
	return p, nil
}

// Save writes through and evicts the cached entry.
func (c *RedisCache) Save(ctx context.Context, p *models.Persona) error {
	if err := c.next.Save(ctx, p); err != nil {
		return err
	}
	if err := c.client.Del(ctx, personaKeyPrefix+p.Key).Err(); err != nil {
		c.warn(ctx, "persona cache evict failed", p.Key, err)
	}
	return nil
}

func (c *RedisCache) RecordInteraction(ctx context.Context, clerkID id.ClerkID, at time.Time) error {
	return c.next.RecordInteraction(ctx, clerkID, at)
}

func (c *RedisCache) warn(ctx context.Context, msg, key string, err error) {
	if c.logger != nil {
		c.logger.WarnContext(ctx, msg, "clerk_key", key, "error", err)
	}
}
