package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

const keyPrefix = "tpb:session:"

// RedisStore keeps sessions as plain keys with a TTL so expiry is handled by
// Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, userID id.UserID, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+sessionID, userID.String(), ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return sessionID, nil
}

func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (id.UserID, error) {
	if sessionID == "" {
		return 0, sentinel.ErrNotFound
	}
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, sentinel.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup session: %w: %w", sentinel.ErrUnavailable, err)
	}
	userID, err := id.ParseUserID(raw)
	if err != nil {
		return 0, fmt.Errorf("lookup session: corrupt user id: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
