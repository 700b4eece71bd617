package bucket

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tpb/internal/ratelimit/models"
)

const keyPrefix = "tpb:ratelimit:"

// slidingWindow trims the window, then admits the request if there is room.
// Returns {allowed, count, oldest score in ms}.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local count = redis.call('ZCARD', key)
local allowed = 0
if count < limit then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  count = count + 1
  allowed = 1
end
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
return {allowed, count, oldest[2] or tostring(now)}
`)

// RedisStore is a sliding window shared by every instance pointing at the
// same Redis.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error) {
	now := s.now()
	raw, err := slidingWindow.Run(ctx, s.client, []string{keyPrefix + key},
		now.UnixMilli(), window.Milliseconds(), limit, uuid.NewString()).Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}
	if len(raw) != 3 {
		return nil, fmt.Errorf("rate limit check: unexpected reply %v", raw)
	}
	allowed, _ := raw[0].(int64)
	count, _ := raw[1].(int64)
	oldestStr, _ := raw[2].(string)
	oldestMs, err := strconv.ParseFloat(oldestStr, 64)
	if err != nil {
		return nil, fmt.Errorf("rate limit check: oldest score: %w", err)
	}
	resetAt := time.UnixMilli(int64(oldestMs)).Add(window)

	res := &models.Result{
		Allowed: allowed == 1,
		Limit:   limit,
		ResetAt: resetAt,
	}
	if res.Allowed {
		res.Remaining = limit - int(count)
	} else {
		res.RetryAfter = retryAfter(now, resetAt)
	}
	return res, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}
