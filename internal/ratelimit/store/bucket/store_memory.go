package bucket

import (
	"context"
	"math"
	"sync"
	"time"

	"tpb/internal/ratelimit/models"
)

// InMemoryBucketStore keeps a sliding window of request timestamps per key.
// It is not shared across processes; use RedisStore for that.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
	now     func() time.Time
}

func NewInMemoryBucketStore() *InMemoryBucketStore {
	return &InMemoryBucketStore{
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records a request for key when fewer than limit requests fall
// inside the trailing window.
func (s *InMemoryBucketStore) Allow(_ context.Context, key string, limit int, window time.Duration) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamps := trim(s.buckets[key], now.Add(-window))

	if len(stamps) >= limit {
		s.buckets[key] = stamps
		resetAt := stamps[0].Add(window)
		return &models.Result{
			Allowed:    false,
			Limit:      limit,
			ResetAt:    resetAt,
			RetryAfter: retryAfter(now, resetAt),
		}, nil
	}

	stamps = append(stamps, now)
	s.buckets[key] = stamps
	return &models.Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(stamps),
		ResetAt:   stamps[0].Add(window),
	}, nil
}

// Reset clears the window for key.
func (s *InMemoryBucketStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

func trim(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	return stamps[i:]
}

func retryAfter(now, resetAt time.Time) int {
	secs := int(math.Ceil(resetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
