//go:build integration

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tpb/internal/auth/store/session"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
	"tpb/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *session.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = session.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	sid, err := s.store.Create(ctx, 42, time.Hour)
	s.Require().NoError(err)

	userID, err := s.store.Lookup(ctx, sid)
	s.Require().NoError(err)
	s.Equal(id.UserID(42), userID)

	ttl, err := s.redis.Client.TTL(ctx, "tpb:session:"+sid).Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)
}

func (s *RedisStoreSuite) TestExpiry() {
	ctx := context.Background()
	sid, err := s.store.Create(ctx, 42, 100*time.Millisecond)
	s.Require().NoError(err)

	s.Eventually(func() bool {
		_, err := s.store.Lookup(ctx, sid)
		return err == sentinel.ErrNotFound
	}, 3*time.Second, 50*time.Millisecond)
}

func (s *RedisStoreSuite) TestDeleteAndUnknown() {
	ctx := context.Background()
	sid, err := s.store.Create(ctx, 42, time.Hour)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Delete(ctx, sid))

	_, err = s.store.Lookup(ctx, sid)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.Lookup(ctx, "")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
