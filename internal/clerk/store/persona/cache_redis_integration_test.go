//go:build integration

package persona_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tpb/internal/clerk/models"
	"tpb/internal/clerk/store/persona"
	"tpb/pkg/platform/sentinel"
	"tpb/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	backing *persona.InMemory
	cache   *persona.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.backing = persona.NewInMemory()
	s.cache = persona.NewRedisCache(s.backing, s.redis.Client, time.Minute, nil)
}

func (s *RedisCacheSuite) TestReadThrough() {
	ctx := context.Background()
	p, err := models.NewPersona("guide", "Guide", "You help.", "", []string{"set_town"})
	s.Require().NoError(err)
	s.Require().NoError(s.cache.Save(ctx, p))

	first, err := s.cache.FindByKey(ctx, "guide")
	s.Require().NoError(err)
	s.Equal(p.ID, first.ID)

	n, err := s.redis.Client.Exists(ctx, "clerk:persona:guide").Result()
	s.Require().NoError(err)
	s.EqualValues(1, n)

	// a stale backing store is not consulted while the entry is cached
	p.Enabled = false
	s.Require().NoError(s.backing.Save(ctx, p))
	cached, err := s.cache.FindByKey(ctx, "guide")
	s.Require().NoError(err)
	s.True(cached.Enabled)

	s.Run("save through the cache evicts", func() {
		s.Require().NoError(s.cache.Save(ctx, p))
		_, err := s.cache.FindByKey(ctx, "guide")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
