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

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *persona.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = persona.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "ai_clerk_interactions", "ai_clerks"))
}

func (s *PostgresStoreSuite) TestSaveFindAndCount() {
	ctx := context.Background()
	p, err := models.NewPersona("guide", "Guide", "You help.", "", []string{"set_town", "add_thought"})
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, p))

	found, err := s.store.FindByKey(ctx, "guide")
	s.Require().NoError(err)
	s.Equal(p.ID, found.ID)
	s.Equal([]string{"set_town", "add_thought"}, found.Capabilities)
	s.Empty(found.Model)

	s.Require().NoError(s.store.RecordInteraction(ctx, p.ID, time.Now()))
	s.Require().NoError(s.store.RecordInteraction(ctx, p.ID, time.Now()))
	var count int64
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx,
		`SELECT interaction_count FROM ai_clerk_interactions WHERE clerk_id = $1`, int64(p.ID)).Scan(&count))
	s.EqualValues(2, count)

	p.Enabled = false
	s.Require().NoError(s.store.Save(ctx, p))
	_, err = s.store.FindByKey(ctx, "guide")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
