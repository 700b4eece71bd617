//go:build integration

package thought_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tpb/internal/civic/models"
	"tpb/internal/civic/store/thought"
	id "tpb/pkg/domain"
	"tpb/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *thought.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = thought.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "user_thoughts", "users", "towns", "states"))
	_, err := s.postgres.DB.ExecContext(ctx, `
		INSERT INTO states (state_id, state_name, abbreviation) VALUES (1, 'Connecticut', 'CT');
		INSERT INTO towns (town_id, town_name, state_id) VALUES (10, 'Putnam', 1);
		INSERT INTO users (user_id, username) VALUES (5, 'jane');
	`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestCreateAndListRecent() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)
	townID, stateID := id.TownID(10), id.StateID(1)

	for i, content := range []string{"first", "second", "third", "fourth"} {
		th, err := models.NewThought(5, content, "", base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(err)
		th.TownID, th.StateID = &townID, &stateID
		thoughtID, err := s.store.Create(ctx, th)
		s.Require().NoError(err)
		s.False(thoughtID.IsZero())
	}

	got, err := s.store.ListRecent(ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("fourth", got[0].Content)
	s.True(got[0].IsLocal)
	s.Equal(models.JurisdictionTown, got[0].Jurisdiction)
	s.Require().NotNil(got[0].TownID)
	s.Equal(townID, *got[0].TownID)
}
