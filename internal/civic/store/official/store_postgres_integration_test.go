//go:build integration

package official_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"tpb/internal/civic/models"
	"tpb/internal/civic/store/official"
	"tpb/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *official.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = official.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "elected_officials"))
	_, err := s.postgres.DB.ExecContext(ctx, `
		INSERT INTO elected_officials (full_name, title, party, email, ocd_id, state_code, is_current) VALUES
		('Sen. Upper', 'State Senator', 'D', 'upper@example.gov', 'ocd-division/country:us/state:ct/sldu:29', 'CT', TRUE),
		('Rep. Congress', 'U.S. Representative', 'D', NULL, 'ocd-division/country:us/state:ct/cd:2', 'CT', TRUE),
		('Rep. Former', 'U.S. Representative', 'R', NULL, 'ocd-division/country:us/state:ct/cd:2', 'CT', FALSE),
		('Sen. Wrong', 'State Senator', 'R', NULL, 'ocd-division/country:us/state:ct/sldu:2', 'CT', TRUE),
		('Gov. One', 'Governor', 'D', NULL, 'ocd-division/country:us/state:ct', 'CT', TRUE),
		('AG One', 'Attorney General', 'D', NULL, 'ocd-division/country:us/state:ct', 'CT', TRUE),
		('Senator B', 'U.S. Senator', 'D', NULL, 'ocd-division/country:us/state:ct', 'CT', TRUE),
		('Senator A', 'U.S. Senator', 'D', NULL, 'ocd-division/country:us/state:ct', 'CT', TRUE),
		('Lt. Gov. Odd', 'Lieutenant Governor', 'D', NULL, 'ocd-division/country:us/state:ct/place:hartford/ward:3', 'CT', TRUE);
	`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestFindCurrentByDivisions() {
	cd2, err := models.NewDistrictAddress(models.LevelCongressional, "ct", "2")
	s.Require().NoError(err)
	sldu29, err := models.NewDistrictAddress(models.LevelStateUpper, "ct", "29")
	s.Require().NoError(err)

	got, err := s.store.FindCurrentByDivisions(context.Background(), []models.DivisionAddress{cd2, sldu29})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Rep. Congress", got[0].FullName)
	s.Equal(cd2, got[0].Division)
	s.Equal("Sen. Upper", got[1].FullName)
	s.Equal("upper@example.gov", got[1].Email)
}

func (s *PostgresStoreSuite) TestFindCurrentStatewide() {
	got, err := s.store.FindCurrentStatewide(context.Background(), "ct", models.StatewideTitles)
	s.Require().NoError(err)
	names := make([]string, len(got))
	for i, o := range got {
		names[i] = o.FullName
	}
	s.Equal([]string{"Gov. One", "Senator A", "Senator B", "Lt. Gov. Odd", "AG One"}, names)
	s.True(got[3].Division.IsZero(), "unparseable ocd_id leaves the division empty")
}
