package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"tpb/internal/civic/models"
	"tpb/pkg/platform/sentinel"
)

type LocationStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestLocationStoreSuite(t *testing.T) {
	suite.Run(t, new(LocationStoreSuite))
}

func (s *LocationStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
	s.store.AddState(&models.State{ID: 7, Name: "Connecticut", Abbreviation: "CT"})
	s.store.AddState(&models.State{ID: 8, Name: "Rhode Island", Abbreviation: "RI"})
	s.store.AddTown(&models.Town{ID: 100, Name: "Putnam", StateID: 7, StateSenateDistrict: "29"})
	s.store.AddTown(&models.Town{ID: 200, Name: "Westerly", StateID: 8})
}

func (s *LocationStoreSuite) TestFindTown() {
	s.Run("matches by abbreviation", func() {
		town, err := s.store.FindTown(s.ctx, "Putnam", "CT")
		s.Require().NoError(err)
		s.Equal("Putnam", town.Name)
		s.Equal("CT", town.StateAbbreviation)
		s.Equal("Connecticut", town.StateName)
	})

	s.Run("matches by state name case-insensitively", func() {
		town, err := s.store.FindTown(s.ctx, "putnam", "connecticut")
		s.Require().NoError(err)
		s.EqualValues(100, town.ID)
	})

	s.Run("town must be in the named state", func() {
		_, err := s.store.FindTown(s.ctx, "Putnam", "RI")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("name match is exact, not a prefix", func() {
		_, err := s.store.FindTown(s.ctx, "Put", "CT")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *LocationStoreSuite) TestFindTownByID() {
	town, err := s.store.FindTownByID(s.ctx, 200)
	s.Require().NoError(err)
	s.Equal("Westerly, RI", town.DisplayName())

	_, err = s.store.FindTownByID(s.ctx, 1)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
