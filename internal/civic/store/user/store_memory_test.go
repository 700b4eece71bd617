package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"tpb/internal/civic/models"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

type InMemoryUserStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryUserStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestInMemoryUserStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryUserStoreSuite))
}

func (s *InMemoryUserStoreSuite) TestLookup() {
	s.Run("returns saved user", func() {
		u := &models.User{ID: 1, Username: "jane", FirstName: "Jane"}
		s.Require().NoError(s.store.Save(s.ctx, u))

		found, err := s.store.FindByID(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal(u, found)
	})

	s.Run("returns ErrNotFound for unknown user", func() {
		_, err := s.store.FindByID(s.ctx, 404)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned users are copies", func() {
		s.Require().NoError(s.store.Save(s.ctx, &models.User{ID: 2, FirstName: "Ann"}))
		found, err := s.store.FindByID(s.ctx, 2)
		s.Require().NoError(err)
		found.FirstName = "Mutated"

		again, err := s.store.FindByID(s.ctx, 2)
		s.Require().NoError(err)
		s.Equal("Ann", again.FirstName)
	})
}

func (s *InMemoryUserStoreSuite) TestUpdateTown() {
	s.Run("sets town and state", func() {
		s.Require().NoError(s.store.Save(s.ctx, &models.User{ID: 3}))
		s.Require().NoError(s.store.UpdateTown(s.ctx, 3, id.TownID(10), id.StateID(7)))

		found, err := s.store.FindByID(s.ctx, 3)
		s.Require().NoError(err)
		s.Require().True(found.HasTown())
		s.Equal(id.TownID(10), *found.TownID)
		s.Equal(id.StateID(7), *found.StateID)
	})

	s.Run("returns ErrNotFound for unknown user", func() {
		err := s.store.UpdateTown(s.ctx, 999, 1, 1)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
