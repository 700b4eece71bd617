package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

type SessionStoreSuite struct {
	suite.Suite
	store *InMemory
	now   time.Time
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) SetupTest() {
	s.now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s.store = NewInMemory()
	s.store.now = func() time.Time { return s.now }
}

func (s *SessionStoreSuite) TestLookup() {
	ctx := context.Background()

	s.Run("returns the user for a live session", func() {
		sid, err := s.store.Create(ctx, 7, time.Hour)
		s.Require().NoError(err)
		s.NotEmpty(sid)

		userID, err := s.store.Lookup(ctx, sid)
		s.Require().NoError(err)
		s.Equal(id.UserID(7), userID)
	})

	s.Run("unknown session is not found", func() {
		_, err := s.store.Lookup(ctx, "nope")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("expired session is not found", func() {
		sid, err := s.store.Create(ctx, 7, time.Minute)
		s.Require().NoError(err)
		s.now = s.now.Add(time.Minute)
		_, err = s.store.Lookup(ctx, sid)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *SessionStoreSuite) TestDelete() {
	ctx := context.Background()
	sid, err := s.store.Create(ctx, 7, time.Hour)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Delete(ctx, sid))
	_, err = s.store.Lookup(ctx, sid)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
