package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/session"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    session.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	c, mr, cleanup := testutils.CreateTestRedisClientWithServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.repo = session.NewRedisRepository(c)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	now := time.Now()
	sess := &petoverse.Session{
		ID:        "sess_1",
		Email:     "test@example.com",
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}

	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(sess, got.Session)

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{ID: "sess_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	now := time.Now()
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: &petoverse.Session{
		ID:        "sess_2",
		ExpiresAt: now.Add(time.Minute).Unix(),
	}})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "sess_2"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, session.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: &petoverse.Session{ID: "x"}})
	s.True(errors.IsInvalidArgument(err), "zero expiry is already expired")

	_, err = s.repo.Get(s.ctx, session.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}
