package claims_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/claims"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    claims.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.repo = claims.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestAddIsIdempotent() {
	out, err := s.repo.Add(s.ctx, claims.AddInput{SessionID: "sess_1", RewardID: "2"})
	s.Require().NoError(err)
	s.True(out.Added)

	out, err = s.repo.Add(s.ctx, claims.AddInput{SessionID: "sess_1", RewardID: "2"})
	s.Require().NoError(err)
	s.False(out.Added)

	list, err := s.repo.List(s.ctx, claims.ListInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Equal([]string{"2"}, list.RewardIDs)
}

func (s *RedisRepositoryTestSuite) TestClaimsAreScopedToSession() {
	_, err := s.repo.Add(s.ctx, claims.AddInput{SessionID: "sess_1", RewardID: "1"})
	s.Require().NoError(err)

	claimed, err := s.repo.IsClaimed(s.ctx, claims.IsClaimedInput{SessionID: "sess_2", RewardID: "1"})
	s.Require().NoError(err)
	s.False(claimed.Claimed)

	claimed, err = s.repo.IsClaimed(s.ctx, claims.IsClaimedInput{SessionID: "sess_1", RewardID: "1"})
	s.Require().NoError(err)
	s.True(claimed.Claimed)

	list, err := s.repo.List(s.ctx, claims.ListInput{SessionID: "sess_2"})
	s.Require().NoError(err)
	s.Empty(list.RewardIDs)
}

func (s *RedisRepositoryTestSuite) TestTTL() {
	_, err := s.repo.Add(s.ctx, claims.AddInput{SessionID: "sess_1", RewardID: "4", TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL("claims:sess_1"))

	s.mr.FastForward(2 * time.Minute)

	list, err := s.repo.List(s.ctx, claims.ListInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Empty(list.RewardIDs)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Add(s.ctx, claims.AddInput{RewardID: "1"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Add(s.ctx, claims.AddInput{SessionID: "s"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.List(s.ctx, claims.ListInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.IsClaimed(s.ctx, claims.IsClaimedInput{SessionID: "s"})
	s.True(errors.IsInvalidArgument(err))
}
