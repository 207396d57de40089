package notification_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/notification"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	cleanup func()
	repo    notification.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = notification.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewestFirstAndBounded() {
	for i := 0; i < notification.MaxRetained+5; i++ {
		_, err := s.repo.Add(s.ctx, notification.AddInput{Notification: petoverse.Notification{
			PetID:     "pet_1",
			Message:   fmt.Sprintf("n%d", i),
			CreatedAt: int64(i),
		}})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, notification.ListInput{PetID: "pet_1", Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(out.Notifications, 3)
	s.Equal(fmt.Sprintf("n%d", notification.MaxRetained+4), out.Notifications[0].Message)

	all, err := s.repo.List(s.ctx, notification.ListInput{PetID: "pet_1"})
	s.Require().NoError(err)
	s.Len(all.Notifications, notification.MaxRetained)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Add(s.ctx, notification.AddInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.List(s.ctx, notification.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}
