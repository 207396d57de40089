package chat_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/chat"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	cleanup func()
	repo    chat.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = chat.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestAppendAssignsMonotonicIDs() {
	out, err := s.repo.Append(s.ctx, chat.AppendInput{
		PetID: "pet_1",
		Messages: []petoverse.ChatMessage{
			{Type: petoverse.MessagePet, Text: "hi"},
			{Type: petoverse.MessageSystem, Text: "status"},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Equal(int64(1), out.Messages[0].ID)
	s.Equal(int64(2), out.Messages[1].ID)

	out, err = s.repo.Append(s.ctx, chat.AppendInput{
		PetID:    "pet_1",
		Messages: []petoverse.ChatMessage{{Type: petoverse.MessageUser, Text: "hello"}},
	})
	s.Require().NoError(err)
	s.Equal(int64(3), out.Messages[0].ID)

	other, err := s.repo.Append(s.ctx, chat.AppendInput{
		PetID:    "pet_2",
		Messages: []petoverse.ChatMessage{{Type: petoverse.MessageUser, Text: "yo"}},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), other.Messages[0].ID, "ids are per pet")
}

func (s *RedisRepositoryTestSuite) TestListLimitKeepsMostRecent() {
	for i := 0; i < 5; i++ {
		_, err := s.repo.Append(s.ctx, chat.AppendInput{
			PetID:    "pet_1",
			Messages: []petoverse.ChatMessage{{Type: petoverse.MessageUser, Text: fmt.Sprintf("m%d", i)}},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, chat.ListInput{PetID: "pet_1", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Equal("m3", out.Messages[0].Text)
	s.Equal("m4", out.Messages[1].Text)

	all, err := s.repo.List(s.ctx, chat.ListInput{PetID: "pet_1"})
	s.Require().NoError(err)
	s.Len(all.Messages, 5)
}

func (s *RedisRepositoryTestSuite) TestHistoryIsBounded() {
	batch := make([]petoverse.ChatMessage, chat.MaxHistory+10)
	for i := range batch {
		batch[i] = petoverse.ChatMessage{Type: petoverse.MessageUser, Text: fmt.Sprintf("m%d", i)}
	}
	_, err := s.repo.Append(s.ctx, chat.AppendInput{PetID: "pet_1", Messages: batch})
	s.Require().NoError(err)

	all, err := s.repo.List(s.ctx, chat.ListInput{PetID: "pet_1"})
	s.Require().NoError(err)
	s.Len(all.Messages, chat.MaxHistory)
	s.Equal("m10", all.Messages[0].Text)
}

func (s *RedisRepositoryTestSuite) TestEmptyAndInvalid() {
	out, err := s.repo.List(s.ctx, chat.ListInput{PetID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Messages)

	_, err = s.repo.Append(s.ctx, chat.AppendInput{})
	s.True(errors.IsInvalidArgument(err))
}
