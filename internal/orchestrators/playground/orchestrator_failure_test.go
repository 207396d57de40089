package playground_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/playground"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/chat"
	chatmock "github.com/KirkDiggler/petoverse-api/internal/repositories/chat/mock"
	notificationmock "github.com/KirkDiggler/petoverse-api/internal/repositories/notification/mock"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
	petmock "github.com/KirkDiggler/petoverse-api/internal/repositories/pet/mock"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

// ChatStoreTestSuite drives the playground against a mocked chat store
type ChatStoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	petRepo  *petmock.MockRepository
	chatRepo *chatmock.MockRepository
	svc      playground.Service
	ctx      context.Context
}

func TestChatStoreSuite(t *testing.T) {
	suite.Run(t, new(ChatStoreTestSuite))
}

func (s *ChatStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.petRepo = petmock.NewMockRepository(s.ctrl)
	s.chatRepo = chatmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := playground.NewOrchestrator(&playground.Config{
		PetRepo:          s.petRepo,
		ChatRepo:         s.chatRepo,
		NotificationRepo: notificationmock.NewMockRepository(s.ctrl),
		DiceRoller:       testutils.NewFixedRoller(1),
		Clock:            clock.NewFixed(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.svc = svc

	s.petRepo.EXPECT().
		Get(gomock.Any(), petrepo.GetInput{ID: "pet_1"}).
		Return(&petrepo.GetOutput{Pet: testutils.CreateTestPet("pet_1", "player_1")}, nil).
		AnyTimes()
}

func (s *ChatStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChatStoreTestSuite) TestHistoryLoadFails() {
	s.chatRepo.EXPECT().
		List(gomock.Any(), chat.ListInput{PetID: "pet_1", Limit: 1}).
		Return(nil, errors.Internal("redis down"))

	_, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "pet_1", Text: "hi"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to load chat history")
}

func (s *ChatStoreTestSuite) TestExistingHistoryIsNotReseeded() {
	s.chatRepo.EXPECT().
		List(gomock.Any(), chat.ListInput{PetID: "pet_1", Limit: 1}).
		Return(&chat.ListOutput{Messages: []petoverse.ChatMessage{{ID: 7, Type: petoverse.MessagePet, Text: "old"}}}, nil)

	next := int64(8)
	s.chatRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in chat.AppendInput) (*chat.AppendOutput, error) {
			s.Len(in.Messages, 1)
			msg := in.Messages[0]
			msg.ID = next
			next++
			return &chat.AppendOutput{Messages: []petoverse.ChatMessage{msg}}, nil
		}).
		Times(2)

	out, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "pet_1", Text: "hi"})
	s.Require().NoError(err)
	s.Equal(int64(8), out.Message.ID)
	s.Equal(int64(9), out.Reply.ID)
	s.Equal(petoverse.MessagePet, out.Reply.Type)
}

func (s *ChatStoreTestSuite) TestStoreFailureOnSend() {
	s.chatRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(&chat.ListOutput{Messages: []petoverse.ChatMessage{{ID: 1}}}, nil)
	s.chatRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "pet_1", Text: "hi"})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}
