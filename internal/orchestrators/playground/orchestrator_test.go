package playground_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/playground"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/chat"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/notification"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

// OrchestratorTestSuite runs the playground against real repositories on miniredis
type OrchestratorTestSuite struct {
	suite.Suite
	cleanup          func()
	petRepo          petrepo.Repository
	chatRepo         chat.Repository
	notificationRepo notification.Repository
	bus              events.EventBus
	svc              playground.Service
	ctx              context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.bus = events.NewBus()

	petRepo, err := petrepo.NewRedis(&petrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.petRepo = petRepo
	s.chatRepo = chat.NewRedisRepository(client)
	s.notificationRepo = notification.NewRedisRepository(client)

	svc, err := playground.NewOrchestrator(&playground.Config{
		PetRepo:          petRepo,
		ChatRepo:         s.chatRepo,
		NotificationRepo: s.notificationRepo,
		DiceRoller:       testutils.NewFixedRoller(3),
		Clock:            clock.NewFixed(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)),
		EventBus:         s.bus,
		ChatLatency:      5 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.svc = svc

	_, err = s.petRepo.Create(s.ctx, petrepo.CreateInput{Pet: testutils.CreateTestPet("pet_1", "player_1")})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := playground.NewOrchestrator(&playground.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "PetRepo")
	s.Contains(err.Error(), "ChatRepo")
	s.Contains(err.Error(), "NotificationRepo")
}

func (s *OrchestratorTestSuite) TestHistorySeedsGreeting() {
	out, err := s.svc.History(s.ctx, &playground.HistoryInput{PlayerID: "player_1", PetID: "pet_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Equal(petoverse.MessagePet, out.Messages[0].Type)
	s.Equal(catalog.GreetingMessage, out.Messages[0].Text)
	s.Equal(petoverse.MessageSystem, out.Messages[1].Type)

	again, err := s.svc.History(s.ctx, &playground.HistoryInput{PlayerID: "player_1", PetID: "pet_1"})
	s.Require().NoError(err)
	s.Equal(out.Messages, again.Messages)
}

func (s *OrchestratorTestSuite) TestSendMessage() {
	out, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "pet_1", Text: "  hi there  "})
	s.Require().NoError(err)
	s.Equal("hi there", out.Message.Text)
	s.Equal(petoverse.MessageUser, out.Message.Type)
	s.Equal(catalog.PetReplies()[2], out.Reply.Text)
	s.Greater(out.Reply.ID, out.Message.ID)

	history, err := s.svc.History(s.ctx, &playground.HistoryInput{PlayerID: "player_1", PetID: "pet_1"})
	s.Require().NoError(err)
	s.Len(history.Messages, 4)
	s.Equal(out.Reply, history.Messages[3])
}

func (s *OrchestratorTestSuite) TestSendMessageValidation() {
	s.Run("blank text", func() {
		_, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "pet_1", Text: "   "})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown pet", func() {
		_, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "ghost", Text: "hello"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestSendMessageAbandonedSkipsReply() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	petRepo, err := petrepo.NewRedis(&petrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	_, err = petRepo.Create(s.ctx, petrepo.CreateInput{Pet: testutils.CreateTestPet("pet_1", "player_1")})
	s.Require().NoError(err)

	chatRepo := chat.NewRedisRepository(client)
	slow, err := playground.NewOrchestrator(&playground.Config{
		PetRepo:          petRepo,
		ChatRepo:         chatRepo,
		NotificationRepo: notification.NewRedisRepository(client),
		ChatLatency:      time.Second,
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	_, err = slow.SendMessage(ctx, &playground.SendMessageInput{PlayerID: "player_1", PetID: "pet_1", Text: "hello"})
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(err))

	stored, err := chatRepo.List(s.ctx, chat.ListInput{PetID: "pet_1"})
	s.Require().NoError(err)
	s.Require().Len(stored.Messages, 3)
	s.Equal("hello", stored.Messages[2].Text)
	s.Equal(petoverse.MessageUser, stored.Messages[2].Type)
}

func (s *OrchestratorTestSuite) TestPlayWithToy() {
	s.Run("raises happiness and capped at the maximum", func() {
		out, err := s.svc.PlayWithToy(s.ctx, &playground.PlayWithToyInput{PlayerID: "player_1", PetID: "pet_1", ToyID: "ball"})
		s.Require().NoError(err)
		s.Equal(int32(95), out.Pet.Stats.Happiness)
		s.Equal("Your pet is playing with the Cosmic Ball! Happiness +10 ✨", out.Message.Text)

		out, err = s.svc.PlayWithToy(s.ctx, &playground.PlayWithToyInput{PlayerID: "player_1", PetID: "pet_1", ToyID: "music"})
		s.Require().NoError(err)
		s.Equal(int32(petoverse.MaxStat), out.Pet.Stats.Happiness)

		stored, err := s.petRepo.Get(s.ctx, petrepo.GetInput{ID: "pet_1"})
		s.Require().NoError(err)
		s.Equal(int32(petoverse.MaxStat), stored.Pet.Stats.Happiness)
	})

	s.Run("unknown toy", func() {
		_, err := s.svc.PlayWithToy(s.ctx, &playground.PlayWithToyInput{PlayerID: "player_1", PetID: "pet_1", ToyID: "yo-yo"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestTrainPet() {
	var trained []string
	s.bus.SubscribeFunc(eventbus.PetTrained, 0, func(_ context.Context, e events.Event) error {
		trained = append(trained, e.Target().GetID())
		return nil
	})

	out, err := s.svc.TrainPet(s.ctx, &playground.TrainPetInput{PlayerID: "player_1", PetID: "pet_1", Command: "fetch"})
	s.Require().NoError(err)
	s.True(out.Learned)
	s.Equal([]string{"sit", "roll", "fetch"}, out.Pet.Commands)
	s.Equal([]string{"fetch"}, out.Pet.TrainedWords)

	again, err := s.svc.TrainPet(s.ctx, &playground.TrainPetInput{PlayerID: "player_1", PetID: "pet_1", Command: "fetch"})
	s.Require().NoError(err)
	s.False(again.Learned)
	s.Len(again.Pet.Commands, 3)
	s.Equal([]string{"pet_1"}, trained)
}

func (s *OrchestratorTestSuite) TestListNotifications() {
	for _, msg := range []string{"first", "second"} {
		_, err := s.notificationRepo.Add(s.ctx, notification.AddInput{
			Notification: petoverse.Notification{PetID: "pet_1", Message: msg},
		})
		s.Require().NoError(err)
	}

	out, err := s.svc.ListNotifications(s.ctx, &playground.ListNotificationsInput{PlayerID: "player_1", PetID: "pet_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Notifications, 2)
	s.Equal("second", out.Notifications[0].Message)
}

func (s *OrchestratorTestSuite) TestOtherPlayersPetIsHidden() {
	calls := map[string]func() error{
		"send message": func() error {
			_, err := s.svc.SendMessage(s.ctx, &playground.SendMessageInput{PlayerID: "player_2", PetID: "pet_1", Text: "hi"})
			return err
		},
		"play with toy": func() error {
			_, err := s.svc.PlayWithToy(s.ctx, &playground.PlayWithToyInput{PlayerID: "player_2", PetID: "pet_1", ToyID: "ball"})
			return err
		},
		"train": func() error {
			_, err := s.svc.TrainPet(s.ctx, &playground.TrainPetInput{PlayerID: "player_2", PetID: "pet_1", Command: "bite"})
			return err
		},
		"history": func() error {
			_, err := s.svc.History(s.ctx, &playground.HistoryInput{PlayerID: "player_2", PetID: "pet_1"})
			return err
		},
		"notifications": func() error {
			_, err := s.svc.ListNotifications(s.ctx, &playground.ListNotificationsInput{PlayerID: "player_2", PetID: "pet_1"})
			return err
		},
	}

	for name, call := range calls {
		s.Run(name, func() {
			s.True(errors.IsNotFound(call()))
		})
	}

	stored, err := s.petRepo.Get(s.ctx, petrepo.GetInput{ID: "pet_1"})
	s.Require().NoError(err)
	s.NotContains(stored.Pet.Commands, "bite")
	s.Equal(testutils.CreateTestPet("pet_1", "player_1").Stats.Happiness, stored.Pet.Stats.Happiness)

	history, err := s.chatRepo.List(s.ctx, chat.ListInput{PetID: "pet_1"})
	s.Require().NoError(err)
	s.Empty(history.Messages)
}

func (s *OrchestratorTestSuite) TestRequiresPlayer() {
	_, err := s.svc.TrainPet(s.ctx, &playground.TrainPetInput{PetID: "pet_1", Command: "sit"})
	s.True(errors.IsInvalidArgument(err))
}
