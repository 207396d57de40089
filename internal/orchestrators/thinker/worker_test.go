package thinker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/thinker"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/notification"
	notificationmock "github.com/KirkDiggler/petoverse-api/internal/repositories/notification/mock"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
	petmock "github.com/KirkDiggler/petoverse-api/internal/repositories/pet/mock"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

type WorkerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	petRepo          *petmock.MockRepository
	notificationRepo *notificationmock.MockRepository
	clock            *clock.Fixed
	ctx              context.Context
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.petRepo = petmock.NewMockRepository(s.ctrl)
	s.notificationRepo = notificationmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
}

func (s *WorkerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WorkerTestSuite) newWorker(interval time.Duration) *thinker.Worker {
	w, err := thinker.NewWorker(&thinker.Config{
		PetRepo:          s.petRepo,
		NotificationRepo: s.notificationRepo,
		DiceRoller:       testutils.NewFixedRoller(1),
		Clock:            s.clock,
		Interval:         interval,
	})
	s.Require().NoError(err)
	return w
}

func (s *WorkerTestSuite) TestConfigValidation() {
	_, err := thinker.NewWorker(&thinker.Config{Interval: -time.Second})
	s.Require().Error(err)
	s.Contains(err.Error(), "PetRepo")
	s.Contains(err.Error(), "Interval")
}

func (s *WorkerTestSuite) TestThinkNotifiesEveryPet() {
	pets := []*petoverse.Pet{testutils.CreateTestPet("pet_1", "player_1"), testutils.CreateTestPet("pet_2", "player_2")}
	s.petRepo.EXPECT().ListAll(gomock.Any(), petrepo.ListAllInput{}).Return(&petrepo.ListAllOutput{Pets: pets}, nil)

	var stored []petoverse.Notification
	s.notificationRepo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in notification.AddInput) (*notification.AddOutput, error) {
			stored = append(stored, in.Notification)
			return &notification.AddOutput{}, nil
		}).
		Times(2)

	n, err := s.newWorker(time.Hour).Think(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)
	s.Equal("pet_1", stored[0].PetID)
	s.Equal("Blaze is thinking about you", stored[0].Message)
	s.Equal(s.clock.Now().Unix(), stored[1].CreatedAt)
}

func (s *WorkerTestSuite) TestThinkSkipsFailedPets() {
	pets := []*petoverse.Pet{testutils.CreateTestPet("pet_1", "player_1"), testutils.CreateTestPet("pet_2", "player_2")}
	s.petRepo.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(&petrepo.ListAllOutput{Pets: pets}, nil)
	gomock.InOrder(
		s.notificationRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("boom")),
		s.notificationRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(&notification.AddOutput{}, nil),
	)

	n, err := s.newWorker(time.Hour).Think(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *WorkerTestSuite) TestThinkListFailure() {
	s.petRepo.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err := s.newWorker(time.Hour).Think(s.ctx)
	s.Error(err)
}

func (s *WorkerTestSuite) TestRunDisabledReturnsImmediately() {
	w := s.newWorker(0)
	s.False(w.Enabled())

	done := make(chan struct{})
	go func() {
		w.Run(s.ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("disabled worker did not return")
	}
}

func (s *WorkerTestSuite) TestRunStopsOnCancel() {
	s.petRepo.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(&petrepo.ListAllOutput{}, nil).AnyTimes()

	w := s.newWorker(5 * time.Millisecond)
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("worker did not stop")
	}
}
