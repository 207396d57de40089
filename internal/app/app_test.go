package app_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/app"
	"github.com/KirkDiggler/petoverse-api/internal/config"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/redis"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/session"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

const bufSize = 1024 * 1024

type RoundTripTestSuite struct {
	suite.Suite
	cleanup  func()
	redis    redis.Client
	server   *grpc.Server
	conn     *grpc.ClientConn
	auth     apiv1alpha1.AuthServiceClient
	pets     apiv1alpha1.PetServiceClient
	world    apiv1alpha1.WorldServiceClient
	testCtx  context.Context
	cancelFn context.CancelFunc
}

func (s *RoundTripTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.redis = client

	cfg := config.Default()
	cfg.Latency = config.LatencyConfig{
		Login:  10 * time.Millisecond,
		Signup: 10 * time.Millisecond,
		Chat:   10 * time.Millisecond,
		Claim:  10 * time.Millisecond,
	}
	cfg.Thinker.Interval = 0

	a, err := app.New(&app.Options{
		Config:     cfg,
		Redis:      client,
		Logger:     logger.Nop(),
		DiceRoller: testutils.NewFixedRoller(7, 12),
	})
	s.Require().NoError(err)
	s.False(a.Thinker.Enabled())

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	a.Register(s.server)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn

	s.auth = apiv1alpha1.NewAuthServiceClient(conn)
	s.pets = apiv1alpha1.NewPetServiceClient(conn)
	s.world = apiv1alpha1.NewWorldServiceClient(conn)
	s.testCtx, s.cancelFn = context.WithTimeout(context.Background(), 5*time.Second)
}

func (s *RoundTripTestSuite) TearDownTest() {
	s.cancelFn()
	_ = s.conn.Close()
	s.server.Stop()
	s.cleanup()
}

func (s *RoundTripTestSuite) login() string {
	resp, err := s.auth.Login(s.testCtx, &apiv1alpha1.LoginRequest{
		Email:    "test@example.com",
		Password: "password",
	})
	s.Require().NoError(err)
	return resp.Session.ID
}

// sessionFor stores a live session for another player
func (s *RoundTripTestSuite) sessionFor(id, email string) string {
	now := time.Now()
	_, err := session.NewRedisRepository(s.redis).Create(s.testCtx, session.CreateInput{
		Session: &petoverse.Session{ID: id, Email: email, CreatedAt: now.Unix(), ExpiresAt: now.Add(time.Hour).Unix()},
	})
	s.Require().NoError(err)
	return id
}

// savePet runs the wizard to a saved fire dragon named Blaze
func (s *RoundTripTestSuite) savePet(sessionID string) apiv1alpha1.Pet {
	created, err := s.pets.CreateDraft(s.testCtx, &apiv1alpha1.CreateDraftRequest{SessionID: sessionID})
	s.Require().NoError(err)
	draftID := created.Draft.ID

	_, err = s.pets.SelectArchetype(s.testCtx, &apiv1alpha1.SelectArchetypeRequest{SessionID: sessionID, DraftID: draftID, ArchetypeID: "fire-dragon"})
	s.Require().NoError(err)
	_, err = s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	_, err = s.pets.UpdateName(s.testCtx, &apiv1alpha1.UpdateNameRequest{SessionID: sessionID, DraftID: draftID, Name: "Blaze"})
	s.Require().NoError(err)
	_, err = s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	done, err := s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	s.Require().True(done.Completed)

	saved, err := s.pets.SavePet(s.testCtx, &apiv1alpha1.SavePetRequest{SessionID: sessionID, Token: done.TransferToken})
	s.Require().NoError(err)
	return saved.PetToken.Pet
}

func (s *RoundTripTestSuite) TestLogin() {
	s.Run("demo credentials open pet creation", func() {
		resp, err := s.auth.Login(s.testCtx, &apiv1alpha1.LoginRequest{
			Email:    "test@example.com",
			Password: "password",
		})
		s.Require().NoError(err)
		s.Equal(petoverse.ScreenPetCreation, resp.NextScreen)
		s.NotEmpty(resp.Session.ID)
	})

	s.Run("bad credentials stay on login", func() {
		resp, err := s.auth.Login(s.testCtx, &apiv1alpha1.LoginRequest{
			Email:    "x@y.com",
			Password: "bad",
		})
		s.Require().Error(err)
		s.Nil(resp)

		converted := errors.FromGRPCError(err)
		s.True(errors.IsInvalidArgument(converted))
		s.Equal("Invalid email or password.", errors.GetMessage(converted))
	})
}

func (s *RoundTripTestSuite) TestCreationFlow() {
	sessionID := s.login()

	created, err := s.pets.CreateDraft(s.testCtx, &apiv1alpha1.CreateDraftRequest{SessionID: sessionID})
	s.Require().NoError(err)
	draftID := created.Draft.ID
	s.EqualValues(1, created.Draft.Step)

	// Step 1 does not advance without an archetype
	adv, err := s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	s.False(adv.Advanced)

	_, err = s.pets.SelectArchetype(s.testCtx, &apiv1alpha1.SelectArchetypeRequest{
		SessionID:   sessionID,
		DraftID:     draftID,
		ArchetypeID: "fire-dragon",
	})
	s.Require().NoError(err)

	adv, err = s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	s.True(adv.Advanced)

	_, err = s.pets.UpdateName(s.testCtx, &apiv1alpha1.UpdateNameRequest{SessionID: sessionID, DraftID: draftID, Name: "Blaze"})
	s.Require().NoError(err)

	adv, err = s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	s.True(adv.Advanced)
	s.EqualValues(3, adv.Draft.Step)

	summary, err := s.pets.GetSummary(s.testCtx, &apiv1alpha1.GetSummaryRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	s.Equal("Blaze", summary.Summary.Name)
	s.Equal("Fire Dragon", summary.Summary.Archetype.Name)
	s.Equal("Rare", summary.Summary.Archetype.Rarity)

	adv, err = s.pets.AdvanceStep(s.testCtx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	s.Require().NoError(err)
	s.True(adv.Completed)
	s.Equal(petoverse.ScreenPetStyling, adv.NextScreen)
	s.Require().NotEmpty(adv.TransferToken)

	// The completed draft is gone
	_, err = s.pets.GetDraft(s.testCtx, &apiv1alpha1.GetDraftRequest{SessionID: sessionID, DraftID: draftID})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	opened, err := s.pets.OpenStyling(s.testCtx, &apiv1alpha1.OpenStylingRequest{Token: adv.TransferToken})
	s.Require().NoError(err)
	s.Equal("Blaze", opened.Name)
	s.Equal("fire-dragon", opened.Archetype.ID)

	toggled, err := s.pets.ToggleAccessory(s.testCtx, &apiv1alpha1.ToggleAccessoryRequest{
		Token:       opened.Token,
		AccessoryID: "crown",
	})
	s.Require().NoError(err)
	s.Equal([]string{"crown"}, toggled.Cosmetics.Accessories)

	sized, err := s.pets.SetSize(s.testCtx, &apiv1alpha1.SetSizeRequest{Token: toggled.Token, Size: 9})
	s.Require().NoError(err)
	s.InDelta(1.5, sized.Cosmetics.Size, 1e-9)

	saved, err := s.pets.SavePet(s.testCtx, &apiv1alpha1.SavePetRequest{SessionID: sessionID, Token: sized.Token})
	s.Require().NoError(err)
	s.Equal("Blaze", saved.PetToken.Pet.Name)
	s.Equal("test@example.com", saved.PetToken.Pet.PlayerID)
	s.EqualValues(27, saved.PetToken.Pet.Stats.Creativity)
	s.EqualValues(42, saved.PetToken.Pet.Stats.Loyalty)
	s.Equal([]string{"crown"}, saved.PetToken.Pet.Cosmetics.Accessories)

	listed, err := s.pets.ListPets(s.testCtx, &apiv1alpha1.ListPetsRequest{SessionID: sessionID})
	s.Require().NoError(err)
	s.Require().Len(listed.Pets, 1)
	s.Equal(saved.PetToken.Pet.ID, listed.Pets[0].ID)
}

func (s *RoundTripTestSuite) TestClaimReward() {
	sessionID := s.login()

	first, err := s.world.ClaimReward(s.testCtx, &apiv1alpha1.ClaimRewardRequest{
		SessionID: sessionID,
		RewardID:  "2",
	})
	s.Require().NoError(err)
	s.True(first.Found)
	s.False(first.AlreadyClaimed)
	s.True(first.Reward.Claimed)

	second, err := s.world.ClaimReward(s.testCtx, &apiv1alpha1.ClaimRewardRequest{
		SessionID: sessionID,
		RewardID:  "2",
	})
	s.Require().NoError(err)
	s.True(second.AlreadyClaimed)
	s.True(second.Reward.Claimed)

	listed, err := s.world.ListRewards(s.testCtx, &apiv1alpha1.ListRewardsRequest{SessionID: sessionID})
	s.Require().NoError(err)
	for _, r := range listed.Rewards {
		if r.ID == "2" {
			s.True(r.Claimed)
		}
	}

	unknown, err := s.world.ClaimReward(s.testCtx, &apiv1alpha1.ClaimRewardRequest{
		SessionID: sessionID,
		RewardID:  "nope",
	})
	s.Require().NoError(err)
	s.False(unknown.Found)
}

func (s *RoundTripTestSuite) TestRejectsUnknownSession() {
	_, err := s.world.ListRewards(s.testCtx, &apiv1alpha1.ListRewardsRequest{SessionID: "sess_missing"})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(errors.FromGRPCError(err)))
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripTestSuite))
}

func TestNewRequiresConfigAndRedis(t *testing.T) {
	_, err := app.New(&app.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Config")
	assert.Contains(t, err.Error(), "Redis")
}

func (s *RoundTripTestSuite) TestOtherPlayerCannotTouchPet() {
	owner := s.login()
	pet := s.savePet(owner)
	intruder := s.sessionFor("sess_intruder", "intruder@example.com")

	_, err := s.world.TrainPet(s.testCtx, &apiv1alpha1.TrainPetRequest{SessionID: intruder, PetID: pet.ID, Command: "bite"})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.world.PlayWithToy(s.testCtx, &apiv1alpha1.PlayWithToyRequest{SessionID: intruder, PetID: pet.ID, ToyID: "ball"})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.world.SendMessage(s.testCtx, &apiv1alpha1.SendMessageRequest{SessionID: intruder, PetID: pet.ID, Text: "mine now"})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.world.GetHistory(s.testCtx, &apiv1alpha1.GetHistoryRequest{SessionID: intruder, PetID: pet.ID})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.pets.GetPet(s.testCtx, &apiv1alpha1.GetPetRequest{SessionID: intruder, PetID: pet.ID})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.world.TrainPet(s.testCtx, &apiv1alpha1.TrainPetRequest{PetID: pet.ID, Command: "bite"})
	s.True(errors.IsUnauthenticated(errors.FromGRPCError(err)))

	card, err := s.pets.GetPet(s.testCtx, &apiv1alpha1.GetPetRequest{SessionID: owner, PetID: pet.ID})
	s.Require().NoError(err)
	s.NotContains(card.PetToken.Pet.Commands, "bite")
	s.Equal(pet.Stats.Happiness, card.PetToken.Pet.Stats.Happiness)
}

func (s *RoundTripTestSuite) TestOtherPlayerCannotTouchDraft() {
	owner := s.login()
	created, err := s.pets.CreateDraft(s.testCtx, &apiv1alpha1.CreateDraftRequest{SessionID: owner})
	s.Require().NoError(err)
	draftID := created.Draft.ID
	intruder := s.sessionFor("sess_intruder", "intruder@example.com")

	_, err = s.pets.DeleteDraft(s.testCtx, &apiv1alpha1.DeleteDraftRequest{SessionID: intruder, DraftID: draftID})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.pets.SelectArchetype(s.testCtx, &apiv1alpha1.SelectArchetypeRequest{SessionID: intruder, DraftID: draftID, ArchetypeID: "cosmic-cat"})
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	_, err = s.pets.DeleteDraft(s.testCtx, &apiv1alpha1.DeleteDraftRequest{DraftID: draftID})
	s.True(errors.IsUnauthenticated(errors.FromGRPCError(err)))

	got, err := s.pets.GetDraft(s.testCtx, &apiv1alpha1.GetDraftRequest{SessionID: owner, DraftID: draftID})
	s.Require().NoError(err)
	s.Empty(got.Draft.ArchetypeID)
}

func (s *RoundTripTestSuite) TestResumeDraft() {
	sessionID := s.login()

	none, err := s.pets.GetPlayerDraft(s.testCtx, &apiv1alpha1.GetPlayerDraftRequest{SessionID: sessionID})
	s.Require().NoError(err)
	s.False(none.Found)

	created, err := s.pets.CreateDraft(s.testCtx, &apiv1alpha1.CreateDraftRequest{SessionID: sessionID})
	s.Require().NoError(err)
	_, err = s.pets.SelectArchetype(s.testCtx, &apiv1alpha1.SelectArchetypeRequest{SessionID: sessionID, DraftID: created.Draft.ID, ArchetypeID: "crystal-fox"})
	s.Require().NoError(err)

	resumed, err := s.pets.GetPlayerDraft(s.testCtx, &apiv1alpha1.GetPlayerDraftRequest{SessionID: s.login()})
	s.Require().NoError(err)
	s.True(resumed.Found)
	s.Equal(created.Draft.ID, resumed.Draft.ID)
	s.Equal("crystal-fox", resumed.Draft.ArchetypeID)
}
