package creation_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/petoverse-api/internal/draft"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/creation"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/petoverse-api/internal/pkg/idgen/mock"
	creationdraft "github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft"
	creationdraftmock "github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft/mock"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
	"github.com/KirkDiggler/petoverse-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	draftRepo *creationdraftmock.MockRepository
	idGen     *idgenmock.MockGenerator
	clock     *clock.Fixed
	bus       events.EventBus
	svc       creation.Service
	ctx       context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.draftRepo = creationdraftmock.NewMockRepository(s.ctrl)
	s.idGen = idgenmock.NewMockGenerator(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	s.bus = events.NewBus()
	s.ctx = context.Background()

	svc, err := creation.NewOrchestrator(&creation.Config{
		DraftRepo:   s.draftRepo,
		IDGenerator: s.idGen,
		Clock:       s.clock,
		EventBus:    s.bus,
		DraftTTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectGet stubs the repository to return d for its id
func (s *OrchestratorTestSuite) expectGet(d *petoverse.CreationDraft) {
	mocks.ExpectDraftGet(gomock.Any(), s.draftRepo, d.ID, d, nil)
}

func (s *OrchestratorTestSuite) expectUpdate() {
	mocks.ExpectDraftUpdate(gomock.Any(), s.draftRepo)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := creation.NewOrchestrator(&creation.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "DraftRepo")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestListArchetypes() {
	out, err := s.svc.ListArchetypes(s.ctx, &creation.ListArchetypesInput{})
	s.Require().NoError(err)
	s.Len(out.Archetypes, 4)
	s.Equal("cosmic-cat", out.Archetypes[0].ID)
}

func (s *OrchestratorTestSuite) TestCreateDraft() {
	s.Run("starts at step one with default cosmetics", func() {
		s.idGen.EXPECT().Generate().Return("draft_1")
		s.draftRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in creationdraft.CreateInput) (*creationdraft.CreateOutput, error) {
				return &creationdraft.CreateOutput{Draft: in.Draft}, nil
			})

		out, err := s.svc.CreateDraft(s.ctx, &creation.CreateDraftInput{PlayerID: "player_1"})
		s.Require().NoError(err)
		s.Equal("draft_1", out.Draft.ID)
		s.Equal(petoverse.StepSelectType, out.Draft.Step)
		s.Empty(out.Draft.Pet.ArchetypeID)
		s.Equal("orange", out.Draft.Pet.Cosmetics.PrimaryColor)
		s.Equal(s.clock.Now().Add(time.Hour).Unix(), out.Draft.ExpiresAt)
	})

	s.Run("requires a player", func() {
		_, err := s.svc.CreateDraft(s.ctx, &creation.CreateDraftInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("surfaces storage failures", func() {
		s.idGen.EXPECT().Generate().Return("draft_2")
		s.draftRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("boom"))

		_, err := s.svc.CreateDraft(s.ctx, &creation.CreateDraftInput{PlayerID: "player_1"})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestGetDraftNotFound() {
	mocks.ExpectDraftGet(gomock.Any(), s.draftRepo, "missing", nil, errors.NotFound("draft not found"))

	_, err := s.svc.GetDraft(s.ctx, &creation.GetDraftInput{PlayerID: "player_1", DraftID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSelectArchetype() {
	s.Run("stores a known archetype", func() {
		d := testutils.CreateTestDraft("draft_1", "player_1")
		s.expectGet(d)
		s.expectUpdate()

		out, err := s.svc.SelectArchetype(s.ctx, &creation.SelectArchetypeInput{PlayerID: "player_1", DraftID: "draft_1", ArchetypeID: "crystal-fox"})
		s.Require().NoError(err)
		s.Equal("crystal-fox", out.Draft.Pet.ArchetypeID)
	})

	s.Run("rejects an unknown archetype before touching storage", func() {
		_, err := s.svc.SelectArchetype(s.ctx, &creation.SelectArchetypeInput{PlayerID: "player_1", DraftID: "draft_1", ArchetypeID: "unicorn"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateNameTruncates() {
	d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageTypeSelected)
	s.expectGet(d)
	s.expectUpdate()

	out, err := s.svc.UpdateName(s.ctx, &creation.UpdateNameInput{PlayerID: "player_1", DraftID: "draft_1", Name: "Abcdefghijklmnopqrstuvwxyz"})
	s.Require().NoError(err)
	s.Equal("Abcdefghijklmnopqrst", out.Draft.Pet.Name)
}

func (s *OrchestratorTestSuite) TestAdvanceStep() {
	s.Run("no-op without an archetype", func() {
		d := testutils.CreateTestDraft("draft_1", "player_1")
		s.expectGet(d)

		out, err := s.svc.AdvanceStep(s.ctx, &creation.AdvanceStepInput{PlayerID: "player_1", DraftID: "draft_1"})
		s.Require().NoError(err)
		s.False(out.Advanced)
		s.Equal(petoverse.StepSelectType, out.Draft.Step)
	})

	s.Run("moves to naming once a type is chosen", func() {
		d := testutils.CreateTestDraft("draft_1", "player_1")
		d.Pet.ArchetypeID = "fire-dragon"
		s.expectGet(d)
		s.expectUpdate()

		out, err := s.svc.AdvanceStep(s.ctx, &creation.AdvanceStepInput{PlayerID: "player_1", DraftID: "draft_1"})
		s.Require().NoError(err)
		s.True(out.Advanced)
		s.Equal(petoverse.StepName, out.Draft.Step)
	})

	s.Run("blank name holds the naming step", func() {
		d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageTypeSelected)
		d.Pet.Name = "   "
		s.expectGet(d)

		out, err := s.svc.AdvanceStep(s.ctx, &creation.AdvanceStepInput{PlayerID: "player_1", DraftID: "draft_1"})
		s.Require().NoError(err)
		s.False(out.Advanced)
		s.Equal(petoverse.StepName, out.Draft.Step)
	})
}

func (s *OrchestratorTestSuite) TestAdvanceStepCompletes() {
	var completed []string
	s.bus.SubscribeFunc(eventbus.DraftCompleted, 0, func(_ context.Context, e events.Event) error {
		completed = append(completed, e.Target().GetID())
		return nil
	})

	d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageNamed)
	s.expectGet(d)
	mocks.ExpectDraftDelete(gomock.Any(), s.draftRepo, "draft_1", nil)

	out, err := s.svc.AdvanceStep(s.ctx, &creation.AdvanceStepInput{PlayerID: "player_1", DraftID: "draft_1"})
	s.Require().NoError(err)
	s.True(out.Completed)
	s.Equal(petoverse.ScreenPetStyling, out.NextScreen)
	s.Equal([]string{"draft_1"}, completed)

	carried := draft.Decode(out.TransferToken)
	s.Equal("fire-dragon", carried.ArchetypeID)
	s.Equal(testutils.TestPetName, carried.Name)
}

func (s *OrchestratorTestSuite) TestRetreatStep() {
	s.Run("steps back from naming", func() {
		d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageTypeSelected)
		s.expectGet(d)
		s.expectUpdate()

		out, err := s.svc.RetreatStep(s.ctx, &creation.RetreatStepInput{PlayerID: "player_1", DraftID: "draft_1"})
		s.Require().NoError(err)
		s.False(out.Exited)
		s.Equal(petoverse.StepSelectType, out.Draft.Step)
		s.Equal("fire-dragon", out.Draft.Pet.ArchetypeID)
	})

	s.Run("exits from the first step", func() {
		d := testutils.CreateTestDraft("draft_1", "player_1")
		s.expectGet(d)

		out, err := s.svc.RetreatStep(s.ctx, &creation.RetreatStepInput{PlayerID: "player_1", DraftID: "draft_1"})
		s.Require().NoError(err)
		s.True(out.Exited)
	})
}

func (s *OrchestratorTestSuite) TestGetSummary() {
	d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageNamed)
	s.expectGet(d)

	out, err := s.svc.GetSummary(s.ctx, &creation.GetSummaryInput{PlayerID: "player_1", DraftID: "draft_1"})
	s.Require().NoError(err)
	s.Equal("Blaze", out.Summary.Name)
	s.Equal("Fire Dragon", out.Summary.ArchetypeName)
	s.Equal("Rare", out.Summary.Rarity)
	s.InDelta(1.0, out.Progress, 0.001)
}

func (s *OrchestratorTestSuite) TestDeleteDraft() {
	s.expectGet(testutils.CreateTestDraft("draft_1", "player_1"))
	mocks.ExpectDraftDelete(gomock.Any(), s.draftRepo, "draft_1", nil)

	_, err := s.svc.DeleteDraft(s.ctx, &creation.DeleteDraftInput{PlayerID: "player_1", DraftID: "draft_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestOtherPlayersDraftIsHidden() {
	d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageTypeSelected)
	mocks.ExpectDraftGet(gomock.Any(), s.draftRepo, "draft_1", d, nil).AnyTimes()

	calls := map[string]func() error{
		"get": func() error {
			_, err := s.svc.GetDraft(s.ctx, &creation.GetDraftInput{PlayerID: "player_2", DraftID: "draft_1"})
			return err
		},
		"delete": func() error {
			_, err := s.svc.DeleteDraft(s.ctx, &creation.DeleteDraftInput{PlayerID: "player_2", DraftID: "draft_1"})
			return err
		},
		"select archetype": func() error {
			_, err := s.svc.SelectArchetype(s.ctx, &creation.SelectArchetypeInput{PlayerID: "player_2", DraftID: "draft_1", ArchetypeID: "cosmic-cat"})
			return err
		},
		"update name": func() error {
			_, err := s.svc.UpdateName(s.ctx, &creation.UpdateNameInput{PlayerID: "player_2", DraftID: "draft_1", Name: "Mine"})
			return err
		},
		"advance": func() error {
			_, err := s.svc.AdvanceStep(s.ctx, &creation.AdvanceStepInput{PlayerID: "player_2", DraftID: "draft_1"})
			return err
		},
		"retreat": func() error {
			_, err := s.svc.RetreatStep(s.ctx, &creation.RetreatStepInput{PlayerID: "player_2", DraftID: "draft_1"})
			return err
		},
		"summary": func() error {
			_, err := s.svc.GetSummary(s.ctx, &creation.GetSummaryInput{PlayerID: "player_2", DraftID: "draft_1"})
			return err
		},
	}

	for name, call := range calls {
		s.Run(name, func() {
			s.True(errors.IsNotFound(call()))
		})
	}
}

func (s *OrchestratorTestSuite) TestRequiresPlayer() {
	_, err := s.svc.GetDraft(s.ctx, &creation.GetDraftInput{DraftID: "draft_1"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEditsPushExpiryOut() {
	d := testutils.CreateTestDraft("draft_1", "player_1")
	d.UpdatedAt = s.clock.Now().Add(-30 * time.Minute).Unix()
	d.ExpiresAt = s.clock.Now().Add(30 * time.Minute).Unix()
	s.expectGet(d)

	var stored *petoverse.CreationDraft
	s.draftRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in creationdraft.UpdateInput) (*creationdraft.UpdateOutput, error) {
			stored = in.Draft
			return &creationdraft.UpdateOutput{Draft: in.Draft}, nil
		})

	_, err := s.svc.SelectArchetype(s.ctx, &creation.SelectArchetypeInput{PlayerID: "player_1", DraftID: "draft_1", ArchetypeID: "shadow-wolf"})
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(s.clock.Now().Unix(), stored.UpdatedAt)
	s.Equal(s.clock.Now().Add(time.Hour).Unix(), stored.ExpiresAt)
}

func (s *OrchestratorTestSuite) TestGetPlayerDraft() {
	s.Run("returns the live draft", func() {
		d := testutils.CreateTestDraftAtStage("draft_1", "player_1", testutils.StageTypeSelected)
		s.draftRepo.EXPECT().
			GetByPlayerID(gomock.Any(), creationdraft.GetByPlayerIDInput{PlayerID: "player_1"}).
			Return(&creationdraft.GetByPlayerIDOutput{Draft: d}, nil)

		out, err := s.svc.GetPlayerDraft(s.ctx, &creation.GetPlayerDraftInput{PlayerID: "player_1"})
		s.Require().NoError(err)
		s.True(out.Found)
		s.Equal("draft_1", out.Draft.ID)
		s.Equal(petoverse.StepName, out.Draft.Step)
	})

	s.Run("nothing in progress", func() {
		s.draftRepo.EXPECT().
			GetByPlayerID(gomock.Any(), creationdraft.GetByPlayerIDInput{PlayerID: "player_2"}).
			Return(nil, errors.NotFound("no draft"))

		out, err := s.svc.GetPlayerDraft(s.ctx, &creation.GetPlayerDraftInput{PlayerID: "player_2"})
		s.Require().NoError(err)
		s.False(out.Found)
		s.Nil(out.Draft)
	})

	s.Run("storage failure", func() {
		s.draftRepo.EXPECT().
			GetByPlayerID(gomock.Any(), gomock.Any()).
			Return(nil, errors.Internal("boom"))

		_, err := s.svc.GetPlayerDraft(s.ctx, &creation.GetPlayerDraftInput{PlayerID: "player_3"})
		s.True(errors.IsInternal(err))
	})

	s.Run("requires a player", func() {
		_, err := s.svc.GetPlayerDraft(s.ctx, &creation.GetPlayerDraftInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}
