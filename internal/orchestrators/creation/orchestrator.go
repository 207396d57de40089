// Package creation runs the three-step pet creation wizard over drafts
// stored one per player
package creation

//go:generate mockgen -destination=mock/mock_service.go -package=creationmock github.com/KirkDiggler/petoverse-api/internal/orchestrators/creation Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/draft"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/flow"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/idgen"
	creationdraft "github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft"
)

// DefaultDraftTTL is how long a draft survives after its last edit
const DefaultDraftTTL = 24 * time.Hour

// Service defines the interface for the creation wizard
type Service interface {
	ListArchetypes(ctx context.Context, input *ListArchetypesInput) (*ListArchetypesOutput, error)

	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetPlayerDraft(ctx context.Context, input *GetPlayerDraftInput) (*GetPlayerDraftOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Step edits
	SelectArchetype(ctx context.Context, input *SelectArchetypeInput) (*SelectArchetypeOutput, error)
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)

	// Navigation
	AdvanceStep(ctx context.Context, input *AdvanceStepInput) (*AdvanceStepOutput, error)
	RetreatStep(ctx context.Context, input *RetreatStepInput) (*RetreatStepOutput, error)
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)
}

// Config holds the dependencies for the creation orchestrator
type Config struct {
	DraftRepo   creationdraft.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
	Logger      *logger.Logger
	DraftTTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DraftTTL < 0 {
		vb.Field("DraftTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	draftRepo creationdraft.Repository
	idGen     idgen.Generator
	clock     clock.Clock
	bus       events.EventBus
	log       *logger.Logger
	draftTTL  time.Duration
}

// NewOrchestrator creates a new creation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = DefaultDraftTTL
	}

	return &orchestrator{
		draftRepo: cfg.DraftRepo,
		idGen:     cfg.IDGenerator,
		clock:     c,
		bus:       cfg.EventBus,
		log:       cfg.Logger.With("orchestrator", "creation"),
		draftTTL:  ttl,
	}, nil
}

func (o *orchestrator) ListArchetypes(_ context.Context, _ *ListArchetypesInput) (*ListArchetypesOutput, error) {
	return &ListArchetypesOutput{Archetypes: catalog.Archetypes()}, nil
}

func (o *orchestrator) CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	now := o.clock.Now()
	d := &petoverse.CreationDraft{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		Step:      petoverse.StepSelectType,
		Pet:       draft.New(),
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
		ExpiresAt: now.Add(o.draftTTL).Unix(),
	}

	if _, err := o.draftRepo.Create(ctx, creationdraft.CreateInput{Draft: d}); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	return &CreateDraftOutput{Draft: d}, nil
}

func (o *orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}
	return &GetDraftOutput{Draft: d}, nil
}

func (o *orchestrator) GetPlayerDraft(ctx context.Context, input *GetPlayerDraftInput) (*GetPlayerDraftOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.draftRepo.GetByPlayerID(ctx, creationdraft.GetByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetPlayerDraftOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get draft for player %s", input.PlayerID)
	}

	return &GetPlayerDraftOutput{Draft: out.Draft, Found: true}, nil
}

func (o *orchestrator) DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}

	if _, err := o.draftRepo.Delete(ctx, creationdraft.DeleteInput{ID: d.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft %s", d.ID)
	}

	return &DeleteDraftOutput{}, nil
}

func (o *orchestrator) SelectArchetype(ctx context.Context, input *SelectArchetypeInput) (*SelectArchetypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := catalog.Archetype(input.ArchetypeID); !ok {
		return nil, errors.InvalidArgumentf("unknown pet type %q", input.ArchetypeID)
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Pet = draft.SelectArchetype(d.Pet, input.ArchetypeID)
	if err := o.save(ctx, d); err != nil {
		return nil, err
	}

	return &SelectArchetypeOutput{Draft: d}, nil
}

func (o *orchestrator) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Pet = draft.SetName(d.Pet, input.Name)
	if err := o.save(ctx, d); err != nil {
		return nil, err
	}

	return &UpdateNameOutput{Draft: d}, nil
}

func (o *orchestrator) AdvanceStep(ctx context.Context, input *AdvanceStepInput) (*AdvanceStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}

	next, outcome := flow.At(d.Step).Advance(d.Pet)

	switch {
	case outcome.Completed:
		return o.complete(ctx, d, outcome.Draft)
	case outcome.Advanced:
		d.Step = next.Step
		if err := o.save(ctx, d); err != nil {
			return nil, err
		}
		return &AdvanceStepOutput{Draft: d, Advanced: true}, nil
	default:
		return &AdvanceStepOutput{Draft: d}, nil
	}
}

// complete hands the finished draft to styling as a transfer token; the
// stored draft is no longer needed
func (o *orchestrator) complete(ctx context.Context, d *petoverse.CreationDraft, pet petoverse.DraftPet) (*AdvanceStepOutput, error) {
	token := draft.Encode(pet)

	if _, err := o.draftRepo.Delete(ctx, creationdraft.DeleteInput{ID: d.ID}); err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to clear completed draft %s", d.ID)
	}

	if err := eventbus.Publish(ctx, o.bus, eventbus.DraftCompleted,
		eventbus.Player(d.PlayerID), eventbus.Draft(d.ID),
		map[string]any{"archetype_id": pet.ArchetypeID, "name": pet.Name}); err != nil {
		o.log.Warn("event publish failed", "event", eventbus.DraftCompleted, "error", err.Error())
	}

	o.log.Debug("draft completed", "draft_id", d.ID, "player_id", d.PlayerID, "archetype_id", pet.ArchetypeID)

	return &AdvanceStepOutput{
		Draft:         d,
		Completed:     true,
		TransferToken: token,
		NextScreen:    petoverse.ScreenPetStyling,
	}, nil
}

func (o *orchestrator) RetreatStep(ctx context.Context, input *RetreatStepInput) (*RetreatStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}

	prev, exited := flow.At(d.Step).Retreat()
	if exited {
		return &RetreatStepOutput{Draft: d, Exited: true}, nil
	}

	d.Step = prev.Step
	if err := o.save(ctx, d); err != nil {
		return nil, err
	}

	return &RetreatStepOutput{Draft: d}, nil
}

func (o *orchestrator) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.load(ctx, input.PlayerID, input.DraftID)
	if err != nil {
		return nil, err
	}

	archetype := catalog.ArchetypeOrDefault(d.Pet.ArchetypeID)

	return &GetSummaryOutput{
		Summary: Summary{
			Name:          d.Pet.Name,
			ArchetypeID:   archetype.ID,
			ArchetypeName: archetype.Name,
			Emoji:         archetype.Emoji,
			Rarity:        archetype.Rarity.Display(),
			Description:   archetype.Description,
			BaseStats:     archetype.BaseStats,
		},
		Progress: flow.At(d.Step).Progress(),
	}, nil
}

// load fetches a draft the player owns. Someone else's draft reads as missing.
func (o *orchestrator) load(ctx context.Context, playerID, draftID string) (*petoverse.CreationDraft, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.draftRepo.Get(ctx, creationdraft.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get draft %s", draftID)
	}
	if out.Draft.PlayerID != playerID {
		return nil, errors.NotFoundf("draft %s not found", draftID)
	}
	return out.Draft, nil
}

func (o *orchestrator) save(ctx context.Context, d *petoverse.CreationDraft) error {
	now := o.clock.Now()
	d.UpdatedAt = now.Unix()
	d.ExpiresAt = now.Add(o.draftTTL).Unix()
	if _, err := o.draftRepo.Update(ctx, creationdraft.UpdateInput{Draft: d}); err != nil {
		return errors.Wrapf(err, "failed to update draft %s", d.ID)
	}
	return nil
}
