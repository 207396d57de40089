// Package styling edits cosmetics on a transfer token and turns a finished
// token into a saved pet
package styling

//go:generate mockgen -destination=mock/mock_service.go -package=stylingmock github.com/KirkDiggler/petoverse-api/internal/orchestrators/styling Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/cosmetics"
	"github.com/KirkDiggler/petoverse-api/internal/draft"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/idgen"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
)

// Starting stats for a saved pet. Creativity and loyalty add a d20 to their base.
const (
	startingHappiness     = 85
	startingMaxExperience = 100
	creativityBase        = 20
	loyaltyBase           = 30
	statDie               = 20

	learningLogDateFormat = "Jan 2, 2006"
)

// Service defines the interface for pet styling and saving
type Service interface {
	OpenStyling(ctx context.Context, input *OpenStylingInput) (*OpenStylingOutput, error)

	SetPrimaryColor(ctx context.Context, input *SetPrimaryColorInput) (*SetPrimaryColorOutput, error)
	SetSecondaryColor(ctx context.Context, input *SetSecondaryColorInput) (*SetSecondaryColorOutput, error)
	SetSize(ctx context.Context, input *SetSizeInput) (*SetSizeOutput, error)
	ToggleAccessory(ctx context.Context, input *ToggleAccessoryInput) (*ToggleAccessoryOutput, error)

	SavePet(ctx context.Context, input *SavePetInput) (*SavePetOutput, error)
	GetPet(ctx context.Context, input *GetPetInput) (*GetPetOutput, error)
	ListPets(ctx context.Context, input *ListPetsInput) (*ListPetsOutput, error)
}

// Config holds the dependencies for the styling orchestrator
type Config struct {
	PetRepo     petrepo.Repository
	IDGenerator idgen.Generator
	DiceRoller  dice.Roller
	Clock       clock.Clock
	EventBus    events.EventBus
	Logger      *logger.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PetRepo == nil {
		vb.RequiredField("PetRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	petRepo petrepo.Repository
	idGen   idgen.Generator
	roller  dice.Roller
	clock   clock.Clock
	bus     events.EventBus
	log     *logger.Logger
}

// NewOrchestrator creates a new styling orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		petRepo: cfg.PetRepo,
		idGen:   cfg.IDGenerator,
		roller:  roller,
		clock:   c,
		bus:     cfg.EventBus,
		log:     cfg.Logger.With("orchestrator", "styling"),
	}, nil
}

func (o *orchestrator) OpenStyling(_ context.Context, input *OpenStylingInput) (*OpenStylingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d := draft.Decode(input.Token)

	return &OpenStylingOutput{
		Preview: Preview{
			Token:     draft.Encode(d),
			Name:      d.Name,
			Archetype: catalog.ArchetypeOrDefault(d.ArchetypeID),
			Cosmetics: d.Cosmetics,
		},
	}, nil
}

// edit decodes token, applies fn to its cosmetics and re-encodes
func edit(token string, fn func(petoverse.CosmeticConfig) petoverse.CosmeticConfig) (string, petoverse.CosmeticConfig) {
	d := draft.Decode(token)
	d = draft.SetCosmetics(d, fn(d.Cosmetics))
	return draft.Encode(d), d.Cosmetics
}

func (o *orchestrator) SetPrimaryColor(_ context.Context, input *SetPrimaryColorInput) (*SetPrimaryColorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, c := edit(input.Token, func(c petoverse.CosmeticConfig) petoverse.CosmeticConfig {
		return cosmetics.SetPrimaryColor(c, input.PaletteID)
	})
	return &SetPrimaryColorOutput{Token: token, Cosmetics: c}, nil
}

func (o *orchestrator) SetSecondaryColor(_ context.Context, input *SetSecondaryColorInput) (*SetSecondaryColorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, c := edit(input.Token, func(c petoverse.CosmeticConfig) petoverse.CosmeticConfig {
		return cosmetics.SetSecondaryColor(c, input.PaletteID)
	})
	return &SetSecondaryColorOutput{Token: token, Cosmetics: c}, nil
}

func (o *orchestrator) SetSize(_ context.Context, input *SetSizeInput) (*SetSizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, c := edit(input.Token, func(c petoverse.CosmeticConfig) petoverse.CosmeticConfig {
		return cosmetics.SetSize(c, input.Size)
	})
	return &SetSizeOutput{Token: token, Cosmetics: c}, nil
}

func (o *orchestrator) ToggleAccessory(_ context.Context, input *ToggleAccessoryInput) (*ToggleAccessoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, c := edit(input.Token, func(c petoverse.CosmeticConfig) petoverse.CosmeticConfig {
		return cosmetics.ToggleAccessory(c, input.AccessoryID)
	})
	return &ToggleAccessoryOutput{Token: token, Cosmetics: c}, nil
}

func (o *orchestrator) SavePet(ctx context.Context, input *SavePetInput) (*SavePetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("player_id")
	}
	d := draft.Decode(input.Token)
	if !draft.HasName(d) {
		vb.Field("name", "pet name is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	archetype := catalog.ArchetypeOrDefault(d.ArchetypeID)

	stats, err := o.rollStats(archetype)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll pet stats")
	}

	now := o.clock.Now()
	pet := &petoverse.Pet{
		ID:           o.idGen.Generate(),
		PlayerID:     input.PlayerID,
		Name:         d.Name,
		ArchetypeID:  archetype.ID,
		Cosmetics:    d.Cosmetics,
		Stats:        stats,
		Traits:       catalog.DefaultTraits(),
		Commands:     catalog.DefaultCommands(),
		TrainedWords: []string{},
		CreatedAt:    now.Unix(),
	}

	if _, err := o.petRepo.Create(ctx, petrepo.CreateInput{Pet: pet}); err != nil {
		return nil, errors.Wrap(err, "failed to save pet")
	}

	if err := eventbus.Publish(ctx, o.bus, eventbus.PetCreated,
		eventbus.Player(pet.PlayerID), eventbus.Pet(pet.ID),
		map[string]any{"archetype_id": pet.ArchetypeID, "name": pet.Name}); err != nil {
		o.log.Warn("event publish failed", "event", eventbus.PetCreated, "error", err.Error())
	}

	o.log.Debug("pet saved", "pet_id", pet.ID, "player_id", pet.PlayerID, "archetype_id", pet.ArchetypeID)

	return &SavePetOutput{PetToken: o.petToken(pet)}, nil
}

// rollStats builds a level one pet from the archetype's base stats
func (o *orchestrator) rollStats(a petoverse.PetArchetype) (petoverse.PetStats, error) {
	rolls, err := o.roller.RollN(2, statDie)
	if err != nil {
		return petoverse.PetStats{}, err
	}

	return petoverse.PetStats{
		Level:         1,
		MaxExperience: startingMaxExperience,
		Intelligence:  a.BaseStats.Intelligence,
		Creativity:    creativityBase + int32(rolls[0]),
		Loyalty:       loyaltyBase + int32(rolls[1]),
		Energy:        a.BaseStats.Energy,
		Happiness:     startingHappiness,
	}, nil
}

func (o *orchestrator) petToken(pet *petoverse.Pet) PetToken {
	created := o.clock.Now()
	if pet.CreatedAt > 0 {
		created = time.Unix(pet.CreatedAt, 0).UTC()
	}

	return PetToken{
		Pet:          pet,
		Archetype:    catalog.ArchetypeOrDefault(pet.ArchetypeID),
		UniqueTraits: catalog.UniqueTraits(),
		LearningLog:  catalog.LearningLog(created.Format(learningLogDateFormat)),
	}
}

func (o *orchestrator) GetPet(ctx context.Context, input *GetPetInput) (*GetPetOutput, error) {
	if input == nil || input.PetID == "" {
		return nil, errors.InvalidArgument("pet ID is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.petRepo.Get(ctx, petrepo.GetInput{ID: input.PetID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pet %s", input.PetID)
	}
	if out.Pet.PlayerID != input.PlayerID {
		return nil, errors.NotFoundf("pet %s not found", input.PetID)
	}

	return &GetPetOutput{PetToken: o.petToken(out.Pet)}, nil
}

func (o *orchestrator) ListPets(ctx context.Context, input *ListPetsInput) (*ListPetsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.petRepo.ListByPlayerID(ctx, petrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list pets for player %s", input.PlayerID)
	}

	return &ListPetsOutput{Pets: out.Pets}, nil
}
