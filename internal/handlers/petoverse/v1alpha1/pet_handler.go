package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/auth"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/creation"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/styling"
)

// PetHandlerConfig holds dependencies for the pet handler
type PetHandlerConfig struct {
	AuthService     auth.Service
	CreationService creation.Service
	StylingService  styling.Service
}

// Validate ensures all required dependencies are present
func (c *PetHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.AuthService == nil {
		vb.RequiredField("AuthService")
	}
	if c.CreationService == nil {
		vb.RequiredField("CreationService")
	}
	if c.StylingService == nil {
		vb.RequiredField("StylingService")
	}
	return vb.Build()
}

// PetHandler implements the PetService: the creation wizard, styling and
// saved pets
type PetHandler struct {
	authService     auth.Service
	creationService creation.Service
	stylingService  styling.Service
}

// NewPetHandler creates a new pet handler with the given configuration
func NewPetHandler(cfg *PetHandlerConfig) (*PetHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PetHandler{
		authService:     cfg.AuthService,
		creationService: cfg.CreationService,
		stylingService:  cfg.StylingService,
	}, nil
}

// ListArchetypes lists every pet type
func (h *PetHandler) ListArchetypes(
	ctx context.Context,
	_ *apiv1alpha1.ListArchetypesRequest,
) (*apiv1alpha1.ListArchetypesResponse, error) {
	output, err := h.creationService.ListArchetypes(ctx, &creation.ListArchetypesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	archetypes := make([]apiv1alpha1.Archetype, len(output.Archetypes))
	for i, a := range output.Archetypes {
		archetypes[i] = convertArchetypeToAPI(a)
	}
	return &apiv1alpha1.ListArchetypesResponse{Archetypes: archetypes}, nil
}

// GetStyleOptions lists palettes, accessories and size bounds
func (h *PetHandler) GetStyleOptions(
	_ context.Context,
	_ *apiv1alpha1.GetStyleOptionsRequest,
) (*apiv1alpha1.GetStyleOptionsResponse, error) {
	palettes := catalog.Palettes()
	accessories := catalog.Accessories()

	resp := &apiv1alpha1.GetStyleOptionsResponse{
		Palettes:    make([]apiv1alpha1.Palette, len(palettes)),
		Accessories: make([]apiv1alpha1.Accessory, len(accessories)),
		MinSize:     petoverse.MinSize,
		MaxSize:     petoverse.MaxSize,
		SizeStep:    petoverse.SizeStep,
	}
	for i, p := range palettes {
		resp.Palettes[i] = apiv1alpha1.Palette{ID: p.ID, Name: p.Name}
	}
	for i, a := range accessories {
		resp.Accessories[i] = apiv1alpha1.Accessory{ID: a.ID, Name: a.Name, Emoji: a.Emoji}
	}
	return resp, nil
}

// CreateDraft starts the creation wizard for the session's player
func (h *PetHandler) CreateDraft(
	ctx context.Context,
	req *apiv1alpha1.CreateDraftRequest,
) (*apiv1alpha1.CreateDraftResponse, error) {
	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.CreateDraft(ctx, &creation.CreateDraftInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CreateDraftResponse{Draft: convertDraftToAPI(output.Draft)}, nil
}

// GetDraft retrieves a draft
func (h *PetHandler) GetDraft(
	ctx context.Context,
	req *apiv1alpha1.GetDraftRequest,
) (*apiv1alpha1.GetDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.GetDraft(ctx, &creation.GetDraftInput{PlayerID: playerID, DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetDraftResponse{Draft: convertDraftToAPI(output.Draft)}, nil
}

// GetPlayerDraft returns the session player's draft in progress, if any
func (h *PetHandler) GetPlayerDraft(
	ctx context.Context,
	req *apiv1alpha1.GetPlayerDraftRequest,
) (*apiv1alpha1.GetPlayerDraftResponse, error) {
	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.GetPlayerDraft(ctx, &creation.GetPlayerDraftInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &apiv1alpha1.GetPlayerDraftResponse{Found: output.Found}
	if output.Found {
		resp.Draft = convertDraftToAPI(output.Draft)
	}
	return resp, nil
}

// DeleteDraft abandons a draft
func (h *PetHandler) DeleteDraft(
	ctx context.Context,
	req *apiv1alpha1.DeleteDraftRequest,
) (*apiv1alpha1.DeleteDraftResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.creationService.DeleteDraft(ctx, &creation.DeleteDraftInput{
		PlayerID: playerID,
		DraftID:  req.DraftID,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.DeleteDraftResponse{}, nil
}

// SelectArchetype chooses the draft's pet type
func (h *PetHandler) SelectArchetype(
	ctx context.Context,
	req *apiv1alpha1.SelectArchetypeRequest,
) (*apiv1alpha1.SelectArchetypeResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.SelectArchetype(ctx, &creation.SelectArchetypeInput{
		PlayerID:    playerID,
		DraftID:     req.DraftID,
		ArchetypeID: req.ArchetypeID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SelectArchetypeResponse{Draft: convertDraftToAPI(output.Draft)}, nil
}

// UpdateName names the draft's pet
func (h *PetHandler) UpdateName(
	ctx context.Context,
	req *apiv1alpha1.UpdateNameRequest,
) (*apiv1alpha1.UpdateNameResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.UpdateName(ctx, &creation.UpdateNameInput{
		PlayerID: playerID,
		DraftID:  req.DraftID,
		Name:     req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.UpdateNameResponse{Draft: convertDraftToAPI(output.Draft)}, nil
}

// AdvanceStep moves the wizard forward when the current step is complete
func (h *PetHandler) AdvanceStep(
	ctx context.Context,
	req *apiv1alpha1.AdvanceStepRequest,
) (*apiv1alpha1.AdvanceStepResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.AdvanceStep(ctx, &creation.AdvanceStepInput{PlayerID: playerID, DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.AdvanceStepResponse{
		Draft:         convertDraftToAPI(output.Draft),
		Advanced:      output.Advanced,
		Completed:     output.Completed,
		TransferToken: output.TransferToken,
		NextScreen:    output.NextScreen,
	}, nil
}

// RetreatStep moves the wizard back
func (h *PetHandler) RetreatStep(
	ctx context.Context,
	req *apiv1alpha1.RetreatStepRequest,
) (*apiv1alpha1.RetreatStepResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.RetreatStep(ctx, &creation.RetreatStepInput{PlayerID: playerID, DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RetreatStepResponse{
		Draft:  convertDraftToAPI(output.Draft),
		Exited: output.Exited,
	}, nil
}

// GetSummary returns the confirmation view of a draft
func (h *PetHandler) GetSummary(
	ctx context.Context,
	req *apiv1alpha1.GetSummaryRequest,
) (*apiv1alpha1.GetSummaryResponse, error) {
	if req.DraftID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.creationService.GetSummary(ctx, &creation.GetSummaryInput{PlayerID: playerID, DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	sum := output.Summary
	return &apiv1alpha1.GetSummaryResponse{
		Summary: apiv1alpha1.DraftSummary{
			Name: sum.Name,
			Archetype: apiv1alpha1.Archetype{
				ID:           sum.ArchetypeID,
				Name:         sum.ArchetypeName,
				Emoji:        sum.Emoji,
				Description:  sum.Description,
				Rarity:       sum.Rarity,
				Health:       sum.BaseStats.Health,
				Energy:       sum.BaseStats.Energy,
				Intelligence: sum.BaseStats.Intelligence,
			},
			Progress: output.Progress,
		},
	}, nil
}

// OpenStyling decodes the wizard's transfer token
func (h *PetHandler) OpenStyling(
	ctx context.Context,
	req *apiv1alpha1.OpenStylingRequest,
) (*apiv1alpha1.OpenStylingResponse, error) {
	output, err := h.stylingService.OpenStyling(ctx, &styling.OpenStylingInput{Token: req.Token})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	p := output.Preview
	return &apiv1alpha1.OpenStylingResponse{
		Token:     p.Token,
		Name:      p.Name,
		Archetype: convertArchetypeToAPI(p.Archetype),
		Cosmetics: convertCosmeticsToAPI(p.Cosmetics),
	}, nil
}

// SetPrimaryColor changes the primary colour on a token
func (h *PetHandler) SetPrimaryColor(
	ctx context.Context,
	req *apiv1alpha1.SetPrimaryColorRequest,
) (*apiv1alpha1.SetPrimaryColorResponse, error) {
	output, err := h.stylingService.SetPrimaryColor(ctx, &styling.SetPrimaryColorInput{
		Token:     req.Token,
		PaletteID: req.PaletteID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SetPrimaryColorResponse{Token: output.Token, Cosmetics: convertCosmeticsToAPI(output.Cosmetics)}, nil
}

// SetSecondaryColor changes the secondary colour on a token
func (h *PetHandler) SetSecondaryColor(
	ctx context.Context,
	req *apiv1alpha1.SetSecondaryColorRequest,
) (*apiv1alpha1.SetSecondaryColorResponse, error) {
	output, err := h.stylingService.SetSecondaryColor(ctx, &styling.SetSecondaryColorInput{
		Token:     req.Token,
		PaletteID: req.PaletteID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SetSecondaryColorResponse{Token: output.Token, Cosmetics: convertCosmeticsToAPI(output.Cosmetics)}, nil
}

// SetSize resizes the pet on a token
func (h *PetHandler) SetSize(
	ctx context.Context,
	req *apiv1alpha1.SetSizeRequest,
) (*apiv1alpha1.SetSizeResponse, error) {
	output, err := h.stylingService.SetSize(ctx, &styling.SetSizeInput{Token: req.Token, Size: req.Size})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SetSizeResponse{Token: output.Token, Cosmetics: convertCosmeticsToAPI(output.Cosmetics)}, nil
}

// ToggleAccessory wears or removes an accessory on a token
func (h *PetHandler) ToggleAccessory(
	ctx context.Context,
	req *apiv1alpha1.ToggleAccessoryRequest,
) (*apiv1alpha1.ToggleAccessoryResponse, error) {
	output, err := h.stylingService.ToggleAccessory(ctx, &styling.ToggleAccessoryInput{
		Token:       req.Token,
		AccessoryID: req.AccessoryID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ToggleAccessoryResponse{Token: output.Token, Cosmetics: convertCosmeticsToAPI(output.Cosmetics)}, nil
}

// SavePet finalizes a styled token into a saved pet
func (h *PetHandler) SavePet(
	ctx context.Context,
	req *apiv1alpha1.SavePetRequest,
) (*apiv1alpha1.SavePetResponse, error) {
	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.stylingService.SavePet(ctx, &styling.SavePetInput{PlayerID: playerID, Token: req.Token})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SavePetResponse{PetToken: convertPetTokenToAPI(output.PetToken)}, nil
}

// GetPet retrieves a saved pet's card
func (h *PetHandler) GetPet(
	ctx context.Context,
	req *apiv1alpha1.GetPetRequest,
) (*apiv1alpha1.GetPetResponse, error) {
	if req.PetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pet_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.stylingService.GetPet(ctx, &styling.GetPetInput{PlayerID: playerID, PetID: req.PetID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetPetResponse{PetToken: convertPetTokenToAPI(output.PetToken)}, nil
}

// ListPets lists the session player's pets
func (h *PetHandler) ListPets(
	ctx context.Context,
	req *apiv1alpha1.ListPetsRequest,
) (*apiv1alpha1.ListPetsResponse, error) {
	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.stylingService.ListPets(ctx, &styling.ListPetsInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	pets := make([]apiv1alpha1.Pet, len(output.Pets))
	for i, p := range output.Pets {
		pets[i] = convertPetToAPI(p)
	}
	return &apiv1alpha1.ListPetsResponse{Pets: pets}, nil
}

func convertPetTokenToAPI(t styling.PetToken) apiv1alpha1.PetToken {
	return apiv1alpha1.PetToken{
		Pet:          convertPetToAPI(t.Pet),
		Archetype:    convertArchetypeToAPI(t.Archetype),
		UniqueTraits: t.UniqueTraits,
		LearningLog:  convertLearningLogToAPI(t.LearningLog),
	}
}

var _ apiv1alpha1.PetServiceServer = (*PetHandler)(nil)
