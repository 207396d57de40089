package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// PetServiceName is the fully qualified pet service name
const PetServiceName = "petoverse.v1alpha1.PetService"

// ListArchetypesRequest is empty
type ListArchetypesRequest struct{}

// ListArchetypesResponse lists every pet type
type ListArchetypesResponse struct {
	Archetypes []Archetype `json:"archetypes"`
}

// GetStyleOptionsRequest is empty
type GetStyleOptionsRequest struct{}

// GetStyleOptionsResponse lists the styling choices
type GetStyleOptionsResponse struct {
	Palettes    []Palette   `json:"palettes"`
	Accessories []Accessory `json:"accessories"`
	MinSize     float64     `json:"min_size"`
	MaxSize     float64     `json:"max_size"`
	SizeStep    float64     `json:"size_step"`
}

// CreateDraftRequest starts the creation wizard for the session's player
type CreateDraftRequest struct {
	SessionID string `json:"session_id"`
}

// CreateDraftResponse carries the new draft
type CreateDraftResponse struct {
	Draft Draft `json:"draft"`
}

// GetDraftRequest names a draft
type GetDraftRequest struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
}

// GetDraftResponse carries the draft
type GetDraftResponse struct {
	Draft Draft `json:"draft"`
}

// GetPlayerDraftRequest asks for the session player's draft in progress
type GetPlayerDraftRequest struct {
	SessionID string `json:"session_id"`
}

// GetPlayerDraftResponse carries the draft when Found is true
type GetPlayerDraftResponse struct {
	Draft Draft `json:"draft"`
	Found bool  `json:"found"`
}

// DeleteDraftRequest names a draft to abandon
type DeleteDraftRequest struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
}

// DeleteDraftResponse is empty
type DeleteDraftResponse struct{}

// SelectArchetypeRequest chooses the pet type
type SelectArchetypeRequest struct {
	SessionID   string `json:"session_id"`
	DraftID     string `json:"draft_id"`
	ArchetypeID string `json:"archetype_id"`
}

// SelectArchetypeResponse carries the updated draft
type SelectArchetypeResponse struct {
	Draft Draft `json:"draft"`
}

// UpdateNameRequest names the pet
type UpdateNameRequest struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
	Name      string `json:"name"`
}

// UpdateNameResponse carries the updated draft
type UpdateNameResponse struct {
	Draft Draft `json:"draft"`
}

// AdvanceStepRequest moves the wizard forward
type AdvanceStepRequest struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
}

// AdvanceStepResponse reports what the advance did. TransferToken is set
// only when the wizard completed.
type AdvanceStepResponse struct {
	Draft         Draft  `json:"draft"`
	Advanced      bool   `json:"advanced"`
	Completed     bool   `json:"completed"`
	TransferToken string `json:"transfer_token,omitempty"`
	NextScreen    string `json:"next_screen,omitempty"`
}

// RetreatStepRequest moves the wizard back
type RetreatStepRequest struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
}

// RetreatStepResponse reports whether the wizard was left
type RetreatStepResponse struct {
	Draft  Draft `json:"draft"`
	Exited bool  `json:"exited"`
}

// GetSummaryRequest names a draft
type GetSummaryRequest struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
}

// GetSummaryResponse carries the confirmation view
type GetSummaryResponse struct {
	Summary DraftSummary `json:"summary"`
}

// OpenStylingRequest carries the token handed over by the wizard
type OpenStylingRequest struct {
	Token string `json:"token"`
}

// OpenStylingResponse is the styling screen's starting state
type OpenStylingResponse struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Cosmetics Cosmetics `json:"cosmetics"`
}

// SetPrimaryColorRequest changes the primary colour
type SetPrimaryColorRequest struct {
	Token     string `json:"token"`
	PaletteID string `json:"palette_id"`
}

// SetPrimaryColorResponse carries the new token
type SetPrimaryColorResponse struct {
	Token     string    `json:"token"`
	Cosmetics Cosmetics `json:"cosmetics"`
}

// SetSecondaryColorRequest changes the secondary colour
type SetSecondaryColorRequest struct {
	Token     string `json:"token"`
	PaletteID string `json:"palette_id"`
}

// SetSecondaryColorResponse carries the new token
type SetSecondaryColorResponse struct {
	Token     string    `json:"token"`
	Cosmetics Cosmetics `json:"cosmetics"`
}

// SetSizeRequest resizes the pet
type SetSizeRequest struct {
	Token string  `json:"token"`
	Size  float64 `json:"size"`
}

// SetSizeResponse carries the new token
type SetSizeResponse struct {
	Token     string    `json:"token"`
	Cosmetics Cosmetics `json:"cosmetics"`
}

// ToggleAccessoryRequest wears or removes an accessory
type ToggleAccessoryRequest struct {
	Token       string `json:"token"`
	AccessoryID string `json:"accessory_id"`
}

// ToggleAccessoryResponse carries the new token
type ToggleAccessoryResponse struct {
	Token     string    `json:"token"`
	Cosmetics Cosmetics `json:"cosmetics"`
}

// SavePetRequest finalizes the styled pet for the session's player
type SavePetRequest struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// SavePetResponse carries the pet card
type SavePetResponse struct {
	PetToken PetToken `json:"pet_token"`
}

// GetPetRequest names a saved pet
type GetPetRequest struct {
	SessionID string `json:"session_id"`
	PetID     string `json:"pet_id"`
}

// GetPetResponse carries the pet card
type GetPetResponse struct {
	PetToken PetToken `json:"pet_token"`
}

// ListPetsRequest lists the session player's pets
type ListPetsRequest struct {
	SessionID string `json:"session_id"`
}

// ListPetsResponse lists saved pets, oldest first
type ListPetsResponse struct {
	Pets []Pet `json:"pets"`
}

// PetServiceServer is the server API for PetService
type PetServiceServer interface {
	ListArchetypes(context.Context, *ListArchetypesRequest) (*ListArchetypesResponse, error)
	GetStyleOptions(context.Context, *GetStyleOptionsRequest) (*GetStyleOptionsResponse, error)
	CreateDraft(context.Context, *CreateDraftRequest) (*CreateDraftResponse, error)
	GetDraft(context.Context, *GetDraftRequest) (*GetDraftResponse, error)
	GetPlayerDraft(context.Context, *GetPlayerDraftRequest) (*GetPlayerDraftResponse, error)
	DeleteDraft(context.Context, *DeleteDraftRequest) (*DeleteDraftResponse, error)
	SelectArchetype(context.Context, *SelectArchetypeRequest) (*SelectArchetypeResponse, error)
	UpdateName(context.Context, *UpdateNameRequest) (*UpdateNameResponse, error)
	AdvanceStep(context.Context, *AdvanceStepRequest) (*AdvanceStepResponse, error)
	RetreatStep(context.Context, *RetreatStepRequest) (*RetreatStepResponse, error)
	GetSummary(context.Context, *GetSummaryRequest) (*GetSummaryResponse, error)
	OpenStyling(context.Context, *OpenStylingRequest) (*OpenStylingResponse, error)
	SetPrimaryColor(context.Context, *SetPrimaryColorRequest) (*SetPrimaryColorResponse, error)
	SetSecondaryColor(context.Context, *SetSecondaryColorRequest) (*SetSecondaryColorResponse, error)
	SetSize(context.Context, *SetSizeRequest) (*SetSizeResponse, error)
	ToggleAccessory(context.Context, *ToggleAccessoryRequest) (*ToggleAccessoryResponse, error)
	SavePet(context.Context, *SavePetRequest) (*SavePetResponse, error)
	GetPet(context.Context, *GetPetRequest) (*GetPetResponse, error)
	ListPets(context.Context, *ListPetsRequest) (*ListPetsResponse, error)
}

// PetService_ServiceDesc is the grpc.ServiceDesc for PetService
var PetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PetServiceName,
	HandlerType: (*PetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(PetServiceName, "ListArchetypes", PetServiceServer.ListArchetypes),
		unary(PetServiceName, "GetStyleOptions", PetServiceServer.GetStyleOptions),
		unary(PetServiceName, "CreateDraft", PetServiceServer.CreateDraft),
		unary(PetServiceName, "GetDraft", PetServiceServer.GetDraft),
		unary(PetServiceName, "GetPlayerDraft", PetServiceServer.GetPlayerDraft),
		unary(PetServiceName, "DeleteDraft", PetServiceServer.DeleteDraft),
		unary(PetServiceName, "SelectArchetype", PetServiceServer.SelectArchetype),
		unary(PetServiceName, "UpdateName", PetServiceServer.UpdateName),
		unary(PetServiceName, "AdvanceStep", PetServiceServer.AdvanceStep),
		unary(PetServiceName, "RetreatStep", PetServiceServer.RetreatStep),
		unary(PetServiceName, "GetSummary", PetServiceServer.GetSummary),
		unary(PetServiceName, "OpenStyling", PetServiceServer.OpenStyling),
		unary(PetServiceName, "SetPrimaryColor", PetServiceServer.SetPrimaryColor),
		unary(PetServiceName, "SetSecondaryColor", PetServiceServer.SetSecondaryColor),
		unary(PetServiceName, "SetSize", PetServiceServer.SetSize),
		unary(PetServiceName, "ToggleAccessory", PetServiceServer.ToggleAccessory),
		unary(PetServiceName, "SavePet", PetServiceServer.SavePet),
		unary(PetServiceName, "GetPet", PetServiceServer.GetPet),
		unary(PetServiceName, "ListPets", PetServiceServer.ListPets),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "petoverse/v1alpha1/pet",
}

// RegisterPetServiceServer registers srv with s
func RegisterPetServiceServer(s grpc.ServiceRegistrar, srv PetServiceServer) {
	s.RegisterService(&PetService_ServiceDesc, srv)
}

// PetServiceClient is the client API for PetService
type PetServiceClient interface {
	ListArchetypes(ctx context.Context, in *ListArchetypesRequest, opts ...grpc.CallOption) (*ListArchetypesResponse, error)
	GetStyleOptions(ctx context.Context, in *GetStyleOptionsRequest, opts ...grpc.CallOption) (*GetStyleOptionsResponse, error)
	CreateDraft(ctx context.Context, in *CreateDraftRequest, opts ...grpc.CallOption) (*CreateDraftResponse, error)
	GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*GetDraftResponse, error)
	GetPlayerDraft(ctx context.Context, in *GetPlayerDraftRequest, opts ...grpc.CallOption) (*GetPlayerDraftResponse, error)
	DeleteDraft(ctx context.Context, in *DeleteDraftRequest, opts ...grpc.CallOption) (*DeleteDraftResponse, error)
	SelectArchetype(ctx context.Context, in *SelectArchetypeRequest, opts ...grpc.CallOption) (*SelectArchetypeResponse, error)
	UpdateName(ctx context.Context, in *UpdateNameRequest, opts ...grpc.CallOption) (*UpdateNameResponse, error)
	AdvanceStep(ctx context.Context, in *AdvanceStepRequest, opts ...grpc.CallOption) (*AdvanceStepResponse, error)
	RetreatStep(ctx context.Context, in *RetreatStepRequest, opts ...grpc.CallOption) (*RetreatStepResponse, error)
	GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error)
	OpenStyling(ctx context.Context, in *OpenStylingRequest, opts ...grpc.CallOption) (*OpenStylingResponse, error)
	SetPrimaryColor(ctx context.Context, in *SetPrimaryColorRequest, opts ...grpc.CallOption) (*SetPrimaryColorResponse, error)
	SetSecondaryColor(ctx context.Context, in *SetSecondaryColorRequest, opts ...grpc.CallOption) (*SetSecondaryColorResponse, error)
	SetSize(ctx context.Context, in *SetSizeRequest, opts ...grpc.CallOption) (*SetSizeResponse, error)
	ToggleAccessory(ctx context.Context, in *ToggleAccessoryRequest, opts ...grpc.CallOption) (*ToggleAccessoryResponse, error)
	SavePet(ctx context.Context, in *SavePetRequest, opts ...grpc.CallOption) (*SavePetResponse, error)
	GetPet(ctx context.Context, in *GetPetRequest, opts ...grpc.CallOption) (*GetPetResponse, error)
	ListPets(ctx context.Context, in *ListPetsRequest, opts ...grpc.CallOption) (*ListPetsResponse, error)
}

type petServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPetServiceClient creates a PetService client
func NewPetServiceClient(cc grpc.ClientConnInterface) PetServiceClient {
	return &petServiceClient{cc: cc}
}

func (c *petServiceClient) ListArchetypes(ctx context.Context, in *ListArchetypesRequest, opts ...grpc.CallOption) (*ListArchetypesResponse, error) {
	return invoke[ListArchetypesResponse](ctx, c.cc, PetServiceName, "ListArchetypes", in, opts)
}

func (c *petServiceClient) GetStyleOptions(ctx context.Context, in *GetStyleOptionsRequest, opts ...grpc.CallOption) (*GetStyleOptionsResponse, error) {
	return invoke[GetStyleOptionsResponse](ctx, c.cc, PetServiceName, "GetStyleOptions", in, opts)
}

func (c *petServiceClient) CreateDraft(ctx context.Context, in *CreateDraftRequest, opts ...grpc.CallOption) (*CreateDraftResponse, error) {
	return invoke[CreateDraftResponse](ctx, c.cc, PetServiceName, "CreateDraft", in, opts)
}

func (c *petServiceClient) GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*GetDraftResponse, error) {
	return invoke[GetDraftResponse](ctx, c.cc, PetServiceName, "GetDraft", in, opts)
}

func (c *petServiceClient) GetPlayerDraft(ctx context.Context, in *GetPlayerDraftRequest, opts ...grpc.CallOption) (*GetPlayerDraftResponse, error) {
	return invoke[GetPlayerDraftResponse](ctx, c.cc, PetServiceName, "GetPlayerDraft", in, opts)
}

func (c *petServiceClient) DeleteDraft(ctx context.Context, in *DeleteDraftRequest, opts ...grpc.CallOption) (*DeleteDraftResponse, error) {
	return invoke[DeleteDraftResponse](ctx, c.cc, PetServiceName, "DeleteDraft", in, opts)
}

func (c *petServiceClient) SelectArchetype(ctx context.Context, in *SelectArchetypeRequest, opts ...grpc.CallOption) (*SelectArchetypeResponse, error) {
	return invoke[SelectArchetypeResponse](ctx, c.cc, PetServiceName, "SelectArchetype", in, opts)
}

func (c *petServiceClient) UpdateName(ctx context.Context, in *UpdateNameRequest, opts ...grpc.CallOption) (*UpdateNameResponse, error) {
	return invoke[UpdateNameResponse](ctx, c.cc, PetServiceName, "UpdateName", in, opts)
}

func (c *petServiceClient) AdvanceStep(ctx context.Context, in *AdvanceStepRequest, opts ...grpc.CallOption) (*AdvanceStepResponse, error) {
	return invoke[AdvanceStepResponse](ctx, c.cc, PetServiceName, "AdvanceStep", in, opts)
}

func (c *petServiceClient) RetreatStep(ctx context.Context, in *RetreatStepRequest, opts ...grpc.CallOption) (*RetreatStepResponse, error) {
	return invoke[RetreatStepResponse](ctx, c.cc, PetServiceName, "RetreatStep", in, opts)
}

func (c *petServiceClient) GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error) {
	return invoke[GetSummaryResponse](ctx, c.cc, PetServiceName, "GetSummary", in, opts)
}

func (c *petServiceClient) OpenStyling(ctx context.Context, in *OpenStylingRequest, opts ...grpc.CallOption) (*OpenStylingResponse, error) {
	return invoke[OpenStylingResponse](ctx, c.cc, PetServiceName, "OpenStyling", in, opts)
}

func (c *petServiceClient) SetPrimaryColor(ctx context.Context, in *SetPrimaryColorRequest, opts ...grpc.CallOption) (*SetPrimaryColorResponse, error) {
	return invoke[SetPrimaryColorResponse](ctx, c.cc, PetServiceName, "SetPrimaryColor", in, opts)
}

func (c *petServiceClient) SetSecondaryColor(ctx context.Context, in *SetSecondaryColorRequest, opts ...grpc.CallOption) (*SetSecondaryColorResponse, error) {
	return invoke[SetSecondaryColorResponse](ctx, c.cc, PetServiceName, "SetSecondaryColor", in, opts)
}

func (c *petServiceClient) SetSize(ctx context.Context, in *SetSizeRequest, opts ...grpc.CallOption) (*SetSizeResponse, error) {
	return invoke[SetSizeResponse](ctx, c.cc, PetServiceName, "SetSize", in, opts)
}

func (c *petServiceClient) ToggleAccessory(ctx context.Context, in *ToggleAccessoryRequest, opts ...grpc.CallOption) (*ToggleAccessoryResponse, error) {
	return invoke[ToggleAccessoryResponse](ctx, c.cc, PetServiceName, "ToggleAccessory", in, opts)
}

func (c *petServiceClient) SavePet(ctx context.Context, in *SavePetRequest, opts ...grpc.CallOption) (*SavePetResponse, error) {
	return invoke[SavePetResponse](ctx, c.cc, PetServiceName, "SavePet", in, opts)
}

func (c *petServiceClient) GetPet(ctx context.Context, in *GetPetRequest, opts ...grpc.CallOption) (*GetPetResponse, error) {
	return invoke[GetPetResponse](ctx, c.cc, PetServiceName, "GetPet", in, opts)
}

func (c *petServiceClient) ListPets(ctx context.Context, in *ListPetsRequest, opts ...grpc.CallOption) (*ListPetsResponse, error) {
	return invoke[ListPetsResponse](ctx, c.cc, PetServiceName, "ListPets", in, opts)
}
