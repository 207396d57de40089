package styling

import "github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"

// Preview is the styling screen's view of a transfer token
type Preview struct {
	Token     string
	Name      string
	Archetype petoverse.PetArchetype
	Cosmetics petoverse.CosmeticConfig
}

// PetToken is the finished pet card
type PetToken struct {
	Pet          *petoverse.Pet
	Archetype    petoverse.PetArchetype
	UniqueTraits []string
	LearningLog  []petoverse.LearningEntry
}

// OpenStylingInput defines the request for entering the styling screen
type OpenStylingInput struct {
	Token string
}

// OpenStylingOutput defines the response for entering the styling screen
type OpenStylingOutput struct {
	Preview Preview
}

// SetPrimaryColorInput defines the request for changing the primary colour
type SetPrimaryColorInput struct {
	Token     string
	PaletteID string
}

// SetPrimaryColorOutput defines the response for changing the primary colour
type SetPrimaryColorOutput struct {
	Token     string
	Cosmetics petoverse.CosmeticConfig
}

// SetSecondaryColorInput defines the request for changing the secondary colour
type SetSecondaryColorInput struct {
	Token     string
	PaletteID string
}

// SetSecondaryColorOutput defines the response for changing the secondary colour
type SetSecondaryColorOutput struct {
	Token     string
	Cosmetics petoverse.CosmeticConfig
}

// SetSizeInput defines the request for resizing the pet
type SetSizeInput struct {
	Token string
	Size  float64
}

// SetSizeOutput defines the response for resizing the pet
type SetSizeOutput struct {
	Token     string
	Cosmetics petoverse.CosmeticConfig
}

// ToggleAccessoryInput defines the request for wearing or removing an accessory
type ToggleAccessoryInput struct {
	Token       string
	AccessoryID string
}

// ToggleAccessoryOutput defines the response for wearing or removing an accessory
type ToggleAccessoryOutput struct {
	Token     string
	Cosmetics petoverse.CosmeticConfig
}

// SavePetInput defines the request for finalizing a pet
type SavePetInput struct {
	PlayerID string
	Token    string
}

// SavePetOutput defines the response for finalizing a pet
type SavePetOutput struct {
	PetToken PetToken
}

// GetPetInput defines the request for reading a saved pet
type GetPetInput struct {
	PlayerID string
	PetID    string
}

// GetPetOutput defines the response for reading a saved pet
type GetPetOutput struct {
	PetToken PetToken
}

// ListPetsInput defines the request for listing a player's pets
type ListPetsInput struct {
	PlayerID string
}

// ListPetsOutput defines the response for listing a player's pets
type ListPetsOutput struct {
	Pets []*petoverse.Pet
}
