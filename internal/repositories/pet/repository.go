// Package pet defines persistence for saved pets
package pet

//go:generate mockgen -destination=mock/mock_repository.go -package=petmock github.com/KirkDiggler/petoverse-api/internal/repositories/pet Repository

import (
	"context"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Repository defines the interface for pet persistence
type Repository interface {
	// Create stores a new pet and indexes it by player
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a pet by ID
	// Returns errors.NotFound if the pet doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing pet
	// Returns errors.NotFound if the pet doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListByPlayerID returns a player's pets, oldest first
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// ListAll returns every stored pet, oldest first
	ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error)
}

// CreateInput defines the input for creating a pet
type CreateInput struct {
	Pet *petoverse.Pet
}

// CreateOutput defines the output for creating a pet
type CreateOutput struct {
	Pet *petoverse.Pet
}

// GetInput defines the input for getting a pet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a pet
type GetOutput struct {
	Pet *petoverse.Pet
}

// UpdateInput defines the input for updating a pet
type UpdateInput struct {
	Pet *petoverse.Pet
}

// UpdateOutput defines the output for updating a pet
type UpdateOutput struct {
	Pet *petoverse.Pet
}

// ListByPlayerIDInput defines the input for listing a player's pets
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's pets
type ListByPlayerIDOutput struct {
	Pets []*petoverse.Pet
}

// ListAllInput defines the input for listing every pet
type ListAllInput struct{}

// ListAllOutput defines the output for listing every pet
type ListAllOutput struct {
	Pets []*petoverse.Pet
}
