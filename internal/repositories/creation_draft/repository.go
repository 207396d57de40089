// Package creationdraft defines the interface for pet creation draft persistence
package creationdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=creationdraftmock github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft Repository

import (
	"context"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Repository defines the interface for creation draft persistence
// Implements a single-draft-per-player pattern for simplicity
type Repository interface {
	// Create creates or replaces a player's creation draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a creation draft by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the draft doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID retrieves the player's single draft
	// Returns errors.NotFound if the player has no draft
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update replaces an existing draft and resets its TTL from ExpiresAt
	// Returns errors.NotFound if the draft doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft and the player's mapping to it
	// Returns errors.NotFound if the draft doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *petoverse.CreationDraft
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct {
	Draft *petoverse.CreationDraft
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *petoverse.CreationDraft
}

// GetByPlayerIDInput defines the input for getting a player's draft
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's draft
type GetByPlayerIDOutput struct {
	Draft *petoverse.CreationDraft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *petoverse.CreationDraft
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct {
	Draft *petoverse.CreationDraft
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}
