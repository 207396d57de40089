// Package session stores mock login sessions
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/petoverse-api/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Repository persists sessions until they expire
type Repository interface {
	// Create stores a session; it must carry an ExpiresAt in the future
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns errors.NotFound once the session has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete ends a session; deleting an unknown session is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *petoverse.Session
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *petoverse.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *petoverse.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}
