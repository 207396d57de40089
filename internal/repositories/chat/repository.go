// Package chat stores playground chat history per pet
package chat

//go:generate mockgen -destination=mock/mock_repository.go -package=chatmock github.com/KirkDiggler/petoverse-api/internal/repositories/chat Repository

import (
	"context"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Repository keeps an ordered, bounded chat log per pet
type Repository interface {
	// Append assigns the next message ID for the pet and stores the messages in order
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns up to Limit of the most recent messages, oldest first.
	// A zero Limit returns the whole retained history.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput defines the input for appending messages
type AppendInput struct {
	PetID    string
	Messages []petoverse.ChatMessage
}

// AppendOutput carries the stored messages with their assigned IDs
type AppendOutput struct {
	Messages []petoverse.ChatMessage
}

// ListInput defines the input for listing messages
type ListInput struct {
	PetID string
	Limit int
}

// ListOutput defines the output for listing messages
type ListOutput struct {
	Messages []petoverse.ChatMessage
}
