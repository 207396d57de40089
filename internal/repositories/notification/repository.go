// Package notification stores the messages pets leave for their owners
package notification

//go:generate mockgen -destination=mock/mock_repository.go -package=notificationmock github.com/KirkDiggler/petoverse-api/internal/repositories/notification Repository

import (
	"context"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Repository keeps a bounded, newest-first notification list per pet
type Repository interface {
	Add(ctx context.Context, input AddInput) (*AddOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AddInput defines the input for adding a notification
type AddInput struct {
	Notification petoverse.Notification
}

// AddOutput defines the output for adding a notification
type AddOutput struct{}

// ListInput defines the input for listing notifications
type ListInput struct {
	PetID string
	Limit int
}

// ListOutput holds notifications, newest first
type ListOutput struct {
	Notifications []petoverse.Notification
}
