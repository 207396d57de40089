// Package claims records which rewards a session has claimed
package claims

//go:generate mockgen -destination=mock/mock_repository.go -package=claimsmock github.com/KirkDiggler/petoverse-api/internal/repositories/claims Repository

import (
	"context"
	"time"
)

// Repository stores a per-session claim set
type Repository interface {
	// Add records a claim. Added is false if the reward was already claimed.
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// List returns the session's claimed reward ids; an unknown session has none
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// IsClaimed reports whether the session already claimed a reward
	IsClaimed(ctx context.Context, input IsClaimedInput) (*IsClaimedOutput, error)
}

// AddInput defines the input for recording a claim
type AddInput struct {
	SessionID string
	RewardID  string
	// TTL bounds the claim set's lifetime; zero keeps it until the store restarts
	TTL time.Duration
}

// AddOutput defines the output for recording a claim
type AddOutput struct {
	Added bool
}

// ListInput defines the input for listing claims
type ListInput struct {
	SessionID string
}

// ListOutput defines the output for listing claims
type ListOutput struct {
	RewardIDs []string
}

// IsClaimedInput defines the input for checking a claim
type IsClaimedInput struct {
	SessionID string
	RewardID  string
}

// IsClaimedOutput defines the output for checking a claim
type IsClaimedOutput struct {
	Claimed bool
}
