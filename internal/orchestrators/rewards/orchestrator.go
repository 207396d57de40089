// Package rewards lists the reward table and records claims per session
package rewards

//go:generate mockgen -destination=mock/mock_service.go -package=rewardsmock github.com/KirkDiggler/petoverse-api/internal/orchestrators/rewards Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/latency"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/claims"
)

// Service defines the interface for the rewards screen
type Service interface {
	ListRewards(ctx context.Context, input *ListRewardsInput) (*ListRewardsOutput, error)
	ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error)
}

// Config holds the dependencies for the rewards orchestrator
type Config struct {
	ClaimsRepo claims.Repository
	EventBus   events.EventBus
	Logger     *logger.Logger
	// ClaimLatency simulates the rewards ledger round trip
	ClaimLatency time.Duration
	// ClaimTTL should match the session lifetime so claims die with the session
	ClaimTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ClaimsRepo == nil {
		vb.RequiredField("ClaimsRepo")
	}
	if c.ClaimLatency < 0 {
		vb.Field("ClaimLatency", "cannot be negative")
	}
	if c.ClaimTTL < 0 {
		vb.Field("ClaimTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	claimsRepo   claims.Repository
	bus          events.EventBus
	log          *logger.Logger
	claimLatency time.Duration
	claimTTL     time.Duration
}

// NewOrchestrator creates a new rewards orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		claimsRepo:   cfg.ClaimsRepo,
		bus:          cfg.EventBus,
		log:          cfg.Logger.With("orchestrator", "rewards"),
		claimLatency: cfg.ClaimLatency,
		claimTTL:     cfg.ClaimTTL,
	}, nil
}

func (o *orchestrator) ListRewards(ctx context.Context, input *ListRewardsInput) (*ListRewardsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.claimsRepo.List(ctx, claims.ListInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claims")
	}

	claimed := make(map[string]bool, len(out.RewardIDs))
	for _, id := range out.RewardIDs {
		claimed[id] = true
	}

	list := catalog.Rewards()
	for i := range list {
		list[i].Claimed = list[i].Claimed || claimed[list[i].ID]
	}

	return &ListRewardsOutput{Rewards: list}, nil
}

func (o *orchestrator) ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	reward, ok := catalog.Reward(input.RewardID)
	if !ok {
		return &ClaimRewardOutput{Found: false}, nil
	}

	if reward.Claimed {
		return &ClaimRewardOutput{Reward: reward, Found: true, AlreadyClaimed: true}, nil
	}

	check, err := o.claimsRepo.IsClaimed(ctx, claims.IsClaimedInput{SessionID: input.SessionID, RewardID: reward.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check claim")
	}
	if check.Claimed {
		reward.Claimed = true
		return &ClaimRewardOutput{Reward: reward, Found: true, AlreadyClaimed: true}, nil
	}

	return latency.Do(ctx, o.claimLatency, func(ctx context.Context) (*ClaimRewardOutput, error) {
		added, err := o.claimsRepo.Add(ctx, claims.AddInput{
			SessionID: input.SessionID,
			RewardID:  reward.ID,
			TTL:       o.claimTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to record claim")
		}

		reward.Claimed = true
		if !added.Added {
			// a concurrent claim won
			return &ClaimRewardOutput{Reward: reward, Found: true, AlreadyClaimed: true}, nil
		}

		o.publishClaimed(ctx, input.SessionID, reward)
		return &ClaimRewardOutput{Reward: reward, Found: true}, nil
	})
}

func (o *orchestrator) publishClaimed(ctx context.Context, sessionID string, reward petoverse.Reward) {
	if err := eventbus.Publish(ctx, o.bus, eventbus.RewardClaimed,
		eventbus.Session(sessionID), eventbus.Reward(reward.ID),
		map[string]any{"type": string(reward.Type), "value": reward.Value}); err != nil {
		o.log.Warn("event publish failed", "event", eventbus.RewardClaimed, "error", err.Error())
	}

	o.log.Debug("reward claimed", "session_id", sessionID, "reward_id", reward.ID)
}
