package rewards

import "github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"

// ListRewardsInput defines the request for listing rewards
type ListRewardsInput struct {
	SessionID string
}

// ListRewardsOutput defines the response for listing rewards
type ListRewardsOutput struct {
	Rewards []petoverse.Reward
}

// ClaimRewardInput defines the request for claiming a reward
type ClaimRewardInput struct {
	SessionID string
	RewardID  string
}

// ClaimRewardOutput defines the response for claiming a reward.
// Found is false for an unknown reward id, in which case nothing happened.
// AlreadyClaimed is true when the claim was a no-op.
type ClaimRewardOutput struct {
	Reward         petoverse.Reward
	Found          bool
	AlreadyClaimed bool
}
