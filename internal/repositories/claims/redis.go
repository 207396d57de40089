package claims

import (
	"context"
	"sort"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

const (
	claimsKeyPrefix = "claims:"

	errSessionIDEmpty = "session ID cannot be empty"
	errRewardIDEmpty  = "reward ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed claims repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.RewardID == "" {
		return nil, errors.InvalidArgument(errRewardIDEmpty)
	}

	key := claimsKeyPrefix + input.SessionID

	pipe := r.client.TxPipeline()
	added := pipe.SAdd(ctx, key, input.RewardID)
	if input.TTL > 0 {
		pipe.Expire(ctx, key, input.TTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to record claim")
	}

	return &AddOutput{Added: added.Val() == 1}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, claimsKeyPrefix+input.SessionID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claims")
	}
	sort.Strings(ids)

	return &ListOutput{RewardIDs: ids}, nil
}

func (r *redisRepository) IsClaimed(ctx context.Context, input IsClaimedInput) (*IsClaimedOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.RewardID == "" {
		return nil, errors.InvalidArgument(errRewardIDEmpty)
	}

	claimed, err := r.client.SIsMember(ctx, claimsKeyPrefix+input.SessionID, input.RewardID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check claim")
	}

	return &IsClaimedOutput{Claimed: claimed}, nil
}
