package notification

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

const (
	notificationKeyPrefix = "notifications:"

	// MaxRetained is how many notifications are kept per pet
	MaxRetained = 50

	errPetIDEmpty = "pet ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed notification repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.Notification.PetID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}

	data, err := json.Marshal(input.Notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal notification")
	}

	key := notificationKeyPrefix + input.Notification.PetID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, MaxRetained-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to add notification")
	}

	return &AddOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PetID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	raw, err := r.client.LRange(ctx, notificationKeyPrefix+input.PetID, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	out := make([]petoverse.Notification, 0, len(raw))
	for _, item := range raw {
		var n petoverse.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal notification")
		}
		out = append(out, n)
	}

	return &ListOutput{Notifications: out}, nil
}
