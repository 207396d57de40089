package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

const (
	sessionKeyPrefix = "session:"

	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
	errSessionExpired = "session has already expired"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed session repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ttl := time.Until(time.Unix(input.Session.ExpiresAt, 0))
	if ttl <= 0 {
		return nil, errors.InvalidArgument(errSessionExpired)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+input.Session.ID, data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	return &CreateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, sessionKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("session %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	var s petoverse.Session
	if err := json.Unmarshal([]byte(result), &s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &s}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.ID).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}
