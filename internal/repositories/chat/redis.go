package chat

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

const (
	chatKeyPrefix = "chat:"
	seqKeySuffix  = ":seq"

	// MaxHistory is how many messages are retained per pet
	MaxHistory = 200

	errPetIDEmpty = "pet ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed chat repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.PetID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}
	if len(input.Messages) == 0 {
		return &AppendOutput{}, nil
	}

	key := chatKeyPrefix + input.PetID

	// Reserve a contiguous block of IDs so concurrent appends never collide
	last, err := r.client.IncrBy(ctx, key+seqKeySuffix, int64(len(input.Messages))).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate message ids")
	}
	first := last - int64(len(input.Messages)) + 1

	stored := make([]petoverse.ChatMessage, len(input.Messages))
	values := make([]any, len(input.Messages))
	for i, msg := range input.Messages {
		msg.ID = first + int64(i)
		data, err := json.Marshal(msg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal message")
		}
		stored[i] = msg
		values[i] = data
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -MaxHistory, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to append messages")
	}

	return &AppendOutput{Messages: stored}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PetID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}

	start := int64(0)
	if input.Limit > 0 {
		start = -int64(input.Limit)
	}

	raw, err := r.client.LRange(ctx, chatKeyPrefix+input.PetID, start, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]petoverse.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg petoverse.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal message")
		}
		messages = append(messages, msg)
	}

	return &ListOutput{Messages: messages}, nil
}
