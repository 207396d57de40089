package creationdraft

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

const (
	draftKeyPrefix      = "petdraft:"
	playerMappingPrefix = "petdraft:player:"

	// DefaultTTL applies when a draft carries no expiry of its own
	DefaultTTL = 24 * time.Hour

	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errDraftExpired  = "draft has already expired"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed creation draft repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

// ttlFor returns how long the draft keys should live. The window runs from
// the draft's last update to its expiry, so both ends come from the same clock
// as the caller that stamped them.
func ttlFor(d *petoverse.CreationDraft) (time.Duration, error) {
	if d.ExpiresAt <= 0 {
		return DefaultTTL, nil
	}

	from := d.UpdatedAt
	if from <= 0 {
		from = d.CreatedAt
	}
	if from <= 0 {
		from = time.Now().Unix()
	}

	ttl := time.Duration(d.ExpiresAt-from) * time.Second
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	if input.Draft.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ttl, err := ttlFor(input.Draft)
	if err != nil {
		return nil, err
	}

	playerKey := playerMappingPrefix + input.Draft.PlayerID
	existingDraftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil && err != redisclient.Nil {
		return nil, errors.Wrap(err, "failed to check existing draft")
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()

	// A player has at most one draft, so starting over replaces the old one
	if existingDraftID != "" && existingDraftID != input.Draft.ID {
		pipe.Del(ctx, draftKeyPrefix+existingDraftID)
	}

	pipe.Set(ctx, draftKeyPrefix+input.Draft.ID, data, ttl)
	pipe.Set(ctx, playerKey, input.Draft.ID, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get draft")
	}

	var draft petoverse.CreationDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	playerKey := playerMappingPrefix + input.PlayerID
	draftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no draft found for player %s", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get player draft mapping")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		// Stale mapping, the draft expired first
		if errors.IsNotFound(err) {
			r.client.Del(ctx, playerKey)
		}
		return nil, err
	}

	return &GetByPlayerIDOutput{Draft: getOutput.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	key := draftKeyPrefix + input.Draft.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}

	ttl, err := ttlFor(input.Draft)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, ttl)
	if input.Draft.PlayerID != "" {
		pipe.Expire(ctx, playerMappingPrefix+input.Draft.PlayerID, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to update draft")
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKeyPrefix+input.ID)
	if getOutput.Draft.PlayerID != "" {
		pipe.Del(ctx, playerMappingPrefix+getOutput.Draft.PlayerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}
