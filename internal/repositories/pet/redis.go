package pet

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

const (
	petKeyPrefix      = "pet:"
	playerIndexPrefix = "pet:player:"
	allPetsKey        = "pet:all"

	errPetNil        = "pet cannot be nil"
	errPetIDEmpty    = "pet ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

// RedisConfig contains configuration for the Redis pet repository.
type RedisConfig struct {
	Client redisclient.Client
	Logger *logger.Logger
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	log    *logger.Logger
}

// NewRedis creates a new Redis-backed pet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		log:    cfg.Logger.With("repository", "pet"),
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Pet == nil {
		return nil, errors.InvalidArgument(errPetNil)
	}
	if input.Pet.ID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}
	if input.Pet.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.Pet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pet")
	}

	key := petKeyPrefix + input.Pet.ID
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store pet")
	}
	if !created {
		return nil, errors.AlreadyExists("pet " + input.Pet.ID + " already exists")
	}

	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, playerIndexPrefix+input.Pet.PlayerID, input.Pet.ID)
	pipe.SAdd(ctx, allPetsKey, input.Pet.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to index pet")
	}

	return &CreateOutput{Pet: input.Pet}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}

	result, err := r.client.Get(ctx, petKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("pet %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get pet")
	}

	var p petoverse.Pet
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal pet")
	}

	return &GetOutput{Pet: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Pet == nil {
		return nil, errors.InvalidArgument(errPetNil)
	}
	if input.Pet.ID == "" {
		return nil, errors.InvalidArgument(errPetIDEmpty)
	}

	data, err := json.Marshal(input.Pet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pet")
	}

	updated, err := r.client.SetXX(ctx, petKeyPrefix+input.Pet.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}
	if !updated {
		return nil, errors.NotFoundf("pet %s not found", input.Pet.ID)
	}

	return &UpdateOutput{Pet: input.Pet}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	pets, err := r.listByIndex(ctx, playerIndexPrefix+input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ListByPlayerIDOutput{Pets: pets}, nil
}

func (r *redisRepository) ListAll(ctx context.Context, _ ListAllInput) (*ListAllOutput, error) {
	pets, err := r.listByIndex(ctx, allPetsKey)
	if err != nil {
		return nil, err
	}

	return &ListAllOutput{Pets: pets}, nil
}

// listByIndex loads every pet named in a set index, pruning ids whose pet is gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*petoverse.Pet, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}

	pets := make([]*petoverse.Pet, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.log.Warn("pruning stale pet index entry", "index", indexKey, "pet_id", id)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		pets = append(pets, out.Pet)
	}

	sort.Slice(pets, func(i, j int) bool {
		if pets[i].CreatedAt != pets[j].CreatedAt {
			return pets[i].CreatedAt < pets[j].CreatedAt
		}
		return pets[i].ID < pets[j].ID
	})

	return pets, nil
}
