// Package eventbus publishes Petoverse domain events on the rpg-toolkit
// event bus. Orchestrators publish; subscribers only observe.
package eventbus

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
)

// Event types
const (
	DraftCompleted = "draft.completed"
	PetCreated     = "pet.created"
	PetTrained     = "pet.trained"
	RewardClaimed  = "reward.claimed"
	SessionStarted = "session.started"
)

// Topics lists every event type this package defines
var Topics = []string{DraftCompleted, PetCreated, PetTrained, RewardClaimed, SessionStarted}

// Entity types used as event sources and targets
const (
	EntityPlayer  = "player"
	EntitySession = "session"
	EntityDraft   = "draft"
	EntityPet     = "pet"
	EntityReward  = "reward"
)

// Entity is a lightweight core.Entity used to tag event sources and targets
type Entity struct {
	ID   string
	Type string
}

// GetID returns the entity's unique identifier
func (e Entity) GetID() string { return e.ID }

// GetType returns the entity's type
func (e Entity) GetType() string { return e.Type }

// Player returns an entity for a player id
func Player(id string) Entity { return Entity{ID: id, Type: EntityPlayer} }

// Session returns an entity for a session id
func Session(id string) Entity { return Entity{ID: id, Type: EntitySession} }

// Draft returns an entity for a creation draft id
func Draft(id string) Entity { return Entity{ID: id, Type: EntityDraft} }

// Pet returns an entity for a pet id
func Pet(id string) Entity { return Entity{ID: id, Type: EntityPet} }

// Reward returns an entity for a reward id
func Reward(id string) Entity { return Entity{ID: id, Type: EntityReward} }

// Publish sends an event with data attached to its context. A nil bus is a no-op.
func Publish(ctx context.Context, bus events.EventBus, eventType string, source, target core.Entity, data map[string]any) error {
	if bus == nil {
		return nil
	}

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}

// SubscribeLogger logs every Petoverse event at debug level and returns the
// subscription ids
func SubscribeLogger(bus events.EventBus, log *logger.Logger) []string {
	ids := make([]string, 0, len(Topics))
	for _, topic := range Topics {
		ids = append(ids, bus.SubscribeFunc(topic, 0, func(_ context.Context, e events.Event) error {
			fields := []any{"event", e.Type()}
			if src := e.Source(); src != nil {
				fields = append(fields, "source_type", src.GetType(), "source_id", src.GetID())
			}
			if tgt := e.Target(); tgt != nil {
				fields = append(fields, "target_type", tgt.GetType(), "target_id", tgt.GetID())
			}
			log.Debug("domain event", fields...)
			return nil
		}))
	}
	return ids
}

var _ core.Entity = Entity{}
