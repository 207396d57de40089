// Package playground handles chatting, playing and training with a saved pet
package playground

//go:generate mockgen -destination=mock/mock_service.go -package=playgroundmock github.com/KirkDiggler/petoverse-api/internal/orchestrators/playground Service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/latency"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/chat"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/notification"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
)

const (
	// DefaultHistoryLimit applies when History is called without a limit
	DefaultHistoryLimit = 50

	// DefaultNotificationLimit applies when ListNotifications is called without a limit
	DefaultNotificationLimit = 20

	toyHappinessBoost = 10
)

// Service defines the interface for the playground screen
type Service interface {
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)
	PlayWithToy(ctx context.Context, input *PlayWithToyInput) (*PlayWithToyOutput, error)
	TrainPet(ctx context.Context, input *TrainPetInput) (*TrainPetOutput, error)
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)
	ListNotifications(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error)
}

// Config holds the dependencies for the playground orchestrator
type Config struct {
	PetRepo          petrepo.Repository
	ChatRepo         chat.Repository
	NotificationRepo notification.Repository
	DiceRoller       dice.Roller
	Clock            clock.Clock
	EventBus         events.EventBus
	Logger           *logger.Logger
	// ChatLatency simulates the pet "thinking" before it replies
	ChatLatency time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PetRepo == nil {
		vb.RequiredField("PetRepo")
	}
	if c.ChatRepo == nil {
		vb.RequiredField("ChatRepo")
	}
	if c.NotificationRepo == nil {
		vb.RequiredField("NotificationRepo")
	}
	if c.ChatLatency < 0 {
		vb.Field("ChatLatency", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	petRepo          petrepo.Repository
	chatRepo         chat.Repository
	notificationRepo notification.Repository
	roller           dice.Roller
	clock            clock.Clock
	bus              events.EventBus
	log              *logger.Logger
	chatLatency      time.Duration
}

// NewOrchestrator creates a new playground orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		petRepo:          cfg.PetRepo,
		chatRepo:         cfg.ChatRepo,
		notificationRepo: cfg.NotificationRepo,
		roller:           roller,
		clock:            c,
		bus:              cfg.EventBus,
		log:              cfg.Logger.With("orchestrator", "playground"),
		chatLatency:      cfg.ChatLatency,
	}, nil
}

func (o *orchestrator) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.InvalidArgument("message cannot be empty")
	}

	if _, err := o.loadPet(ctx, input.PlayerID, input.PetID); err != nil {
		return nil, err
	}
	if _, err := o.seedHistory(ctx, input.PetID); err != nil {
		return nil, err
	}

	sent, err := o.append(ctx, input.PetID, petoverse.MessageUser, text)
	if err != nil {
		return nil, err
	}

	return latency.Do(ctx, o.chatLatency, func(ctx context.Context) (*SendMessageOutput, error) {
		replies := catalog.PetReplies()
		roll, err := o.roller.Roll(len(replies))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick a reply")
		}

		reply, err := o.append(ctx, input.PetID, petoverse.MessagePet, replies[roll-1])
		if err != nil {
			return nil, err
		}

		return &SendMessageOutput{Message: sent, Reply: reply}, nil
	})
}

func (o *orchestrator) PlayWithToy(ctx context.Context, input *PlayWithToyInput) (*PlayWithToyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	toy, ok := catalog.Toy(input.ToyID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown toy %q", input.ToyID)
	}

	pet, err := o.loadPet(ctx, input.PlayerID, input.PetID)
	if err != nil {
		return nil, err
	}

	pet.Stats.Happiness = min(pet.Stats.Happiness+toyHappinessBoost, petoverse.MaxStat)
	if _, err := o.petRepo.Update(ctx, petrepo.UpdateInput{Pet: pet}); err != nil {
		return nil, errors.Wrapf(err, "failed to update pet %s", pet.ID)
	}

	if _, err := o.seedHistory(ctx, pet.ID); err != nil {
		return nil, err
	}
	msg, err := o.append(ctx, pet.ID, petoverse.MessageSystem, fmt.Sprintf(catalog.ToyMessageFormat, toy.Name))
	if err != nil {
		return nil, err
	}

	return &PlayWithToyOutput{Message: msg, Pet: pet}, nil
}

func (o *orchestrator) TrainPet(ctx context.Context, input *TrainPetInput) (*TrainPetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return nil, errors.InvalidArgument("command cannot be empty")
	}

	pet, err := o.loadPet(ctx, input.PlayerID, input.PetID)
	if err != nil {
		return nil, err
	}

	if slices.Contains(pet.Commands, command) {
		return &TrainPetOutput{Pet: pet, Learned: false}, nil
	}

	pet.Commands = append(pet.Commands, command)
	if !slices.Contains(pet.TrainedWords, command) {
		pet.TrainedWords = append(pet.TrainedWords, command)
	}

	if _, err := o.petRepo.Update(ctx, petrepo.UpdateInput{Pet: pet}); err != nil {
		return nil, errors.Wrapf(err, "failed to update pet %s", pet.ID)
	}

	if err := eventbus.Publish(ctx, o.bus, eventbus.PetTrained,
		eventbus.Player(pet.PlayerID), eventbus.Pet(pet.ID),
		map[string]any{"command": command}); err != nil {
		o.log.Warn("event publish failed", "event", eventbus.PetTrained, "error", err.Error())
	}

	return &TrainPetOutput{Pet: pet, Learned: true}, nil
}

func (o *orchestrator) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if input == nil || input.PetID == "" {
		return nil, errors.InvalidArgument("pet ID is required")
	}

	if _, err := o.loadPet(ctx, input.PlayerID, input.PetID); err != nil {
		return nil, err
	}

	seeded, err := o.seedHistory(ctx, input.PetID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	if seeded != nil {
		if len(seeded) > limit {
			seeded = seeded[len(seeded)-limit:]
		}
		return &HistoryOutput{Messages: seeded}, nil
	}

	out, err := o.chatRepo.List(ctx, chat.ListInput{PetID: input.PetID, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	return &HistoryOutput{Messages: out.Messages}, nil
}

func (o *orchestrator) ListNotifications(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error) {
	if input == nil || input.PetID == "" {
		return nil, errors.InvalidArgument("pet ID is required")
	}

	if _, err := o.loadPet(ctx, input.PlayerID, input.PetID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}

	out, err := o.notificationRepo.List(ctx, notification.ListInput{PetID: input.PetID, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return &ListNotificationsOutput{Notifications: out.Notifications}, nil
}

// loadPet fetches a pet the player owns. Someone else's pet reads as missing.
func (o *orchestrator) loadPet(ctx context.Context, playerID, petID string) (*petoverse.Pet, error) {
	if petID == "" {
		return nil, errors.InvalidArgument("pet ID is required")
	}
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.petRepo.Get(ctx, petrepo.GetInput{ID: petID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pet %s", petID)
	}
	if out.Pet.PlayerID != playerID {
		return nil, errors.NotFoundf("pet %s not found", petID)
	}
	return out.Pet, nil
}

// seedHistory writes the opening greeting into an empty chat. It returns the
// seeded messages, or nil when the chat already had history.
func (o *orchestrator) seedHistory(ctx context.Context, petID string) ([]petoverse.ChatMessage, error) {
	existing, err := o.chatRepo.List(ctx, chat.ListInput{PetID: petID, Limit: 1})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}
	if len(existing.Messages) > 0 {
		return nil, nil
	}

	now := o.clock.Now()
	out, err := o.chatRepo.Append(ctx, chat.AppendInput{
		PetID: petID,
		Messages: []petoverse.ChatMessage{
			{Type: petoverse.MessagePet, Text: catalog.GreetingMessage, SentAt: now.Unix()},
			{Type: petoverse.MessageSystem, Text: catalog.SystemStatusNotice, SentAt: now.Unix()},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed chat history")
	}
	return out.Messages, nil
}

func (o *orchestrator) append(ctx context.Context, petID string, kind petoverse.MessageType, text string) (petoverse.ChatMessage, error) {
	out, err := o.chatRepo.Append(ctx, chat.AppendInput{
		PetID:    petID,
		Messages: []petoverse.ChatMessage{{Type: kind, Text: text, SentAt: o.clock.Now().Unix()}},
	})
	if err != nil {
		return petoverse.ChatMessage{}, errors.Wrap(err, "failed to store message")
	}
	return out.Messages[0], nil
}
