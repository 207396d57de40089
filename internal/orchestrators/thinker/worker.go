// Package thinker periodically gives every saved pet something to say. Each
// pass leaves one notification per pet.
package thinker

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/notification"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
)

// Config holds the dependencies for the thinker
type Config struct {
	PetRepo          petrepo.Repository
	NotificationRepo notification.Repository
	DiceRoller       dice.Roller
	Clock            clock.Clock
	Logger           *logger.Logger
	// Interval between passes; zero disables the worker
	Interval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PetRepo == nil {
		vb.RequiredField("PetRepo")
	}
	if c.NotificationRepo == nil {
		vb.RequiredField("NotificationRepo")
	}
	if c.Interval < 0 {
		vb.Field("Interval", "cannot be negative")
	}

	return vb.Build()
}

// Worker runs thinking passes on a ticker
type Worker struct {
	petRepo          petrepo.Repository
	notificationRepo notification.Repository
	roller           dice.Roller
	clock            clock.Clock
	log              *logger.Logger
	interval         time.Duration
}

// NewWorker creates a thinker worker
func NewWorker(cfg *Config) (*Worker, error) {
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

	return &Worker{
		petRepo:          cfg.PetRepo,
		notificationRepo: cfg.NotificationRepo,
		roller:           roller,
		clock:            c,
		log:              cfg.Logger.With("worker", "thinker"),
		interval:         cfg.Interval,
	}, nil
}

// Enabled reports whether Run will do anything
func (w *Worker) Enabled() bool {
	return w.interval > 0
}

// Run blocks, thinking once per interval, until ctx is cancelled. It returns
// immediately when the worker is disabled.
func (w *Worker) Run(ctx context.Context) {
	if !w.Enabled() {
		w.log.Info("thinker disabled")
		return
	}

	w.log.Info("thinker started", "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("thinker stopped")
			return
		case <-ticker.C:
			n, err := w.Think(ctx)
			if err != nil {
				w.log.Error(err, "thinking pass failed")
				continue
			}
			w.log.Debug("thinking pass complete", "notifications", n)
		}
	}
}

// Think runs one pass and returns how many notifications it stored. A
// failure on one pet does not stop the others.
func (w *Worker) Think(ctx context.Context) (int, error) {
	out, err := w.petRepo.ListAll(ctx, petrepo.ListAllInput{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list pets")
	}

	thoughts := catalog.Thoughts()
	stored := 0
	for _, pet := range out.Pets {
		if err := ctx.Err(); err != nil {
			return stored, errors.FromContext(err)
		}

		roll, err := w.roller.Roll(len(thoughts))
		if err != nil {
			return stored, errors.Wrap(err, "failed to pick a thought")
		}

		n := petoverse.Notification{
			PetID:     pet.ID,
			Message:   fmt.Sprintf(thoughts[roll-1], pet.Name),
			CreatedAt: w.clock.Now().Unix(),
		}
		if _, err := w.notificationRepo.Add(ctx, notification.AddInput{Notification: n}); err != nil {
			w.log.Warn("failed to store notification", "pet_id", pet.ID, "error", err.Error())
			continue
		}
		stored++
	}

	return stored, nil
}
