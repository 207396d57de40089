// Package app assembles repositories, orchestrators and handlers into a
// servable Petoverse stack.
package app

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"google.golang.org/grpc"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/config"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	v1alpha1 "github.com/KirkDiggler/petoverse-api/internal/handlers/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/auth"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/creation"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/multiverse"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/playground"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/rewards"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/styling"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/thinker"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/chat"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/claims"
	creationdraft "github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/notification"
	petrepo "github.com/KirkDiggler/petoverse-api/internal/repositories/pet"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/session"
)

// Options holds what New needs to build the stack
type Options struct {
	Config *config.Config
	Redis  redisclient.Client
	Logger *logger.Logger

	// Optional overrides, mostly for tests
	Clock      clock.Clock
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("options are required")
	}

	vb := errors.NewValidationBuilder()

	if o.Config == nil {
		vb.RequiredField("Config")
	}
	if o.Redis == nil {
		vb.RequiredField("Redis")
	}

	return vb.Build()
}

// App is the wired service stack
type App struct {
	EventBus events.EventBus

	AuthHandler  *v1alpha1.AuthHandler
	PetHandler   *v1alpha1.PetHandler
	WorldHandler *v1alpha1.WorldHandler

	Thinker *thinker.Worker
}

// New builds every repository, orchestrator and handler from opts
func New(opts *Options) (*App, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	cfg := opts.Config
	log := opts.Logger

	c := opts.Clock
	if c == nil {
		c = clock.New()
	}
	roller := opts.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	bus := events.NewBus()
	eventbus.SubscribeLogger(bus, log)

	petRepo, err := petrepo.NewRedis(&petrepo.RedisConfig{
		Client: opts.Redis,
		Logger: log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pet repository")
	}
	notificationRepo := notification.NewRedisRepository(opts.Redis)

	authService, err := auth.NewOrchestrator(&auth.Config{
		SessionRepo:   session.NewRedisRepository(opts.Redis),
		IDGenerator:   idgen.NewUUID("sess"),
		Clock:         c,
		EventBus:      bus,
		Logger:        log,
		DemoEmail:     cfg.Auth.DemoEmail,
		DemoPassword:  cfg.Auth.DemoPassword,
		SessionTTL:    cfg.Auth.SessionTTL,
		LoginLatency:  cfg.Latency.Login,
		SignupLatency: cfg.Latency.Signup,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create auth orchestrator")
	}

	creationService, err := creation.NewOrchestrator(&creation.Config{
		DraftRepo:   creationdraft.NewRedisRepository(opts.Redis),
		IDGenerator: idgen.NewUUID("draft"),
		Clock:       c,
		EventBus:    bus,
		Logger:      log,
		DraftTTL:    cfg.Drafts.TTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create creation orchestrator")
	}

	stylingService, err := styling.NewOrchestrator(&styling.Config{
		PetRepo:     petRepo,
		IDGenerator: idgen.NewUUID("pet"),
		DiceRoller:  roller,
		Clock:       c,
		EventBus:    bus,
		Logger:      log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create styling orchestrator")
	}

	rewardsService, err := rewards.NewOrchestrator(&rewards.Config{
		ClaimsRepo:   claims.NewRedisRepository(opts.Redis),
		EventBus:     bus,
		Logger:       log,
		ClaimLatency: cfg.Latency.Claim,
		ClaimTTL:     cfg.Auth.SessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rewards orchestrator")
	}

	playgroundService, err := playground.NewOrchestrator(&playground.Config{
		PetRepo:          petRepo,
		ChatRepo:         chat.NewRedisRepository(opts.Redis),
		NotificationRepo: notificationRepo,
		DiceRoller:       roller,
		Clock:            c,
		EventBus:         bus,
		Logger:           log,
		ChatLatency:      cfg.Latency.Chat,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create playground orchestrator")
	}

	multiverseService, err := multiverse.NewOrchestrator(&multiverse.Config{
		DiceRoller: roller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create multiverse orchestrator")
	}

	worker, err := thinker.NewWorker(&thinker.Config{
		PetRepo:          petRepo,
		NotificationRepo: notificationRepo,
		DiceRoller:       roller,
		Clock:            c,
		Logger:           log,
		Interval:         cfg.Thinker.Interval,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create thinker")
	}

	authHandler, err := v1alpha1.NewAuthHandler(&v1alpha1.AuthHandlerConfig{
		AuthService: authService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create auth handler")
	}

	petHandler, err := v1alpha1.NewPetHandler(&v1alpha1.PetHandlerConfig{
		AuthService:     authService,
		CreationService: creationService,
		StylingService:  stylingService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pet handler")
	}

	worldHandler, err := v1alpha1.NewWorldHandler(&v1alpha1.WorldHandlerConfig{
		AuthService:       authService,
		RewardsService:    rewardsService,
		PlaygroundService: playgroundService,
		MultiverseService: multiverseService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world handler")
	}

	return &App{
		EventBus:     bus,
		AuthHandler:  authHandler,
		PetHandler:   petHandler,
		WorldHandler: worldHandler,
		Thinker:      worker,
	}, nil
}

// Register attaches the three Petoverse services to s
func (a *App) Register(s grpc.ServiceRegistrar) {
	apiv1alpha1.RegisterAuthServiceServer(s, a.AuthHandler)
	apiv1alpha1.RegisterPetServiceServer(s, a.PetHandler)
	apiv1alpha1.RegisterWorldServiceServer(s, a.WorldHandler)
}

// ServiceNames lists the fully qualified names of the registered services
func ServiceNames() []string {
	return []string{
		apiv1alpha1.AuthServiceName,
		apiv1alpha1.PetServiceName,
		apiv1alpha1.WorldServiceName,
	}
}
