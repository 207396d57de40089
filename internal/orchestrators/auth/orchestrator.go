// Package auth implements the mock login and signup flow. Credentials are
// checked against a single configured demo pair after a simulated delay.
package auth

//go:generate mockgen -destination=mock/mock_service.go -package=authmock github.com/KirkDiggler/petoverse-api/internal/orchestrators/auth Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/eventbus"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/idgen"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/latency"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/session"
)

// Service defines the interface for authentication operations
type Service interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	ValidateSession(ctx context.Context, input *ValidateSessionInput) (*ValidateSessionOutput, error)
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)
}

// Config holds the dependencies for the auth orchestrator
type Config struct {
	SessionRepo  session.Repository
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	EventBus     events.EventBus
	Logger       *logger.Logger
	DemoEmail    string
	DemoPassword string
	SessionTTL   time.Duration

	LoginLatency  time.Duration
	SignupLatency time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DemoEmail == "" {
		vb.RequiredField("DemoEmail")
	}
	if c.DemoPassword == "" {
		vb.RequiredField("DemoPassword")
	}
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo   session.Repository
	idGen         idgen.Generator
	clock         clock.Clock
	bus           events.EventBus
	log           *logger.Logger
	demoEmail     string
	demoPassword  string
	sessionTTL    time.Duration
	loginLatency  time.Duration
	signupLatency time.Duration
}

// NewOrchestrator creates a new auth orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		sessionRepo:   cfg.SessionRepo,
		idGen:         cfg.IDGenerator,
		clock:         c,
		bus:           cfg.EventBus,
		log:           cfg.Logger.With("orchestrator", "auth"),
		demoEmail:     cfg.DemoEmail,
		demoPassword:  cfg.DemoPassword,
		sessionTTL:    cfg.SessionTTL,
		loginLatency:  cfg.LoginLatency,
		signupLatency: cfg.SignupLatency,
	}, nil
}

func (o *orchestrator) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Email == "" || input.Password == "" {
		return nil, errors.InvalidArgument(MsgMissingCredentials)
	}

	return latency.Do(ctx, o.loginLatency, func(ctx context.Context) (*LoginOutput, error) {
		if input.Email != o.demoEmail || input.Password != o.demoPassword {
			o.log.Debug("login rejected", "email", input.Email)
			return nil, errors.InvalidArgument(MsgInvalidCredentials)
		}

		now := o.clock.Now()
		sess := &petoverse.Session{
			ID:        o.idGen.Generate(),
			Email:     input.Email,
			CreatedAt: now.Unix(),
			ExpiresAt: now.Add(o.sessionTTL).Unix(),
		}

		if _, err := o.sessionRepo.Create(ctx, session.CreateInput{Session: sess}); err != nil {
			return nil, errors.Wrap(err, "failed to start session")
		}

		if err := eventbus.Publish(ctx, o.bus, eventbus.SessionStarted,
			eventbus.Session(sess.ID), eventbus.Session(sess.ID), map[string]any{"email": sess.Email}); err != nil {
			o.log.Warn("event publish failed", "event", eventbus.SessionStarted, "error", err.Error())
		}

		o.log.Debug("session started", "session_id", sess.ID)
		return &LoginOutput{Session: sess, NextScreen: petoverse.ScreenPetCreation}, nil
	})
}

func (o *orchestrator) Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch {
	case input.Email == "" || input.Password == "" || input.ConfirmPassword == "":
		return nil, errors.InvalidArgument(MsgAllFieldsRequired)
	case input.Password != input.ConfirmPassword:
		return nil, errors.InvalidArgument(MsgPasswordsMismatch)
	case len(input.Password) < MinPasswordLength:
		return nil, errors.InvalidArgument(MsgPasswordTooShort)
	}

	// No account is stored; the demo pair is the only login that works
	if err := latency.Wait(ctx, o.signupLatency); err != nil {
		return nil, err
	}

	return &SignupOutput{Message: MsgSignupSucceeded, NextScreen: petoverse.ScreenLogin}, nil
}

func (o *orchestrator) ValidateSession(ctx context.Context, input *ValidateSessionInput) (*ValidateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.Unauthenticated("session is required")
	}

	out, err := o.sessionRepo.Get(ctx, session.GetInput{ID: input.SessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated("session expired or unknown")
		}
		return nil, errors.Wrap(err, "failed to load session")
	}

	if out.Session.ExpiresAt <= o.clock.Now().Unix() {
		return nil, errors.Unauthenticated("session expired or unknown")
	}

	return &ValidateSessionOutput{Session: out.Session}, nil
}

func (o *orchestrator) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	if _, err := o.sessionRepo.Delete(ctx, session.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrap(err, "failed to end session")
	}

	return &LogoutOutput{}, nil
}
