package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/auth"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/petoverse-api/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/petoverse-api/internal/repositories/session/mock"
	"github.com/KirkDiggler/petoverse-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	sessionRepo *sessionmock.MockRepository
	idGen       *idgenmock.MockGenerator
	clock       *clock.Fixed
	svc         auth.Service
	ctx         context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessionRepo = sessionmock.NewMockRepository(s.ctrl)
	s.idGen = idgenmock.NewMockGenerator(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	svc, err := auth.NewOrchestrator(&auth.Config{
		SessionRepo:   s.sessionRepo,
		IDGenerator:   s.idGen,
		Clock:         s.clock,
		DemoEmail:     "test@example.com",
		DemoPassword:  "password",
		SessionTTL:    time.Hour,
		LoginLatency:  10 * time.Millisecond,
		SignupLatency: 10 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := auth.NewOrchestrator(&auth.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "SessionRepo")
	s.Contains(err.Error(), "DemoEmail")
	s.Contains(err.Error(), "SessionTTL")
}

func (s *OrchestratorTestSuite) TestLoginSuccess() {
	s.idGen.EXPECT().Generate().Return("sess_1")
	s.sessionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in session.CreateInput) (*session.CreateOutput, error) {
			s.Equal("sess_1", in.Session.ID)
			s.Equal(s.clock.Now().Add(time.Hour).Unix(), in.Session.ExpiresAt)
			return &session.CreateOutput{Session: in.Session}, nil
		})

	start := time.Now()
	out, err := s.svc.Login(s.ctx, &auth.LoginInput{Email: "test@example.com", Password: "password"})
	s.Require().NoError(err)

	s.GreaterOrEqual(time.Since(start), 10*time.Millisecond, "login waits the simulated latency")
	s.Equal(petoverse.ScreenPetCreation, out.NextScreen)
	s.Equal("test@example.com", out.Session.Email)
}

func (s *OrchestratorTestSuite) TestLoginFailures() {
	testCases := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{name: "wrong pair", email: "x@y.com", password: "bad", message: auth.MsgInvalidCredentials},
		{name: "wrong password", email: "test@example.com", password: "Password", message: auth.MsgInvalidCredentials},
		{name: "missing email", email: "", password: "password", message: auth.MsgMissingCredentials},
		{name: "missing password", email: "test@example.com", password: "", message: auth.MsgMissingCredentials},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.Login(s.ctx, &auth.LoginInput{Email: tc.email, Password: tc.password})
			s.Nil(out, "no transition on failure")
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.message, errors.GetMessage(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestLoginCancelledDuringDelay() {
	svc, err := auth.NewOrchestrator(&auth.Config{
		SessionRepo:  s.sessionRepo,
		IDGenerator:  s.idGen,
		DemoEmail:    "test@example.com",
		DemoPassword: "password",
		SessionTTL:   time.Hour,
		LoginLatency: time.Hour,
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	// No repository or id generator calls are expected
	_, err = svc.Login(ctx, &auth.LoginInput{Email: "test@example.com", Password: "password"})
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestSignup() {
	testCases := []struct {
		name    string
		input   auth.SignupInput
		message string
	}{
		{name: "missing confirm", input: auth.SignupInput{Email: "a@b.com", Password: "secret1"}, message: auth.MsgAllFieldsRequired},
		{name: "mismatch", input: auth.SignupInput{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret2"}, message: auth.MsgPasswordsMismatch},
		{name: "too short", input: auth.SignupInput{Email: "a@b.com", Password: "abc", ConfirmPassword: "abc"}, message: auth.MsgPasswordTooShort},
		{name: "mismatch wins over short", input: auth.SignupInput{Email: "a@b.com", Password: "abc", ConfirmPassword: "abd"}, message: auth.MsgPasswordsMismatch},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := tc.input
			_, err := s.svc.Signup(s.ctx, &input)
			s.Require().Error(err)
			s.Equal(tc.message, errors.GetMessage(err))
		})
	}

	s.Run("success", func() {
		out, err := s.svc.Signup(s.ctx, &auth.SignupInput{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"})
		s.Require().NoError(err)
		s.Equal(petoverse.ScreenLogin, out.NextScreen)
		s.Equal(auth.MsgSignupSucceeded, out.Message)
	})
}

func (s *OrchestratorTestSuite) TestValidateSession() {
	s.Run("live session", func() {
		sess := &petoverse.Session{ID: "sess_1", ExpiresAt: s.clock.Now().Add(time.Minute).Unix()}
		mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", sess, nil)

		out, err := s.svc.ValidateSession(s.ctx, &auth.ValidateSessionInput{SessionID: "sess_1"})
		s.Require().NoError(err)
		s.Equal(sess, out.Session)
	})

	s.Run("unknown session", func() {
		mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "nope", nil, errors.NotFound("gone"))

		_, err := s.svc.ValidateSession(s.ctx, &auth.ValidateSessionInput{SessionID: "nope"})
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("expired session", func() {
		sess := &petoverse.Session{ID: "old", ExpiresAt: s.clock.Now().Add(-time.Minute).Unix()}
		mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "old", sess, nil)

		_, err := s.svc.ValidateSession(s.ctx, &auth.ValidateSessionInput{SessionID: "old"})
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("empty id", func() {
		_, err := s.svc.ValidateSession(s.ctx, &auth.ValidateSessionInput{})
		s.True(errors.IsUnauthenticated(err))
	})
}

func (s *OrchestratorTestSuite) TestLogout() {
	s.sessionRepo.EXPECT().Delete(s.ctx, session.DeleteInput{ID: "sess_1"}).Return(&session.DeleteOutput{}, nil)

	_, err := s.svc.Logout(s.ctx, &auth.LogoutInput{SessionID: "sess_1"})
	s.NoError(err)
}
