// Package v1alpha1 handles the Petoverse grpc service interfaces
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/auth"
)

// AuthHandlerConfig holds dependencies for the auth handler
type AuthHandlerConfig struct {
	AuthService auth.Service
}

// Validate ensures all required dependencies are present
func (c *AuthHandlerConfig) Validate() error {
	if c.AuthService == nil {
		return errors.InvalidArgument("auth service is required")
	}
	return nil
}

// AuthHandler implements the AuthService
type AuthHandler struct {
	authService auth.Service
}

// NewAuthHandler creates a new auth handler with the given configuration
func NewAuthHandler(cfg *AuthHandlerConfig) (*AuthHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &AuthHandler{
		authService: cfg.AuthService,
	}, nil
}

// Login checks the demo credentials after the simulated delay
func (h *AuthHandler) Login(
	ctx context.Context,
	req *apiv1alpha1.LoginRequest,
) (*apiv1alpha1.LoginResponse, error) {
	output, err := h.authService.Login(ctx, &auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.LoginResponse{
		Session:    convertSessionToAPI(output.Session),
		NextScreen: output.NextScreen,
	}, nil
}

// Signup validates the signup form after the simulated delay
func (h *AuthHandler) Signup(
	ctx context.Context,
	req *apiv1alpha1.SignupRequest,
) (*apiv1alpha1.SignupResponse, error) {
	output, err := h.authService.Signup(ctx, &auth.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SignupResponse{
		Message:    output.Message,
		NextScreen: output.NextScreen,
	}, nil
}

// ValidateSession reports whether a session is still live
func (h *AuthHandler) ValidateSession(
	ctx context.Context,
	req *apiv1alpha1.ValidateSessionRequest,
) (*apiv1alpha1.ValidateSessionResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.authService.ValidateSession(ctx, &auth.ValidateSessionInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ValidateSessionResponse{Session: convertSessionToAPI(output.Session)}, nil
}

// Logout ends a session
func (h *AuthHandler) Logout(
	ctx context.Context,
	req *apiv1alpha1.LogoutRequest,
) (*apiv1alpha1.LogoutResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	if _, err := h.authService.Logout(ctx, &auth.LogoutInput{SessionID: req.SessionID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.LogoutResponse{}, nil
}

// sessionPlayer resolves a session to the player it belongs to. The player
// id is the email the session logged in with.
func sessionPlayer(ctx context.Context, authService auth.Service, sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.Unauthenticated("session_id is required")
	}

	output, err := authService.ValidateSession(ctx, &auth.ValidateSessionInput{SessionID: sessionID})
	if err != nil {
		return "", err
	}
	return output.Session.Email, nil
}

var _ apiv1alpha1.AuthServiceServer = (*AuthHandler)(nil)
