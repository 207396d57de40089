package auth

import "github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"

// User-facing validation messages
const (
	MsgMissingCredentials = "Please enter both email and password."
	MsgInvalidCredentials = "Invalid email or password."
	MsgAllFieldsRequired  = "All fields are required."
	MsgPasswordsMismatch  = "Passwords do not match."
	MsgPasswordTooShort   = "Password must be at least 6 characters long."
	MsgSignupSucceeded    = "Account created successfully! Please log in."
)

// MinPasswordLength is the shortest password signup accepts
const MinPasswordLength = 6

// LoginInput defines the request for logging in
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput defines the response for a successful login
type LoginOutput struct {
	Session    *petoverse.Session
	NextScreen string
}

// SignupInput defines the request for signing up
type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// SignupOutput defines the response for a successful signup
type SignupOutput struct {
	Message    string
	NextScreen string
}

// ValidateSessionInput defines the request for checking a session
type ValidateSessionInput struct {
	SessionID string
}

// ValidateSessionOutput defines the response for a live session
type ValidateSessionOutput struct {
	Session *petoverse.Session
}

// LogoutInput defines the request for ending a session
type LogoutInput struct {
	SessionID string
}

// LogoutOutput defines the response for ending a session
type LogoutOutput struct{}
