package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// AuthServiceName is the fully qualified auth service name
const AuthServiceName = "petoverse.v1alpha1.AuthService"

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the new session and the screen to show next
type LoginResponse struct {
	Session    Session `json:"session"`
	NextScreen string  `json:"next_screen"`
}

// SignupRequest carries signup form fields
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignupResponse carries the confirmation message
type SignupResponse struct {
	Message    string `json:"message"`
	NextScreen string `json:"next_screen"`
}

// ValidateSessionRequest names a session to check
type ValidateSessionRequest struct {
	SessionID string `json:"session_id"`
}

// ValidateSessionResponse carries the live session
type ValidateSessionResponse struct {
	Session Session `json:"session"`
}

// LogoutRequest names a session to end
type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

// LogoutResponse is empty
type LogoutResponse struct{}

// AuthServiceServer is the server API for AuthService
type AuthServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	ValidateSession(context.Context, *ValidateSessionRequest) (*ValidateSessionResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthServiceName, "Login", AuthServiceServer.Login),
		unary(AuthServiceName, "Signup", AuthServiceServer.Signup),
		unary(AuthServiceName, "ValidateSession", AuthServiceServer.ValidateSession),
		unary(AuthServiceName, "Logout", AuthServiceServer.Logout),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "petoverse/v1alpha1/auth",
}

// RegisterAuthServiceServer registers srv with s
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

// AuthServiceClient is the client API for AuthService
type AuthServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error)
	ValidateSession(ctx context.Context, in *ValidateSessionRequest, opts ...grpc.CallOption) (*ValidateSessionResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthServiceClient creates an AuthService client
func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AuthServiceName, "Login", in, opts)
}

func (c *authServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, AuthServiceName, "Signup", in, opts)
}

func (c *authServiceClient) ValidateSession(ctx context.Context, in *ValidateSessionRequest, opts ...grpc.CallOption) (*ValidateSessionResponse, error) {
	return invoke[ValidateSessionResponse](ctx, c.cc, AuthServiceName, "ValidateSession", in, opts)
}

func (c *authServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, AuthServiceName, "Logout", in, opts)
}
