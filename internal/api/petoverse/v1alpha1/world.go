package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// WorldServiceName is the fully qualified world service name
const WorldServiceName = "petoverse.v1alpha1.WorldService"

// ListRewardsRequest lists rewards as seen by a session
type ListRewardsRequest struct {
	SessionID string `json:"session_id"`
}

// ListRewardsResponse lists every reward with its claim state
type ListRewardsResponse struct {
	Rewards []Reward `json:"rewards"`
}

// ClaimRewardRequest claims a reward for a session
type ClaimRewardRequest struct {
	SessionID string `json:"session_id"`
	RewardID  string `json:"reward_id"`
}

// ClaimRewardResponse reports the claim. Found is false for an unknown id.
type ClaimRewardResponse struct {
	Reward         Reward `json:"reward"`
	Found          bool   `json:"found"`
	AlreadyClaimed bool   `json:"already_claimed"`
}

// SendMessageRequest says something to a pet
type SendMessageRequest struct {
	SessionID string `json:"session_id"`
	PetID     string `json:"pet_id"`
	Text      string `json:"text"`
}

// SendMessageResponse carries the stored message and the pet's reply
type SendMessageResponse struct {
	Message ChatMessage `json:"message"`
	Reply   ChatMessage `json:"reply"`
}

// PlayWithToyRequest plays with a toy
type PlayWithToyRequest struct {
	SessionID string `json:"session_id"`
	PetID     string `json:"pet_id"`
	ToyID     string `json:"toy_id"`
}

// PlayWithToyResponse carries the system message and the happier pet
type PlayWithToyResponse struct {
	Message ChatMessage `json:"message"`
	Pet     Pet         `json:"pet"`
}

// TrainPetRequest teaches a command
type TrainPetRequest struct {
	SessionID string `json:"session_id"`
	PetID     string `json:"pet_id"`
	Command   string `json:"command"`
}

// TrainPetResponse reports whether the command was new
type TrainPetResponse struct {
	Pet     Pet  `json:"pet"`
	Learned bool `json:"learned"`
}

// GetHistoryRequest reads a pet's chat
type GetHistoryRequest struct {
	SessionID string `json:"session_id"`
	PetID     string `json:"pet_id"`
	Limit     int32  `json:"limit,omitempty"`
}

// GetHistoryResponse holds messages oldest first
type GetHistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
}

// ListNotificationsRequest reads a pet's notifications
type ListNotificationsRequest struct {
	SessionID string `json:"session_id"`
	PetID     string `json:"pet_id"`
	Limit     int32  `json:"limit,omitempty"`
}

// ListNotificationsResponse holds notifications newest first
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// ListToysRequest is empty
type ListToysRequest struct{}

// ListToysResponse lists every toy
type ListToysResponse struct {
	Toys []Toy `json:"toys"`
}

// ListNodesRequest is empty
type ListNodesRequest struct{}

// ListNodesResponse lists the galaxy map
type ListNodesResponse struct {
	Nodes []GalaxyNode `json:"nodes"`
}

// GetNodeRequest names a galaxy node
type GetNodeRequest struct {
	NodeID string `json:"node_id"`
}

// GetNodeResponse carries the node, or the first node when Found is false
type GetNodeResponse struct {
	Node  GalaxyNode `json:"node"`
	Found bool       `json:"found"`
}

// GetStarFieldRequest asks for a number of stars
type GetStarFieldRequest struct {
	Count int32 `json:"count,omitempty"`
}

// GetStarFieldResponse carries the stars
type GetStarFieldResponse struct {
	Stars []Star `json:"stars"`
}

// WorldServiceServer is the server API for WorldService
type WorldServiceServer interface {
	ListRewards(context.Context, *ListRewardsRequest) (*ListRewardsResponse, error)
	ClaimReward(context.Context, *ClaimRewardRequest) (*ClaimRewardResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	PlayWithToy(context.Context, *PlayWithToyRequest) (*PlayWithToyResponse, error)
	TrainPet(context.Context, *TrainPetRequest) (*TrainPetResponse, error)
	GetHistory(context.Context, *GetHistoryRequest) (*GetHistoryResponse, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error)
	ListToys(context.Context, *ListToysRequest) (*ListToysResponse, error)
	ListNodes(context.Context, *ListNodesRequest) (*ListNodesResponse, error)
	GetNode(context.Context, *GetNodeRequest) (*GetNodeResponse, error)
	GetStarField(context.Context, *GetStarFieldRequest) (*GetStarFieldResponse, error)
}

// WorldService_ServiceDesc is the grpc.ServiceDesc for WorldService
var WorldService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: WorldServiceName,
	HandlerType: (*WorldServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(WorldServiceName, "ListRewards", WorldServiceServer.ListRewards),
		unary(WorldServiceName, "ClaimReward", WorldServiceServer.ClaimReward),
		unary(WorldServiceName, "SendMessage", WorldServiceServer.SendMessage),
		unary(WorldServiceName, "PlayWithToy", WorldServiceServer.PlayWithToy),
		unary(WorldServiceName, "TrainPet", WorldServiceServer.TrainPet),
		unary(WorldServiceName, "GetHistory", WorldServiceServer.GetHistory),
		unary(WorldServiceName, "ListNotifications", WorldServiceServer.ListNotifications),
		unary(WorldServiceName, "ListToys", WorldServiceServer.ListToys),
		unary(WorldServiceName, "ListNodes", WorldServiceServer.ListNodes),
		unary(WorldServiceName, "GetNode", WorldServiceServer.GetNode),
		unary(WorldServiceName, "GetStarField", WorldServiceServer.GetStarField),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "petoverse/v1alpha1/world",
}

// RegisterWorldServiceServer registers srv with s
func RegisterWorldServiceServer(s grpc.ServiceRegistrar, srv WorldServiceServer) {
	s.RegisterService(&WorldService_ServiceDesc, srv)
}

// WorldServiceClient is the client API for WorldService
type WorldServiceClient interface {
	ListRewards(ctx context.Context, in *ListRewardsRequest, opts ...grpc.CallOption) (*ListRewardsResponse, error)
	ClaimReward(ctx context.Context, in *ClaimRewardRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	PlayWithToy(ctx context.Context, in *PlayWithToyRequest, opts ...grpc.CallOption) (*PlayWithToyResponse, error)
	TrainPet(ctx context.Context, in *TrainPetRequest, opts ...grpc.CallOption) (*TrainPetResponse, error)
	GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*GetHistoryResponse, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
	ListToys(ctx context.Context, in *ListToysRequest, opts ...grpc.CallOption) (*ListToysResponse, error)
	ListNodes(ctx context.Context, in *ListNodesRequest, opts ...grpc.CallOption) (*ListNodesResponse, error)
	GetNode(ctx context.Context, in *GetNodeRequest, opts ...grpc.CallOption) (*GetNodeResponse, error)
	GetStarField(ctx context.Context, in *GetStarFieldRequest, opts ...grpc.CallOption) (*GetStarFieldResponse, error)
}

type worldServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWorldServiceClient creates a WorldService client
func NewWorldServiceClient(cc grpc.ClientConnInterface) WorldServiceClient {
	return &worldServiceClient{cc: cc}
}

func (c *worldServiceClient) ListRewards(ctx context.Context, in *ListRewardsRequest, opts ...grpc.CallOption) (*ListRewardsResponse, error) {
	return invoke[ListRewardsResponse](ctx, c.cc, WorldServiceName, "ListRewards", in, opts)
}

func (c *worldServiceClient) ClaimReward(ctx context.Context, in *ClaimRewardRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error) {
	return invoke[ClaimRewardResponse](ctx, c.cc, WorldServiceName, "ClaimReward", in, opts)
}

func (c *worldServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return invoke[SendMessageResponse](ctx, c.cc, WorldServiceName, "SendMessage", in, opts)
}

func (c *worldServiceClient) PlayWithToy(ctx context.Context, in *PlayWithToyRequest, opts ...grpc.CallOption) (*PlayWithToyResponse, error) {
	return invoke[PlayWithToyResponse](ctx, c.cc, WorldServiceName, "PlayWithToy", in, opts)
}

func (c *worldServiceClient) TrainPet(ctx context.Context, in *TrainPetRequest, opts ...grpc.CallOption) (*TrainPetResponse, error) {
	return invoke[TrainPetResponse](ctx, c.cc, WorldServiceName, "TrainPet", in, opts)
}

func (c *worldServiceClient) GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*GetHistoryResponse, error) {
	return invoke[GetHistoryResponse](ctx, c.cc, WorldServiceName, "GetHistory", in, opts)
}

func (c *worldServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, WorldServiceName, "ListNotifications", in, opts)
}

func (c *worldServiceClient) ListToys(ctx context.Context, in *ListToysRequest, opts ...grpc.CallOption) (*ListToysResponse, error) {
	return invoke[ListToysResponse](ctx, c.cc, WorldServiceName, "ListToys", in, opts)
}

func (c *worldServiceClient) ListNodes(ctx context.Context, in *ListNodesRequest, opts ...grpc.CallOption) (*ListNodesResponse, error) {
	return invoke[ListNodesResponse](ctx, c.cc, WorldServiceName, "ListNodes", in, opts)
}

func (c *worldServiceClient) GetNode(ctx context.Context, in *GetNodeRequest, opts ...grpc.CallOption) (*GetNodeResponse, error) {
	return invoke[GetNodeResponse](ctx, c.cc, WorldServiceName, "GetNode", in, opts)
}

func (c *worldServiceClient) GetStarField(ctx context.Context, in *GetStarFieldRequest, opts ...grpc.CallOption) (*GetStarFieldResponse, error) {
	return invoke[GetStarFieldResponse](ctx, c.cc, WorldServiceName, "GetStarField", in, opts)
}
