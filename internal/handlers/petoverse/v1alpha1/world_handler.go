package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/auth"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/multiverse"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/playground"
	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/rewards"
)

// WorldHandlerConfig holds dependencies for the world handler
type WorldHandlerConfig struct {
	AuthService       auth.Service
	RewardsService    rewards.Service
	PlaygroundService playground.Service
	MultiverseService multiverse.Service
}

// Validate ensures all required dependencies are present
func (c *WorldHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.AuthService == nil {
		vb.RequiredField("AuthService")
	}
	if c.RewardsService == nil {
		vb.RequiredField("RewardsService")
	}
	if c.PlaygroundService == nil {
		vb.RequiredField("PlaygroundService")
	}
	if c.MultiverseService == nil {
		vb.RequiredField("MultiverseService")
	}
	return vb.Build()
}

// WorldHandler implements the WorldService: rewards, the playground and the
// multiverse map
type WorldHandler struct {
	authService       auth.Service
	rewardsService    rewards.Service
	playgroundService playground.Service
	multiverseService multiverse.Service
}

// NewWorldHandler creates a new world handler with the given configuration
func NewWorldHandler(cfg *WorldHandlerConfig) (*WorldHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &WorldHandler{
		authService:       cfg.AuthService,
		rewardsService:    cfg.RewardsService,
		playgroundService: cfg.PlaygroundService,
		multiverseService: cfg.MultiverseService,
	}, nil
}

// ListRewards lists rewards with the session's claims applied
func (h *WorldHandler) ListRewards(
	ctx context.Context,
	req *apiv1alpha1.ListRewardsRequest,
) (*apiv1alpha1.ListRewardsResponse, error) {
	if _, err := sessionPlayer(ctx, h.authService, req.SessionID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.rewardsService.ListRewards(ctx, &rewards.ListRewardsInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	list := make([]apiv1alpha1.Reward, len(output.Rewards))
	for i, r := range output.Rewards {
		list[i] = convertRewardToAPI(r)
	}
	return &apiv1alpha1.ListRewardsResponse{Rewards: list}, nil
}

// ClaimReward claims a reward for the session after the simulated delay
func (h *WorldHandler) ClaimReward(
	ctx context.Context,
	req *apiv1alpha1.ClaimRewardRequest,
) (*apiv1alpha1.ClaimRewardResponse, error) {
	if _, err := sessionPlayer(ctx, h.authService, req.SessionID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.rewardsService.ClaimReward(ctx, &rewards.ClaimRewardInput{
		SessionID: req.SessionID,
		RewardID:  req.RewardID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &apiv1alpha1.ClaimRewardResponse{
		Found:          output.Found,
		AlreadyClaimed: output.AlreadyClaimed,
	}
	if output.Found {
		resp.Reward = convertRewardToAPI(output.Reward)
	}
	return resp, nil
}

// SendMessage says something to a pet and waits for its reply
func (h *WorldHandler) SendMessage(
	ctx context.Context,
	req *apiv1alpha1.SendMessageRequest,
) (*apiv1alpha1.SendMessageResponse, error) {
	if req.PetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pet_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.playgroundService.SendMessage(ctx, &playground.SendMessageInput{
		PlayerID: playerID,
		PetID:    req.PetID,
		Text:     req.Text,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SendMessageResponse{
		Message: convertMessageToAPI(output.Message),
		Reply:   convertMessageToAPI(output.Reply),
	}, nil
}

// PlayWithToy plays with a toy
func (h *WorldHandler) PlayWithToy(
	ctx context.Context,
	req *apiv1alpha1.PlayWithToyRequest,
) (*apiv1alpha1.PlayWithToyResponse, error) {
	if req.PetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pet_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.playgroundService.PlayWithToy(ctx, &playground.PlayWithToyInput{
		PlayerID: playerID,
		PetID:    req.PetID,
		ToyID:    req.ToyID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.PlayWithToyResponse{
		Message: convertMessageToAPI(output.Message),
		Pet:     convertPetToAPI(output.Pet),
	}, nil
}

// TrainPet teaches a pet a command
func (h *WorldHandler) TrainPet(
	ctx context.Context,
	req *apiv1alpha1.TrainPetRequest,
) (*apiv1alpha1.TrainPetResponse, error) {
	if req.PetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pet_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.playgroundService.TrainPet(ctx, &playground.TrainPetInput{
		PlayerID: playerID,
		PetID:    req.PetID,
		Command:  req.Command,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.TrainPetResponse{Pet: convertPetToAPI(output.Pet), Learned: output.Learned}, nil
}

// GetHistory reads a pet's chat
func (h *WorldHandler) GetHistory(
	ctx context.Context,
	req *apiv1alpha1.GetHistoryRequest,
) (*apiv1alpha1.GetHistoryResponse, error) {
	if req.PetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pet_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.playgroundService.History(ctx, &playground.HistoryInput{
		PlayerID: playerID,
		PetID:    req.PetID,
		Limit:    int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetHistoryResponse{Messages: convertMessagesToAPI(output.Messages)}, nil
}

// ListNotifications reads a pet's notifications
func (h *WorldHandler) ListNotifications(
	ctx context.Context,
	req *apiv1alpha1.ListNotificationsRequest,
) (*apiv1alpha1.ListNotificationsResponse, error) {
	if req.PetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pet_id is required"))
	}

	playerID, err := sessionPlayer(ctx, h.authService, req.SessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.playgroundService.ListNotifications(ctx, &playground.ListNotificationsInput{
		PlayerID: playerID,
		PetID:    req.PetID,
		Limit:    int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	list := make([]apiv1alpha1.Notification, len(output.Notifications))
	for i, n := range output.Notifications {
		list[i] = apiv1alpha1.Notification{PetID: n.PetID, Message: n.Message, CreatedAt: n.CreatedAt}
	}
	return &apiv1alpha1.ListNotificationsResponse{Notifications: list}, nil
}

// ListToys lists playground toys
func (h *WorldHandler) ListToys(
	_ context.Context,
	_ *apiv1alpha1.ListToysRequest,
) (*apiv1alpha1.ListToysResponse, error) {
	toys := catalog.Toys()
	list := make([]apiv1alpha1.Toy, len(toys))
	for i, t := range toys {
		list[i] = apiv1alpha1.Toy{ID: t.ID, Name: t.Name, Emoji: t.Emoji}
	}
	return &apiv1alpha1.ListToysResponse{Toys: list}, nil
}

// ListNodes lists the galaxy map
func (h *WorldHandler) ListNodes(
	ctx context.Context,
	_ *apiv1alpha1.ListNodesRequest,
) (*apiv1alpha1.ListNodesResponse, error) {
	output, err := h.multiverseService.ListNodes(ctx, &multiverse.ListNodesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	list := make([]apiv1alpha1.GalaxyNode, len(output.Nodes))
	for i, n := range output.Nodes {
		list[i] = convertNodeToAPI(n)
	}
	return &apiv1alpha1.ListNodesResponse{Nodes: list}, nil
}

// GetNode retrieves a galaxy node, falling back to the first one
func (h *WorldHandler) GetNode(
	ctx context.Context,
	req *apiv1alpha1.GetNodeRequest,
) (*apiv1alpha1.GetNodeResponse, error) {
	output, err := h.multiverseService.GetNode(ctx, &multiverse.GetNodeInput{NodeID: req.NodeID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetNodeResponse{Node: convertNodeToAPI(output.Node), Found: output.Found}, nil
}

// GetStarField rolls a star field for the map background
func (h *WorldHandler) GetStarField(
	ctx context.Context,
	req *apiv1alpha1.GetStarFieldRequest,
) (*apiv1alpha1.GetStarFieldResponse, error) {
	output, err := h.multiverseService.StarField(ctx, &multiverse.StarFieldInput{Count: int(req.Count)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	stars := make([]apiv1alpha1.Star, len(output.Stars))
	for i, s := range output.Stars {
		stars[i] = apiv1alpha1.Star{X: s.X, Y: s.Y, Size: s.Size}
	}
	return &apiv1alpha1.GetStarFieldResponse{Stars: stars}, nil
}

var _ apiv1alpha1.WorldServiceServer = (*WorldHandler)(nil)
