package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

var (
	rewardID string
	petID    string
	text     string
	toyID    string
	command  string
)

var listRewardsCmd = &cobra.Command{
	Use:   "list-rewards",
	Short: "List rewards and whether the session has claimed them",
	RunE:  runListRewards,
}

var claimRewardCmd = &cobra.Command{
	Use:   "claim-reward",
	Short: "Claim a reward for the session",
	RunE:  runClaimReward,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Send a message to a pet and print its reply",
	RunE:  runChat,
}

var playToyCmd = &cobra.Command{
	Use:   "play-toy",
	Short: "Play with a pet using a toy",
	RunE:  runPlayToy,
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Teach a pet a command",
	RunE:  runTrain,
}

var listNodesCmd = &cobra.Command{
	Use:   "list-nodes",
	Short: "List the multiverse galaxy nodes",
	RunE:  runListNodes,
}

func init() {
	listRewardsCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = listRewardsCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init

	claimRewardCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	claimRewardCmd.Flags().StringVar(&rewardID, "reward-id", "", "Reward ID (required)")
	_ = claimRewardCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	_ = claimRewardCmd.MarkFlagRequired("reward-id")  // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{chatCmd, playToyCmd, trainCmd} {
		cmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
		_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	}

	chatCmd.Flags().StringVar(&petID, "pet-id", "", "Pet ID (required)")
	chatCmd.Flags().StringVar(&text, "text", "", "Message text (required)")
	_ = chatCmd.MarkFlagRequired("pet-id") // nolint:errcheck // safe to ignore in init
	_ = chatCmd.MarkFlagRequired("text")   // nolint:errcheck // safe to ignore in init

	playToyCmd.Flags().StringVar(&petID, "pet-id", "", "Pet ID (required)")
	playToyCmd.Flags().StringVar(&toyID, "toy", "ball", "Toy ID (ball, star, crystal, music)")
	_ = playToyCmd.MarkFlagRequired("pet-id") // nolint:errcheck // safe to ignore in init

	trainCmd.Flags().StringVar(&petID, "pet-id", "", "Pet ID (required)")
	trainCmd.Flags().StringVar(&command, "command", "", "Command word (required)")
	_ = trainCmd.MarkFlagRequired("pet-id")  // nolint:errcheck // safe to ignore in init
	_ = trainCmd.MarkFlagRequired("command") // nolint:errcheck // safe to ignore in init
}

func runListRewards(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createWorldClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListRewards(ctx, &apiv1alpha1.ListRewardsRequest{SessionID: sessionID})
	if err != nil {
		return callError("list rewards", err)
	}

	fmt.Printf("Found %d rewards:\n\n", len(resp.Rewards))
	for _, r := range resp.Rewards {
		status := "available"
		if r.Claimed {
			status = "claimed"
		}
		fmt.Printf("%s. %s [%s] (%s, %d) - %s\n", r.ID, r.Title, r.Rarity, r.Type, r.Value, status)
		fmt.Printf("   %s\n", r.Description)
	}

	return nil
}

func runClaimReward(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createWorldClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClaimReward(ctx, &apiv1alpha1.ClaimRewardRequest{
		SessionID: sessionID,
		RewardID:  rewardID,
	})
	if err != nil {
		return callError("claim reward", err)
	}

	switch {
	case !resp.Found:
		fmt.Printf("⚠️  No reward with ID %s\n", rewardID)
	case resp.AlreadyClaimed:
		fmt.Printf("⚠️  %s was already claimed\n", resp.Reward.Title)
	default:
		fmt.Printf("🎁 Claimed %s (+%d %s)\n", resp.Reward.Title, resp.Reward.Value, resp.Reward.Type)
	}

	return nil
}

func runChat(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createWorldClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SendMessage(ctx, &apiv1alpha1.SendMessageRequest{
		SessionID: sessionID,
		PetID:     petID,
		Text:      text,
	})
	if err != nil {
		return callError("send message", err)
	}

	fmt.Printf("You: %s\n", resp.Message.Text)
	fmt.Printf("Pet: %s\n", resp.Reply.Text)
	return nil
}

func runPlayToy(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createWorldClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PlayWithToy(ctx, &apiv1alpha1.PlayWithToyRequest{
		SessionID: sessionID,
		PetID:     petID,
		ToyID:     toyID,
	})
	if err != nil {
		return callError("play with toy", err)
	}

	fmt.Printf("%s\n", resp.Message.Text)
	fmt.Printf("Happiness: %d · Energy: %d\n", resp.Pet.Stats.Happiness, resp.Pet.Stats.Energy)
	return nil
}

func runTrain(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createWorldClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.TrainPet(ctx, &apiv1alpha1.TrainPetRequest{
		SessionID: sessionID,
		PetID:     petID,
		Command:   command,
	})
	if err != nil {
		return callError("train pet", err)
	}

	if resp.Learned {
		fmt.Printf("✅ %s learned %q!\n", resp.Pet.Name, command)
	} else {
		fmt.Printf("%s already knows %q\n", resp.Pet.Name, command)
	}
	fmt.Printf("Commands: %v\n", resp.Pet.Commands)
	return nil
}

func runListNodes(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createWorldClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListNodes(ctx, &apiv1alpha1.ListNodesRequest{})
	if err != nil {
		return callError("list nodes", err)
	}

	fmt.Printf("Found %d galaxies:\n\n", len(resp.Nodes))
	for _, n := range resp.Nodes {
		fmt.Printf("%s. %s (%s) - %d pets, %s away\n", n.ID, n.Name, n.Type, n.Pets, n.Distance)
	}

	return nil
}
