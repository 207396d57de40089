// Package client provides test commands for the Petoverse gRPC services
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Petoverse API",
	Long:  `Client commands allow you to test the Petoverse API by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Auth commands
	ClientCmd.AddCommand(loginCmd)
	ClientCmd.AddCommand(signupCmd)

	// Creation commands
	ClientCmd.AddCommand(listArchetypesCmd)
	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(resumeDraftCmd)
	ClientCmd.AddCommand(selectArchetypeCmd)
	ClientCmd.AddCommand(updateNameCmd)
	ClientCmd.AddCommand(advanceCmd)
	ClientCmd.AddCommand(retreatCmd)

	// Styling commands
	ClientCmd.AddCommand(styleCmd)
	ClientCmd.AddCommand(savePetCmd)

	// World commands
	ClientCmd.AddCommand(listRewardsCmd)
	ClientCmd.AddCommand(claimRewardCmd)
	ClientCmd.AddCommand(chatCmd)
	ClientCmd.AddCommand(playToyCmd)
	ClientCmd.AddCommand(trainCmd)
	ClientCmd.AddCommand(listNodesCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createAuthClient creates an auth service client
func createAuthClient() (apiv1alpha1.AuthServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewAuthServiceClient(conn), cleanup, nil
}

// createPetClient creates a pet service client
func createPetClient() (apiv1alpha1.PetServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewPetServiceClient(conn), cleanup, nil
}

// createWorldClient creates a world service client
func createWorldClient() (apiv1alpha1.WorldServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewWorldServiceClient(conn), cleanup, nil
}

// callError turns a gRPC failure into the message the server meant for the user
func callError(action string, err error) error {
	return fmt.Errorf("failed to %s: %s", action, errors.GetMessage(errors.FromGRPCError(err)))
}

func printDraft(d apiv1alpha1.Draft) {
	fmt.Printf("Draft ID: %s\n", d.ID)
	fmt.Printf("Step: %d of %d\n", d.Step, d.TotalSteps)
	if d.ArchetypeID != "" {
		fmt.Printf("Pet Type: %s\n", d.ArchetypeID)
	}
	if d.Name != "" {
		fmt.Printf("Name: %s\n", d.Name)
	}
	fmt.Printf("Expires At: %d\n", d.ExpiresAt)
}

func printCosmetics(c apiv1alpha1.Cosmetics) {
	fmt.Printf("  - Primary Color: %s\n", c.PrimaryColor)
	fmt.Printf("  - Secondary Color: %s\n", c.SecondaryColor)
	fmt.Printf("  - Size: %.1f\n", c.Size)
	fmt.Printf("  - Accessories: %v\n", c.Accessories)
}
