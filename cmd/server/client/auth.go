package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

var (
	email           string
	password        string
	confirmPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print the session ID",
	Long:  `Log in with the demo credentials. The session ID is needed by the draft, pet and reward commands.`,
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Run the sign up form",
	Long:  `Submit the sign up form. No account is stored; the server only checks the form.`,
	RunE:  runSignup,
}

func init() {
	loginCmd.Flags().StringVar(&email, "email", "test@example.com", "Email")
	loginCmd.Flags().StringVar(&password, "password", "password", "Password")

	signupCmd.Flags().StringVar(&email, "email", "", "Email (required)")
	signupCmd.Flags().StringVar(&password, "password", "", "Password (required)")
	signupCmd.Flags().StringVar(&confirmPassword, "confirm-password", "", "Password again (required)")
}

func runLogin(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createAuthClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Logging in as %s...\n", email)

	resp, err := client.Login(ctx, &apiv1alpha1.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return callError("log in", err)
	}

	fmt.Printf("✅ Logged in!\n\n")
	fmt.Printf("Session ID: %s\n", resp.Session.ID)
	fmt.Printf("Expires At: %d\n", resp.Session.ExpiresAt)

	fmt.Printf("\n💡 Next step:\n")
	fmt.Printf("petoverse client create-draft --session-id %s\n", resp.Session.ID)

	return nil
}

func runSignup(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createAuthClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Signup(ctx, &apiv1alpha1.SignupRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return callError("sign up", err)
	}

	fmt.Printf("✅ %s\n", resp.Message)
	return nil
}
