package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/tui"
)

var (
	playServerAddr string
	playTimeout    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Petoverse in the terminal",
	Long:  `Open the terminal client against a running Petoverse server.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playServerAddr, "server", "localhost:50051", "gRPC server address")
	playCmd.Flags().DurationVar(&playTimeout, "timeout", tui.DefaultTimeout, "Timeout for each server call")
}

func runPlay(_ *cobra.Command, _ []string) error {
	conn, err := grpc.NewClient(playServerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return errors.Wrap(err, "failed to connect to server")
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore on exit
	}()

	model := tui.NewModel(tui.NewClients(conn), playTimeout)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "terminal client failed")
	}
	return nil
}
