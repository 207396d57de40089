// Package main is the entry point for the Petoverse server and clients
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/petoverse-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "petoverse",
	Short: "Petoverse gRPC server",
	Long:  `Petoverse serves the virtual-pet game over gRPC: mock login, pet creation, styling, playground, rewards and the multiverse map.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
