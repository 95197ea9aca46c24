// Package main is the entry point for the catalog gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sim-catalog/cmd/server/client"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sim-catalog",
	Short: "Simulator item catalog gRPC server",
	Long: `sim-catalog loads an item, enchant and gem snapshot once and serves slot listings, ` +
		`gem matching and equipment spec lookups over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
