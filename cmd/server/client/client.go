// Package client provides test commands for the catalog gRPC service
package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/handlers/catalog/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the catalog service",
	Long:  `Client commands allow you to test the catalog service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Listing commands
	ClientCmd.AddCommand(listItemsCmd)
	ClientCmd.AddCommand(listEnchantsCmd)
	ClientCmd.AddCommand(listGemsCmd)
	ClientCmd.AddCommand(searchItemsCmd)

	// Spec commands
	ClientCmd.AddCommand(lookupItemCmd)
	ClientCmd.AddCommand(lookupEquipmentCmd)

	ClientCmd.AddCommand(iconCmd)
	ClientCmd.AddCommand(infoCmd)
}

// createCatalogClient creates a catalog service client
func createCatalogClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// parseGemIDs parses "10,0,20" into positional gem ids
func parseGemIDs(s string) ([]int32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int32, len(parts))
	for i, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid gem id %q: %w", part, err)
		}
		ids[i] = int32(id)
	}
	return ids, nil
}

func printItem(item *items.Item) {
	fmt.Printf("%s (ID: %d)\n", item.Name, item.ID)
	fmt.Printf("   Type: %s", item.Type)
	if item.HandType != items.HandTypeUnknown {
		fmt.Printf(" / %s", item.HandType)
	}
	fmt.Printf("   ilvl %d, quality %d\n", item.Ilvl, item.Quality)
	if len(item.GemSockets) > 0 {
		sockets := make([]string, len(item.GemSockets))
		for i, socket := range item.GemSockets {
			sockets[i] = socket.String()
		}
		fmt.Printf("   Sockets: %s\n", strings.Join(sockets, ", "))
	}
}

func printEquipped(slot string, equipped *items.EquippedItem) {
	if slot != "" {
		fmt.Printf("[%s] ", slot)
	}
	printItem(equipped.Item)
	if equipped.Enchant != nil {
		fmt.Printf("   Enchant: %s (effect %d)\n", equipped.Enchant.Name, equipped.Enchant.EffectID)
	}
	for i, gem := range equipped.Gems {
		if gem == nil {
			fmt.Printf("   Gem %d: empty\n", i+1)
			continue
		}
		fmt.Printf("   Gem %d: %s (%s)\n", i+1, gem.Name, gem.Color)
	}
}
