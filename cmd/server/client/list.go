package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/handlers/catalog/v1alpha1"
)

var (
	slotName     string
	colorName    string
	matchingOnly bool
)

var listItemsCmd = &cobra.Command{
	Use:   "list-items",
	Short: "List items that fit a slot",
	RunE:  runListItems,
}

var listEnchantsCmd = &cobra.Command{
	Use:   "list-enchants",
	Short: "List enchants that apply to a slot",
	RunE:  runListEnchants,
}

var listGemsCmd = &cobra.Command{
	Use:   "list-gems",
	Short: "List gems, optionally for a socket color",
	Long: `List gems. With --color only gems that can go in a socket of that color are ` +
		`shown; add --matching to keep only gems that satisfy the socket bonus.`,
	RunE: runListGems,
}

func init() {
	for _, cmd := range []*cobra.Command{listItemsCmd, listEnchantsCmd} {
		cmd.Flags().StringVar(&slotName, "slot", "", "Item slot, e.g. head, finger1, mainhand")
		_ = cmd.MarkFlagRequired("slot")
	}
	listGemsCmd.Flags().StringVar(&colorName, "color", "", "Socket color, e.g. red, meta, prismatic")
	listGemsCmd.Flags().BoolVar(&matchingOnly, "matching", false, "Only gems that match the socket color")
}

func runListItems(_ *cobra.Command, _ []string) error {
	slot, err := items.ParseItemSlot(slotName)
	if err != nil {
		return err
	}

	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting %s items from %s...", slot, serverAddr)

	resp, err := client.GetItems(ctx, &v1alpha1.GetItemsRequest{Slot: slot})
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	fmt.Printf("Found %d items:\n\n", len(resp.Items))
	for _, item := range resp.Items {
		printItem(item)
	}
	return nil
}

func runListEnchants(_ *cobra.Command, _ []string) error {
	slot, err := items.ParseItemSlot(slotName)
	if err != nil {
		return err
	}

	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetEnchants(ctx, &v1alpha1.GetEnchantsRequest{Slot: slot})
	if err != nil {
		return fmt.Errorf("failed to list enchants: %w", err)
	}

	fmt.Printf("Found %d enchants:\n\n", len(resp.Enchants))
	for _, e := range resp.Enchants {
		fmt.Printf("%s (effect %d, item %d, spell %d)\n", e.Name, e.EffectID, e.ItemID, e.SpellID)
	}
	return nil
}

func runListGems(_ *cobra.Command, _ []string) error {
	var color *items.GemColor
	if colorName != "" {
		c, err := items.ParseGemColor(colorName)
		if err != nil {
			return err
		}
		color = &c
	}
	if matchingOnly && color == nil {
		return fmt.Errorf("--matching needs --color")
	}

	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var gems []*items.Gem
	if matchingOnly {
		resp, err := client.GetMatchingGems(ctx, &v1alpha1.GetMatchingGemsRequest{Color: *color})
		if err != nil {
			return fmt.Errorf("failed to list matching gems: %w", err)
		}
		gems = resp.Gems
	} else {
		resp, err := client.GetGems(ctx, &v1alpha1.GetGemsRequest{Color: color})
		if err != nil {
			return fmt.Errorf("failed to list gems: %w", err)
		}
		gems = resp.Gems
	}

	fmt.Printf("Found %d gems:\n\n", len(gems))
	for _, gem := range gems {
		unique := ""
		if gem.Unique {
			unique = ", unique"
		}
		fmt.Printf("%s (ID: %d, %s%s)\n", gem.Name, gem.ID, gem.Color, unique)
	}
	return nil
}
