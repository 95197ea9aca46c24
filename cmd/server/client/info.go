package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sim-catalog/internal/handlers/catalog/v1alpha1"
)

var (
	iconItemID  int32
	iconSpellID int32
)

var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Show icon data for an item or spell",
	RunE:  runIcon,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog counts and load time",
	RunE:  runInfo,
}

func init() {
	iconCmd.Flags().Int32Var(&iconItemID, "item", 0, "Item id")
	iconCmd.Flags().Int32Var(&iconSpellID, "spell", 0, "Spell id")
	iconCmd.MarkFlagsOneRequired("item", "spell")
	iconCmd.MarkFlagsMutuallyExclusive("item", "spell")
}

func runIcon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var resp *v1alpha1.GetIconDataResponse
	if iconItemID != 0 {
		resp, err = client.GetItemIconData(ctx, &v1alpha1.GetIconDataRequest{ID: iconItemID})
	} else {
		resp, err = client.GetSpellIconData(ctx, &v1alpha1.GetIconDataRequest{ID: iconSpellID})
	}
	if err != nil {
		return fmt.Errorf("failed to get icon data: %w", err)
	}

	if resp.Icon.ID == 0 {
		fmt.Println("No icon data")
		return nil
	}
	fmt.Printf("%s (ID: %d) icon=%s\n", resp.Icon.Name, resp.Icon.ID, resp.Icon.Icon)
	return nil
}

func runInfo(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCatalogInfo(ctx, &v1alpha1.GetCatalogInfoRequest{})
	if err != nil {
		return fmt.Errorf("failed to get catalog info: %w", err)
	}

	fmt.Printf("Loaded at:   %s\n", resp.LoadedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Items:       %d\n", resp.Counts.Items)
	fmt.Printf("Enchants:    %d\n", resp.Counts.Enchants)
	fmt.Printf("Gems:        %d\n", resp.Counts.Gems)
	fmt.Printf("Item icons:  %d\n", resp.Counts.ItemIcons)
	fmt.Printf("Spell icons: %d\n", resp.Counts.SpellIcons)
	if len(resp.Duplicates) > 0 {
		fmt.Printf("Duplicates:  %d\n", len(resp.Duplicates))
	}
	return nil
}
