package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/handlers/catalog/v1alpha1"
)

var (
	itemID      int32
	enchantRef  string
	gemIDs      string
	specFile    string
	searchLimit int
)

var lookupItemCmd = &cobra.Command{
	Use:   "lookup-item",
	Short: "Hydrate a single item spec",
	RunE:  runLookupItem,
}

var lookupEquipmentCmd = &cobra.Command{
	Use:   "lookup-equipment",
	Short: "Resolve an equipment spec into slots",
	Long:  `Resolve an equipment spec read from a JSON file ("-" for stdin) into slotted gear.`,
	RunE:  runLookupEquipment,
}

var searchItemsCmd = &cobra.Command{
	Use:   "search-items <query>",
	Short: "Search items by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchItems,
}

func init() {
	lookupItemCmd.Flags().Int32Var(&itemID, "id", 0, "Item id")
	lookupItemCmd.Flags().StringVar(&enchantRef, "enchant", "", `Enchant reference: "55", "item:55", "spell:1234" or "effect:3789"`)
	lookupItemCmd.Flags().StringVar(&gemIDs, "gems", "", "Comma separated gem ids by socket, 0 for empty")
	_ = lookupItemCmd.MarkFlagRequired("id")

	lookupEquipmentCmd.Flags().StringVar(&specFile, "file", "-", "Equipment spec JSON file")

	searchItemsCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results (server default when 0)")
}

func runLookupItem(_ *cobra.Command, _ []string) error {
	ref, err := items.ParseEnchantRef(enchantRef)
	if err != nil {
		return err
	}
	gems, err := parseGemIDs(gemIDs)
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

	resp, err := client.LookupItemSpec(ctx, &v1alpha1.LookupItemSpecRequest{
		Spec: items.ItemSpec{ID: itemID, Enchant: ref, Gems: gems},
	})
	if err != nil {
		return fmt.Errorf("failed to look up item: %w", err)
	}
	if !resp.Found {
		fmt.Printf("Item %d is not in the catalog\n", itemID)
		return nil
	}

	printEquipped("", resp.Item)
	return nil
}

func readEquipmentSpec(path string) (items.EquipmentSpec, error) {
	var spec items.EquipmentSpec

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return spec, fmt.Errorf("failed to open spec: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return spec, fmt.Errorf("failed to parse spec: %w", err)
	}
	return spec, nil
}

func runLookupEquipment(_ *cobra.Command, _ []string) error {
	spec, err := readEquipmentSpec(specFile)
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

	resp, err := client.LookupEquipmentSpec(ctx, &v1alpha1.LookupEquipmentSpecRequest{Spec: spec})
	if err != nil {
		return fmt.Errorf("failed to look up equipment: %w", err)
	}

	for _, slot := range resp.Gear.Slots() {
		printEquipped(slot.String(), resp.Gear.Get(slot))
	}
	if len(resp.SkippedItemIDs) > 0 {
		fmt.Printf("\nSkipped unknown item ids: %v\n", resp.SkippedItemIDs)
	}
	return nil
}

func runSearchItems(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SearchItems(ctx, &v1alpha1.SearchItemsRequest{Query: args[0], Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("failed to search items: %w", err)
	}

	fmt.Printf("Found %d items:\n\n", len(resp.Items))
	for _, item := range resp.Items {
		printItem(item)
	}
	return nil
}
